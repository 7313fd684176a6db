package generation

import (
	"errors"
	"strings"
	"testing"

	"lp-forge/internal/domain"
)

const document = "<!DOCTYPE html>\n<html><body><h1>Hi</h1></body></html>"

func TestExtractPrefersFencedBlock(t *testing.T) {
	raw := "Вот ваша страница:\n```html\n" + document + "\n```\nНадеюсь, подойдёт!"
	got, err := ExtractHTML(raw)
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if got != document {
		t.Fatalf("ожидали только содержимое fenced-блока, получили %q", got)
	}
	if strings.Contains(got, "Надеюсь") {
		t.Fatalf("комментарий вне блока не должен попадать в результат")
	}
}

func TestExtractBoundedDocument(t *testing.T) {
	raw := "Комментарий до. " + document + " Комментарий после."
	got, err := ExtractHTML(raw)
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if got != document {
		t.Fatalf("ожидали документ от doctype до </html>, получили %q", got)
	}
}

func TestExtractWholeTextFallback(t *testing.T) {
	raw := "<html><body>без закрывающего тега"
	got, err := ExtractHTML(raw)
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if got != raw {
		t.Fatalf("при наличии <html без границ ожидали весь текст, получили %q", got)
	}
}

func TestExtractCaseInsensitiveDoctype(t *testing.T) {
	raw := "<!doctype html><HTML><body>x</body></HTML>"
	if _, err := ExtractHTML(raw); err != nil {
		t.Fatalf("регистр doctype не должен влиять: %v", err)
	}
}

func TestExtractNoHTML(t *testing.T) {
	_, err := ExtractHTML("Извините, я не могу помочь с этим запросом.")
	if !errors.Is(err, domain.ErrNoHTML) {
		t.Fatalf("ожидали ErrNoHTML, получили %v", err)
	}
}

func TestExtractFencedWithoutClosingFenceFallsThrough(t *testing.T) {
	raw := "```html\n" + document
	got, err := ExtractHTML(raw)
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if !strings.Contains(got, "<h1>Hi</h1>") {
		t.Fatalf("незакрытый fence должен падать на следующий фолбэк, получили %q", got)
	}
}
