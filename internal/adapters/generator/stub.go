package generator

import (
	"context"

	"lp-forge/internal/domain"
)

// Stub возвращает фиксированную страницу. Используется в dev-окружении
// без ключа OpenAI и в тестах.
type Stub struct{}

var _ domain.TextGenerator = (*Stub)(nil)

// Generate возвращает минимальный валидный документ.
func (Stub) Generate(ctx context.Context, prompt string) (string, error) {
	return "```html\n<!DOCTYPE html>\n<html><head><title>lp-forge stub</title></head><body><h1>Stub page</h1></body></html>\n```", nil
}
