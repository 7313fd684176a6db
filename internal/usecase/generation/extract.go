package generation

import (
	"strings"

	"lp-forge/internal/domain"
)

// ExtractHTML достаёт HTML-документ из свободного текста модели.
// Порядок фолбэков фиксирован:
//  1. содержимое fenced-блока с меткой html;
//  2. подстрока от doctype или <html до закрывающего </html>;
//  3. весь текст целиком, если doctype или <html встречаются где-то в нём;
//  4. domain.ErrNoHTML.
func ExtractHTML(raw string) (string, error) {
	if fenced, ok := fencedHTMLBlock(raw); ok {
		return fenced, nil
	}
	if bounded, ok := boundedDocument(raw); ok {
		return bounded, nil
	}
	lower := strings.ToLower(raw)
	if strings.Contains(lower, "<!doctype") || strings.Contains(lower, "<html") {
		return strings.TrimSpace(raw), nil
	}
	return "", domain.ErrNoHTML
}

func fencedHTMLBlock(raw string) (string, bool) {
	lower := strings.ToLower(raw)
	open := strings.Index(lower, "```html")
	if open < 0 {
		return "", false
	}
	body := raw[open+len("```html"):]
	close := strings.Index(body, "```")
	if close < 0 {
		return "", false
	}
	return strings.TrimSpace(body[:close]), true
}

func boundedDocument(raw string) (string, bool) {
	lower := strings.ToLower(raw)
	start := strings.Index(lower, "<!doctype")
	if start < 0 {
		start = strings.Index(lower, "<html")
	}
	if start < 0 {
		return "", false
	}
	end := strings.LastIndex(lower, "</html>")
	if end < 0 || end < start {
		return "", false
	}
	return strings.TrimSpace(raw[start : end+len("</html>")]), true
}
