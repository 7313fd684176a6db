// Package generator реализует внешний сервис генерации текста.
package generator

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"lp-forge/internal/domain"
	openai "lp-forge/internal/infra/openai"
)

type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAI реализует domain.TextGenerator через OpenAI Chat Completions.
type OpenAI struct {
	client  chatClient
	model   string
	timeout time.Duration
}

// NewOpenAI создаёт провайдер генерации.
func NewOpenAI(client chatClient, model string, timeout time.Duration) *OpenAI {
	if model == "" {
		model = "gpt-4.1"
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &OpenAI{client: client, model: model, timeout: timeout}
}

var _ domain.TextGenerator = (*OpenAI)(nil)

// Generate выполняет один вызов модели с явным таймаутом и одним
// повтором на транспортной ошибке. Ошибки формата ответа не повторяются:
// решение о повторе принимает вызывающая сторона.
func (g *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.7,
		Messages: []openai.ChatMessage{
			{
				Role:    openai.RoleSystem,
				Content: "You are a landing page generator. Respond with a single complete HTML document inside a fenced ```html code block and nothing else.",
			},
			{
				Role:    openai.RoleUser,
				Content: prompt,
			},
		},
	}

	text, err := g.once(ctx, req)
	if err != nil && isTransient(err) {
		text, err = g.once(ctx, req)
	}
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	return text, nil
}

func (g *OpenAI) once(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(callCtx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", domain.ErrEmptyCompletion
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", domain.ErrEmptyCompletion
	}
	return content, nil
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return strings.Contains(err.Error(), "do request")
}
