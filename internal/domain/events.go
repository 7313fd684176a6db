package domain

import "time"

// Имена бизнесовых событий генерации.
const (
	EventGenerationSucceeded = "generation_succeeded"
	EventGenerationFailed    = "generation_failed"
	EventQuotaRejected       = "quota_rejected"
)

// GenerationEvent — бизнесовое событие, публикуемое в очередь после
// обработки запроса. Доставка best effort: потеря события не влияет
// на результат генерации.
type GenerationEvent struct {
	Event      string         `json:"event"`
	UserID     int64          `json:"user_id"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
