package domain

import (
	"context"
	"time"
)

// ProfileRepo управляет профилями и дневными счётчиками использования.
type ProfileRepo interface {
	GetProfile(ctx context.Context, userID int64) (Profile, error)
	// ResetUsageWindow обнуляет счётчики и сдвигает reset_at на now.
	// Обновление условное: проигравший гонку запрос не затирает чужой сброс.
	ResetUsageWindow(ctx context.Context, userID int64, now time.Time) error
	// IncrementUsage атомарно увеличивает счётчик генераций и, при
	// withProject, счётчик проектов. Возвращает новые значения.
	IncrementUsage(ctx context.Context, userID int64, withProject bool) (genCount, projectCount int, err error)
}

// ProjectRepo сохраняет сгенерированные лендинги.
type ProjectRepo interface {
	SaveProject(ctx context.Context, project Project) (Project, error)
}

// AuditRepo пишет журнал попыток генерации.
type AuditRepo interface {
	RecordGeneration(ctx context.Context, record AuditRecord) error
}

// MetricRepo сохраняет бизнесовые события.
type MetricRepo interface {
	RecordBusinessMetric(ctx context.Context, event GenerationEvent) error
}

// TextGenerator — внешний сервис генерации текста. Один промпт на входе,
// свободный текст на выходе; формат ответа контрактом не гарантирован.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Cache используется для простых TTL-хранилищ.
type Cache interface {
	Once(key string, ttl time.Duration, fn func() error) error
	Set(key string, value []byte, ttl time.Duration) error
	Get(key string) ([]byte, error)
}

// EventQueue переносит бизнесовые события генерации в фоновый воркер.
type EventQueue interface {
	Enqueue(ctx context.Context, event GenerationEvent) error
	Pop(ctx context.Context) (GenerationEvent, error)
}
