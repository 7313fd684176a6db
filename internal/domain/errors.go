package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrProfileNotFound возвращается, когда профиль пользователя не найден.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrNoHTML возвращается, когда в ответе модели не удалось найти HTML.
	ErrNoHTML = errors.New("no html document in model response")

	// ErrEmptyCompletion возвращается, когда модель вернула пустой ответ.
	ErrEmptyCompletion = errors.New("model returned empty completion")
)

// QuotaExceededError сигнализирует об исчерпании дневного лимита.
// Несёт контекст для сообщения пользователю: сколько израсходовано и
// когда окно откроется снова.
type QuotaExceededError struct {
	Kind     string
	Used     int
	Limit    int
	ResetsAt time.Time
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("%s limit reached: %d/%d, resets at %s", e.Kind, e.Used, e.Limit, e.ResetsAt.UTC().Format(time.RFC3339))
}

// IsQuotaExceeded распаковывает QuotaExceededError из цепочки ошибок.
func IsQuotaExceeded(err error) (*QuotaExceededError, bool) {
	var qe *QuotaExceededError
	if errors.As(err, &qe) {
		return qe, true
	}
	return nil, false
}
