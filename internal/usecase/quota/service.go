// Package quota реализует дневные лимиты генераций со скользящим окном.
package quota

import (
	"context"
	"fmt"
	"time"

	"lp-forge/internal/domain"
)

// Window — длительность скользящего окна счётчиков.
const Window = 24 * time.Hour

// Service управляет счётчиками использования поверх domain.ProfileRepo.
type Service struct {
	profiles domain.ProfileRepo
}

// NewService создаёт менеджер квот.
func NewService(profiles domain.ProfileRepo) *Service {
	return &Service{profiles: profiles}
}

// Check применяет сброс окна и проверяет лимиты тарифа. Сброс выполняется
// до любой проверки: запрос после истёкшего окна обязан пройти. Возвращает
// профиль с актуальными счётчиками и снапшот использования.
func (s *Service) Check(ctx context.Context, profile domain.Profile, now time.Time) (domain.Profile, domain.UsageSnapshot, error) {
	if profile.IsAdmin {
		return profile, adminSnapshot(), nil
	}

	if profile.ResetAt == nil || now.Sub(*profile.ResetAt) > Window {
		if err := s.profiles.ResetUsageWindow(ctx, profile.UserID, now); err != nil {
			return profile, domain.UsageSnapshot{}, fmt.Errorf("сброс окна квоты: %w", err)
		}
		reset := now
		profile.ResetAt = &reset
		profile.DailyGenerationCount = 0
		profile.DailyProjectCount = 0
	}

	limits := profile.Limits()
	resetsAt := profile.ResetAt.Add(Window)

	if profile.DailyGenerationCount >= limits.DailyGenerations {
		return profile, domain.UsageSnapshot{}, &domain.QuotaExceededError{
			Kind:     "generation",
			Used:     profile.DailyGenerationCount,
			Limit:    limits.DailyGenerations,
			ResetsAt: resetsAt,
		}
	}
	if limits.Plan == domain.PlanPlus && limits.MaxProjects > 0 && profile.DailyProjectCount >= limits.MaxProjects {
		return profile, domain.UsageSnapshot{}, &domain.QuotaExceededError{
			Kind:     "project",
			Used:     profile.DailyProjectCount,
			Limit:    limits.MaxProjects,
			ResetsAt: resetsAt,
		}
	}

	return profile, snapshotFor(profile.DailyGenerationCount, limits), nil
}

// Commit учитывает завершённую генерацию. Инкремент атомарный на стороне
// хранилища: параллельные запросы одного пользователя не теряют обновлений.
// Счётчик проектов растёт только на plus.
func (s *Service) Commit(ctx context.Context, profile domain.Profile) (domain.UsageSnapshot, error) {
	if profile.IsAdmin {
		return adminSnapshot(), nil
	}
	limits := profile.Limits()
	genCount, _, err := s.profiles.IncrementUsage(ctx, profile.UserID, limits.Plan == domain.PlanPlus)
	if err != nil {
		return domain.UsageSnapshot{}, fmt.Errorf("инкремент счётчиков: %w", err)
	}
	return snapshotFor(genCount, limits), nil
}

func snapshotFor(genCount int, limits domain.PlanLimits) domain.UsageSnapshot {
	remaining := limits.DailyGenerations - genCount
	if remaining < 0 {
		remaining = 0
	}
	return domain.UsageSnapshot{
		Current:   genCount,
		Limit:     limits.DailyGenerations,
		Remaining: remaining,
	}
}

func adminSnapshot() domain.UsageSnapshot {
	return domain.UsageSnapshot{
		Current:   0,
		Limit:     domain.UnlimitedLimit,
		Remaining: domain.UnlimitedLimit,
		IsAdmin:   true,
	}
}
