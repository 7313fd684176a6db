// Package generation оркестрирует полный цикл: свайпы → вектор → темы →
// квота → промпт → внешний вызов → извлечение HTML → журнал и счётчики.
package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"lp-forge/internal/domain"
	"lp-forge/internal/infra/metrics"
	"lp-forge/internal/usecase/prompt"
	"lp-forge/internal/usecase/quota"
	"lp-forge/internal/usecase/scoring"
)

// ErrGenerationFailed возвращается при ошибке внешнего вызова или
// извлечения HTML. Запрос можно повторить с теми же входными данными.
var ErrGenerationFailed = errors.New("generation failed")

// ErrNoRetryPayload возвращается, когда кэш повторной генерации пуст.
var ErrNoRetryPayload = errors.New("no cached generation request")

// RetryPayload — кэшированный вход одной генерации для повторного
// запуска без повторного свайпа.
type RetryPayload struct {
	Request domain.ProjectRequest `json:"request"`
	Events  []domain.SwipeEvent   `json:"events"`
}

// Service реализует оркестратор генерации.
type Service struct {
	samples   []domain.DesignSample
	profiles  domain.ProfileRepo
	projects  domain.ProjectRepo
	audit     domain.AuditRepo
	quota     *quota.Service
	generator domain.TextGenerator
	cache     domain.Cache
	events    domain.EventQueue
	retryTTL  time.Duration
	log       zerolog.Logger
}

// NewService создаёт оркестратор.
func NewService(
	samples []domain.DesignSample,
	profiles domain.ProfileRepo,
	projects domain.ProjectRepo,
	audit domain.AuditRepo,
	quotaService *quota.Service,
	generator domain.TextGenerator,
	cache domain.Cache,
	events domain.EventQueue,
	retryTTL time.Duration,
	logger zerolog.Logger,
) *Service {
	if retryTTL <= 0 {
		retryTTL = 30 * time.Minute
	}
	return &Service{
		samples:   samples,
		profiles:  profiles,
		projects:  projects,
		audit:     audit,
		quota:     quotaService,
		generator: generator,
		cache:     cache,
		events:    events,
		retryTTL:  retryTTL,
		log:       logger,
	}
}

// Score вычисляет нормализованный вектор, ранжирование и выбор тем.
// Единственный вычислитель этой логики: клиент ходит сюда же.
func (s *Service) Score(events []domain.SwipeEvent) (scoring.NormalizedScores, scoring.ThemeSelection) {
	metrics.IncScoreComputation()
	raw := scoring.Aggregate(events, s.samples)
	normalized := scoring.Normalize(raw)
	return normalized, scoring.SelectThemes(normalized.Ranking)
}

// Samples возвращает каталог карточек для свайп-интерфейса.
func (s *Service) Samples() []domain.DesignSample {
	return s.samples
}

// Usage возвращает текущий снапшот использования без генерации.
// Исчерпанный лимит для чтения — штатное состояние, а не ошибка:
// снапшот отражает нулевой остаток.
func (s *Service) Usage(ctx context.Context, userID int64) (domain.UsageSnapshot, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return domain.UsageSnapshot{}, fmt.Errorf("получение профиля: %w", err)
	}
	profile, snapshot, err := s.quota.Check(ctx, profile, time.Now().UTC())
	if err != nil {
		if _, ok := domain.IsQuotaExceeded(err); ok {
			limits := profile.Limits()
			return domain.UsageSnapshot{
				Current:   profile.DailyGenerationCount,
				Limit:     limits.DailyGenerations,
				Remaining: max(limits.DailyGenerations-profile.DailyGenerationCount, 0),
			}, nil
		}
		return domain.UsageSnapshot{}, err
	}
	return snapshot, nil
}

// Generate выполняет один полный цикл генерации лендинга.
func (s *Service) Generate(ctx context.Context, userID int64, request domain.ProjectRequest, events []domain.SwipeEvent) (domain.GeneratedArtifact, error) {
	started := time.Now()
	defer func() { metrics.GenerationBuildSeconds.Observe(time.Since(started).Seconds()) }()

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return domain.GeneratedArtifact{}, fmt.Errorf("получение профиля: %w", err)
	}
	metrics.IncGenerationRequest(string(profile.Plan))

	normalized, themes := s.Score(events)

	now := time.Now().UTC()
	profile, _, err = s.quota.Check(ctx, profile, now)
	if err != nil {
		if qe, ok := domain.IsQuotaExceeded(err); ok {
			metrics.IncQuotaRejection(string(profile.Plan), qe.Kind)
			s.publishQuotaRejected(userID, qe)
		}
		return domain.GeneratedArtifact{}, err
	}

	s.cacheRetryPayload(userID, request, events)

	promptText := prompt.Build(prompt.BuildParams{
		Project: request,
		Profile: profile.Snapshot,
		Themes:  themes,
		Ranking: normalized.Ranking,
		Plan:    profile.Plan,
	})

	rawOutput, err := s.generator.Generate(ctx, promptText)
	if err != nil {
		s.recordAudit(profile, false, err.Error())
		s.publishEvent(userID, domain.EventGenerationFailed, map[string]any{"reason": "service"})
		metrics.IncGenerationFailure("service")
		return domain.GeneratedArtifact{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	html, err := ExtractHTML(rawOutput)
	if err != nil {
		s.recordAudit(profile, false, err.Error())
		s.publishEvent(userID, domain.EventGenerationFailed, map[string]any{"reason": "extraction"})
		metrics.IncGenerationFailure("extraction")
		return domain.GeneratedArtifact{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	// Дальше только бухгалтерия: её ошибки логируются, но не отнимают
	// у пользователя уже сгенерированный документ.
	s.recordAudit(profile, true, "")

	usage, err := s.quota.Commit(ctx, profile)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("generation: счётчики не обновлены")
		limits := profile.Limits()
		usage = domain.UsageSnapshot{
			Current:   profile.DailyGenerationCount + 1,
			Limit:     limits.DailyGenerations,
			Remaining: max(limits.DailyGenerations-profile.DailyGenerationCount-1, 0),
			IsAdmin:   profile.IsAdmin,
		}
	}

	if _, err := s.projects.SaveProject(ctx, domain.Project{
		UserID:      userID,
		ServiceName: request.ServiceName,
		Purpose:     request.Purpose,
		Language:    request.Language,
		HTML:        html,
	}); err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("generation: проект не сохранён")
	}

	s.publishEvent(userID, domain.EventGenerationSucceeded, map[string]any{"plan": string(profile.Plan)})

	return domain.GeneratedArtifact{HTML: html, Usage: usage}, nil
}

// Retry повторяет генерацию из кэшированного входа.
func (s *Service) Retry(ctx context.Context, userID int64) (domain.GeneratedArtifact, error) {
	data, err := s.cache.Get(retryKey(userID))
	if err != nil {
		return domain.GeneratedArtifact{}, ErrNoRetryPayload
	}
	var payload RetryPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.GeneratedArtifact{}, fmt.Errorf("разбор кэша повтора: %w", err)
	}
	return s.Generate(ctx, userID, payload.Request, payload.Events)
}

func (s *Service) cacheRetryPayload(userID int64, request domain.ProjectRequest, events []domain.SwipeEvent) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(RetryPayload{Request: request, Events: events})
	if err != nil {
		return
	}
	if err := s.cache.Set(retryKey(userID), data, s.retryTTL); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("generation: кэш повтора недоступен")
	}
}

// recordAudit пишет журнал попытки. Вызывается и на ошибочном пути до
// возврата ошибки наружу.
func (s *Service) recordAudit(profile domain.Profile, success bool, errorMessage string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	record := domain.AuditRecord{
		UserID:       profile.UserID,
		Success:      success,
		ErrorMessage: errorMessage,
		Plan:         profile.Plan,
	}
	if err := s.audit.RecordGeneration(ctx, record); err != nil {
		s.log.Error().Err(err).Int64("user_id", profile.UserID).Msg("generation: журнал не записан")
	}
}

// publishQuotaRejected публикует событие об отказе не чаще раза в час на
// пользователя: UI у лимита долбит API многократно, очереди хватит одного.
func (s *Service) publishQuotaRejected(userID int64, qe *domain.QuotaExceededError) {
	publish := func() error {
		s.publishEvent(userID, domain.EventQuotaRejected, map[string]any{
			"kind":  qe.Kind,
			"used":  qe.Used,
			"limit": qe.Limit,
		})
		return nil
	}
	if s.cache == nil {
		_ = publish()
		return
	}
	key := fmt.Sprintf("generation:quota_rejected:%d", userID)
	if err := s.cache.Once(key, time.Hour, publish); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("generation: дедупликация события не сработала")
		_ = publish()
	}
}

func (s *Service) publishEvent(userID int64, name string, metadata map[string]any) {
	if s.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	event := domain.GenerationEvent{
		Event:      name,
		UserID:     userID,
		Metadata:   metadata,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.events.Enqueue(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("event", name).Msg("generation: событие не опубликовано")
	}
}

func retryKey(userID int64) string {
	return fmt.Sprintf("generation:retry:%d", userID)
}
