package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"lp-forge/internal/adapters/catalog"
	"lp-forge/internal/adapters/generator"
	"lp-forge/internal/adapters/repo"
	"lp-forge/internal/domain"
	"lp-forge/internal/infra/cache"
	"lp-forge/internal/infra/config"
	"lp-forge/internal/infra/db"
	httpinfra "lp-forge/internal/infra/http"
	"lp-forge/internal/infra/metrics"
	"lp-forge/internal/infra/openai"
	"lp-forge/internal/infra/queue"
	"lp-forge/internal/usecase/generation"
	"lp-forge/internal/usecase/quota"
)

func main() {
	cfg := config.Load()

	metrics.MustRegister(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(cfg.PGDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("api: нет подключения к БД")
	}
	defer pool.Close()

	samples, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("api: каталог карточек не загрузился")
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	repoAdapter := repo.NewPostgres(pool)

	var textGenerator domain.TextGenerator
	if cfg.OpenAI.APIKey != "" {
		client := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Timeout)
		textGenerator = generator.NewOpenAI(client, cfg.OpenAI.Model, cfg.OpenAI.Timeout)
	} else {
		log.Warn().Msg("api: OPENAI_API_KEY не задан, включён стаб генератора")
		textGenerator = generator.Stub{}
	}

	service := generation.NewService(
		samples,
		repoAdapter,
		repoAdapter,
		repoAdapter,
		quota.NewService(repoAdapter),
		textGenerator,
		cache.NewRedis(redisClient),
		queue.NewRedisEventQueue(redisClient, cfg.Queues.Events),
		cfg.Retry.CacheTTL,
		log.With().Str("component", "generation").Logger(),
	)

	srv := httpinfra.NewServer(log.With().Str("component", "http").Logger())
	r := srv.Router

	r.Get("/api/v1/samples", func(w http.ResponseWriter, r *http.Request) {
		httpinfra.WriteJSON(w, http.StatusOK, map[string]any{"samples": service.Samples()})
	})

	r.Post("/api/v1/score", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req scoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpinfra.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		normalized, themes := service.Score(req.Events)
		httpinfra.WriteJSON(w, http.StatusOK, map[string]any{
			"normalized": normalized.Normalized,
			"ranking":    normalized.Ranking,
			"dominant":   themes.Dominant,
			"accent":     themes.Accent,
			"suppressed": themes.Suppressed,
		})
	})

	r.Group(func(protected chi.Router) {
		protected.Use(httpinfra.AuthMiddleware(cfg.AuthSecret))

		protected.Get("/api/v1/usage", func(w http.ResponseWriter, r *http.Request) {
			userID, _ := httpinfra.UserIDFrom(r.Context())
			usage, err := service.Usage(r.Context(), userID)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			httpinfra.WriteJSON(w, http.StatusOK, map[string]any{"usage": usage})
		})

		protected.Post("/api/v1/generate", func(w http.ResponseWriter, r *http.Request) {
			defer r.Body.Close()
			userID, _ := httpinfra.UserIDFrom(r.Context())
			var req generateRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httpinfra.WriteError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			if msg, ok := validateRequest(req.Project); !ok {
				httpinfra.WriteError(w, http.StatusBadRequest, msg)
				return
			}
			artifact, err := service.Generate(r.Context(), userID, req.Project, req.Events)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			httpinfra.WriteJSON(w, http.StatusOK, artifact)
		})

		protected.Post("/api/v1/generate/retry", func(w http.ResponseWriter, r *http.Request) {
			userID, _ := httpinfra.UserIDFrom(r.Context())
			artifact, err := service.Retry(r.Context(), userID)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			httpinfra.WriteJSON(w, http.StatusOK, artifact)
		})
	})

	metrics.StartServer(ctx, log.With().Str("component", "metrics").Logger(), cfg.MetricsAddr)
	go func() {
		if err := srv.Start(":" + strconv.Itoa(cfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("api: сервер остановлен")
		}
	}()
	<-ctx.Done()
	log.Info().Msg("api: остановка")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

type scoreRequest struct {
	Events []domain.SwipeEvent `json:"events"`
}

type generateRequest struct {
	Project domain.ProjectRequest `json:"project"`
	Events  []domain.SwipeEvent   `json:"events"`
}

func validateRequest(req domain.ProjectRequest) (string, bool) {
	if req.ServiceName == "" {
		return "service_name is required", false
	}
	if !req.Purpose.Valid() {
		return "unknown purpose", false
	}
	if !req.Language.Valid() {
		return "unsupported language", false
	}
	return "", true
}

// writeServiceError переводит доменные ошибки в HTTP-статусы: отказ по
// квоте отдаёт снапшот использования, ошибка генерации помечается как
// повторяемая.
func writeServiceError(w http.ResponseWriter, err error) {
	if qe, ok := domain.IsQuotaExceeded(err); ok {
		httpinfra.WriteJSON(w, http.StatusForbidden, map[string]any{
			"error": "quota exceeded",
			"usage": map[string]any{
				"kind":      qe.Kind,
				"used":      qe.Used,
				"limit":     qe.Limit,
				"resets_at": qe.ResetsAt.UTC().Format(time.RFC3339),
			},
		})
		return
	}
	switch {
	case errors.Is(err, generation.ErrGenerationFailed):
		httpinfra.WriteError(w, http.StatusBadGateway, "generation failed, retry available")
	case errors.Is(err, generation.ErrNoRetryPayload):
		httpinfra.WriteError(w, http.StatusNotFound, "no cached generation request")
	case errors.Is(err, domain.ErrProfileNotFound):
		httpinfra.WriteError(w, http.StatusNotFound, "profile not found")
	default:
		log.Error().Err(err).Msg("api: внутренняя ошибка")
		httpinfra.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
