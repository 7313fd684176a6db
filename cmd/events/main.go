package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	redis "github.com/redis/go-redis/v9"

	"lp-forge/internal/adapters/repo"
	"lp-forge/internal/infra/config"
	"lp-forge/internal/infra/db"
	applog "lp-forge/internal/infra/log"
	"lp-forge/internal/infra/queue"
)

// Воркер вычитывает бизнесовые события генерации из очереди и складывает
// их в Postgres. Потеря отдельного события некритична: очередь не даёт
// гарантий доставки, метрики продукта терпят пропуски.
func main() {
	cfg := config.Load()
	logger := applog.NewLogger(cfg.AppEnv).With().Str("component", "events").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(cfg.PGDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("events: нет подключения к БД")
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	repoAdapter := repo.NewPostgres(pool)
	events := queue.NewRedisEventQueue(redisClient, cfg.Queues.Events)

	logger.Info().Str("queue", cfg.Queues.Events).Msg("events: старт")
	for {
		event, err := events.Pop(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				logger.Info().Msg("events: остановка")
				return
			}
			logger.Error().Err(err).Msg("events: ошибка чтения очереди")
			time.Sleep(time.Second)
			continue
		}
		if err := repoAdapter.RecordBusinessMetric(ctx, event); err != nil {
			logger.Error().Err(err).Str("event", event.Event).Int64("user_id", event.UserID).Msg("events: событие не сохранено")
		}
	}
}
