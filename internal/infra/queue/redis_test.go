package queue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"lp-forge/internal/domain"
)

func TestEnqueuePopRoundTrip(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	queue := NewRedisEventQueue(client, "generation_events")

	event := domain.GenerationEvent{
		Event:      domain.EventGenerationSucceeded,
		UserID:     42,
		Metadata:   map[string]any{"plan": "free"},
		OccurredAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := queue.Enqueue(context.Background(), event); err != nil {
		t.Fatalf("не ожидали ошибку Enqueue: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	got, err := queue.Pop(ctx)
	if err != nil {
		t.Fatalf("не ожидали ошибку Pop: %v", err)
	}
	if got.Event != event.Event || got.UserID != event.UserID {
		t.Fatalf("событие исказилось при передаче: %+v", got)
	}
}

func TestPopHonorsContextCancel(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	queue := NewRedisEventQueue(client, "empty")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if _, err := queue.Pop(ctx); err == nil {
		t.Fatalf("пустая очередь с отменённым контекстом должна возвращать ошибку")
	}
}
