package redis

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// GenerationLock holds the per-chapter generation lease. Only one generation
// per chapter may be in flight; a second submission is rejected, not queued.
// The TTL bounds lease lifetime if the process dies mid-generation.
type GenerationLock struct {
	client *Client
	ttl    time.Duration
}

// NewGenerationLock creates a generation lock with the given lease TTL.
func NewGenerationLock(client *Client, ttl time.Duration) *GenerationLock {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &GenerationLock{client: client, ttl: ttl}
}

// LeaseTTL derives the lock lifetime from the completion call timeout. The
// lease must outlive the call or a second generation could start while the
// first is still running; the margin covers context assembly and persistence.
// An unbounded call timeout falls back to the default lease.
func LeaseTTL(callTimeout time.Duration) time.Duration {
	if callTimeout <= 0 {
		return 0
	}
	return callTimeout + 30*time.Second
}

func lockKey(chapterID string) string {
	return fmt.Sprintf("histoires:generation:lock:%s", chapterID)
}

// TryAcquire takes the lease for a chapter. Returns false when a generation
// is already running.
func (l *GenerationLock) TryAcquire(ctx context.Context, chapterID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "redis.GenerationLock.TryAcquire",
		trace.WithAttributes(attribute.String("chapter_id", chapterID)))
	defer span.End()

	ok, err := l.client.rdb.SetNX(ctx, lockKey(chapterID), time.Now().UnixMilli(), l.ttl).Result()
	if err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("failed to acquire generation lock: %w", err)
	}
	return ok, nil
}

// Release frees the lease for a chapter. The release runs detached from the
// request context so a cancelled generation still unlocks the chapter.
func (l *GenerationLock) Release(chapterID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	ctx, span := tracer.Start(ctx, "redis.GenerationLock.Release",
		trace.WithAttributes(attribute.String("chapter_id", chapterID)))
	defer span.End()

	if err := l.client.rdb.Del(ctx, lockKey(chapterID)).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to release generation lock: %w", err)
	}
	return nil
}
