package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionLocker guards a review session against concurrent in-flight
// decision writes: at most one PASS/REVISE may be pending per session.
type SessionLocker interface {
	Acquire(ctx context.Context, sessionId uuid.UUID) (bool, error)
	Release(ctx context.Context, sessionId uuid.UUID)
}

// RedisLocker implements SessionLocker with SET NX and a TTL safety
// net, so a crashed instance cannot hold a session hostage.
type RedisLocker struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisLocker(rdb *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{rdb: rdb, ttl: ttl}
}

func lockKey(sessionId uuid.UUID) string {
	return fmt.Sprintf("review:action:%s", sessionId)
}

func (l *RedisLocker) Acquire(ctx context.Context, sessionId uuid.UUID) (bool, error) {
	return l.rdb.SetNX(ctx, lockKey(sessionId), 1, l.ttl).Result()
}

func (l *RedisLocker) Release(ctx context.Context, sessionId uuid.UUID) {
	l.rdb.Del(ctx, lockKey(sessionId))
}

// MemoryLocker is the single-instance fallback used when Redis is
// unavailable, and in tests.
type MemoryLocker struct {
	mu   sync.Mutex
	held map[uuid.UUID]bool
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{held: make(map[uuid.UUID]bool)}
}

func (l *MemoryLocker) Acquire(ctx context.Context, sessionId uuid.UUID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[sessionId] {
		return false, nil
	}
	l.held[sessionId] = true
	return true, nil
}

func (l *MemoryLocker) Release(ctx context.Context, sessionId uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, sessionId)
}
