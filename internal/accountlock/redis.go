package accountlock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/moneyport/moneyport/internal/domain"
)

const lockKeyPrefix = "accountlock:"

// releaseScript deletes the key only when it still carries the holder's
// token, so an expired lock taken over by someone else is never released
// by the previous holder.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLock is a lease-based distributed account lock. The lease bounds how
// long a crashed holder can starve an account.
type RedisLock struct {
	client        *redis.Client
	lease         time.Duration
	retryInterval time.Duration

	mu     sync.Mutex
	tokens map[domain.AccountID]string
}

// NewRedisLock returns a Redis-backed account lock with the given lease.
func NewRedisLock(client *redis.Client, lease time.Duration) *RedisLock {
	return &RedisLock{
		client:        client,
		lease:         lease,
		retryInterval: 10 * time.Millisecond,
		tokens:        make(map[domain.AccountID]string),
	}
}

func lockKey(id domain.AccountID) string {
	return fmt.Sprintf("%s%d", lockKeyPrefix, id.Int64())
}

// Acquire polls SET NX until the lock is taken or ctx is done.
func (r *RedisLock) Acquire(ctx context.Context, id domain.AccountID) error {
	token := uuid.NewString()

	ticker := time.NewTicker(r.retryInterval)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, lockKey(id), token, r.lease).Result()
		if err != nil {
			return fmt.Errorf("redis setnx: %w", err)
		}

		if ok {
			r.mu.Lock()
			r.tokens[id] = token
			r.mu.Unlock()

			return nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Release relinquishes the lock if this instance still holds it.
func (r *RedisLock) Release(ctx context.Context, id domain.AccountID) error {
	r.mu.Lock()
	token, ok := r.tokens[id]
	delete(r.tokens, id)
	r.mu.Unlock()

	if !ok {
		return ErrNotLocked
	}

	deleted, err := releaseScript.Run(ctx, r.client, []string{lockKey(id)}, token).Int()
	if err != nil {
		return fmt.Errorf("redis release: %w", err)
	}

	if deleted == 0 {
		return ErrNotLocked
	}

	return nil
}
