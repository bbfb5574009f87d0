package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock key only when it still holds our value,
// so an expired-and-reacquired lock is never released by the old holder.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`)

// Lock represents a distributed lock backed by SET NX
type Lock struct {
	client          *Client
	key             string
	value           string
	namespace       string
	ttl             time.Duration
	refreshInterval time.Duration
}

// NewLock creates a new distributed lock with the given TTL
func NewLock(client *Client, key string, ttl time.Duration) *Lock {
	return &Lock{
		client: client,
		key:    key,
		value:  uuid.New().String(),
		ttl:    ttl,
	}
}

// NewScheduledTaskLock creates a lock intended to be held for the lifetime of
// a scheduled task runner: it is acquired once and kept alive by AutoRefresh.
func NewScheduledTaskLock(client *Client, key string, ttl time.Duration, refreshInterval time.Duration, namespace string) *Lock {
	return &Lock{
		client:          client,
		key:             key,
		value:           uuid.New().String(),
		namespace:       namespace,
		ttl:             ttl,
		refreshInterval: refreshInterval,
	}
}

// buildLockKey constructs the full lock key using namespace::key format
func (l *Lock) buildLockKey() string {
	if l.namespace != "" {
		return l.namespace + "::" + l.key
	}
	return l.key
}

// Lock attempts to acquire the lock once. It returns an error when the lock
// is already held by another owner.
func (l *Lock) Lock(ctx context.Context) error {
	acquired, err := l.client.GetClient().SetNX(ctx, l.buildLockKey(), l.value, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to acquire lock %s: %w", l.buildLockKey(), err)
	}
	if !acquired {
		return fmt.Errorf("lock %s is held by another instance", l.buildLockKey())
	}
	return nil
}

// Unlock releases the lock when it is still held by this owner
func (l *Lock) Unlock(ctx context.Context) error {
	_, err := releaseScript.Run(ctx, l.client.GetClient(), []string{l.buildLockKey()}, l.value).Result()
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", l.buildLockKey(), err)
	}
	return nil
}

// Refresh extends the lock TTL when it is still held by this owner
func (l *Lock) Refresh(ctx context.Context) error {
	ok, err := l.client.GetClient().Expire(ctx, l.buildLockKey(), l.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to refresh lock %s: %w", l.buildLockKey(), err)
	}
	if !ok {
		return fmt.Errorf("lock %s no longer exists", l.buildLockKey())
	}
	return nil
}

// AutoRefresh keeps the lock alive on the configured refresh interval until
// the context is canceled or a refresh fails. The returned channel receives
// the terminal error (nil on context cancellation) and is then closed.
func (l *Lock) AutoRefresh(ctx context.Context) <-chan error {
	errChan := make(chan error, 1)

	interval := l.refreshInterval
	if interval <= 0 {
		interval = l.ttl / 3
	}

	go func() {
		defer close(errChan)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				errChan <- nil
				return
			case <-ticker.C:
				if err := l.Refresh(ctx); err != nil {
					errChan <- err
					return
				}
			}
		}
	}()

	return errChan
}
