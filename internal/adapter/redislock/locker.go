// Package redislock implements the per-domain processing lock on Redis so
// that several engine instances serialize writes to the same aggregate.
package redislock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/attribution-portal/internal/domain"
)

const keyPrefix = "attribution:lock:"

const (
	minBackoff = 10 * time.Millisecond
	maxBackoff = 250 * time.Millisecond
)

// releaseScript deletes the key only when it still holds our token, so an
// expired lock taken over by another holder is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker acquires per-(client, domain) locks with SET NX PX.
type Locker struct {
	client *redis.Client
	log    *slog.Logger
	ttl    time.Duration
	wait   time.Duration
}

// New creates a Locker. ttl bounds how long a crashed holder blocks the key;
// wait bounds how long Lock retries before giving up (0 means until ctx ends).
func New(client *redis.Client, log *slog.Logger, ttl, wait time.Duration) *Locker {
	return &Locker{
		client: client,
		log:    log.With("adapter", "redislock"),
		ttl:    ttl,
		wait:   wait,
	}
}

// Lock blocks until the lock for (clientID, emailDomain) is held, the wait
// budget is spent or ctx is done. The returned func releases the lock.
func (l *Locker) Lock(ctx context.Context, clientID, emailDomain string) (func(), error) {
	key := keyPrefix + clientID + ":" + emailDomain
	token := uuid.NewString()

	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	backoff := minBackoff
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("redislock.Lock %s: %w", key, err)
		}
		if ok {
			return l.releaser(key, token), nil
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("lock %s: %w: %w", key, domain.ErrLockTimeout, ctx.Err())
		case <-timer.C:
		}
		backoff = min(backoff*2, maxBackoff)
	}
}

func (l *Locker) releaser(key, token string) func() {
	var once sync.Once
	return func() {
		once.Do(func() { l.release(key, token) })
	}
}

func (l *Locker) release(key, token string) {
	// The caller's ctx may already be cancelled; release on a fresh one.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
		l.log.Warn("release lock", slog.String("key", key), slog.String("error", err.Error()))
	}
}
