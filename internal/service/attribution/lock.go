package attribution

import (
	"context"
	"fmt"
	"sync"

	"github.com/heartmarshall/attribution-portal/internal/domain"
)

// LocalLocker serializes processing per (client, domain) within one process.
// Entries are reference-counted and dropped once no goroutine holds or waits
// for them.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sem  chan struct{}
	refs int
}

// NewLocalLocker creates an in-process keyed locker.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*keyLock)}
}

// Lock blocks until the key is free or ctx is done. The returned function
// releases the lock and is safe to call more than once.
func (l *LocalLocker) Lock(ctx context.Context, clientID, emailDomain string) (func(), error) {
	key := clientID + "/" + emailDomain

	l.mu.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{sem: make(chan struct{}, 1)}
		l.locks[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	select {
	case kl.sem <- struct{}{}:
	case <-ctx.Done():
		l.release(key, kl)
		return nil, fmt.Errorf("lock %s: %w: %w", key, domain.ErrLockTimeout, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-kl.sem
			l.release(key, kl)
		})
	}, nil
}

func (l *LocalLocker) release(key string, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, key)
	}
}
