package locker

import (
	"context"
	"sync"
	"time"
)

// Locker serializes critical sections by key. Used to close the eligibility
// check-then-create race on (studentID, institutionID).
type Locker interface {
	// Acquire takes the lock for key, returning a release func. ok is false
	// when the lock is already held by someone else.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool, err error)
}

// MemoryLocker is the single-process fallback when Redis is not configured.
type MemoryLocker struct {
	mu   sync.Mutex
	held map[string]time.Time
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{held: make(map[string]time.Time)}
}

func (l *MemoryLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	if expiry, exists := l.held[key]; exists && now.Before(expiry) {
		return nil, false, nil
	}
	l.held[key] = now.Add(ttl)
	release := func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, key)
	}
	return release, true, nil
}
