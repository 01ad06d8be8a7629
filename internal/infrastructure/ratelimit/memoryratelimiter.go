package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// idleTTL is the longest window. A key idle that long has full buckets
	// again, so dropping it does not change any decision.
	idleTTL       = time.Hour
	sweepInterval = time.Minute
)

type bucket struct {
	limiters []*rate.Limiter
	lastSeen time.Time
}

// MemoryRateLimiter is the single-process limiter used when redis is
// disabled. Each window is a token bucket that refills evenly and starts
// full. Keys idle for idleTTL are swept on Allow.
type MemoryRateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow takes one token from every window. The config seen on a key's first
// request fixes its limits until Reset or eviction.
func (l *MemoryRateLimiter) Allow(_ context.Context, key string, config RateLimitConfig) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{}
		for _, w := range windows(config) {
			every := rate.Every(w.duration / time.Duration(w.limit))
			b.limiters = append(b.limiters, rate.NewLimiter(every, w.limit))
		}
		l.buckets[key] = b
	}
	b.lastSeen = now

	for _, lim := range b.limiters {
		if lim.TokensAt(now) < 1 {
			return false, nil
		}
	}
	for _, lim := range b.limiters {
		lim.AllowN(now, 1)
	}
	return true, nil
}

func (l *MemoryRateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < sweepInterval {
		return
	}
	l.lastSweep = now
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= idleTTL {
			delete(l.buckets, key)
		}
	}
}

func (l *MemoryRateLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
	return nil
}

// Len reports how many keys are tracked.
func (l *MemoryRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
