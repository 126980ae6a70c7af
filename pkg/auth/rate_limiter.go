package auth

import (
	"context"
	"sync"
	"time"
)

// RateLimiter limits how often a key (an IP, a user id) may act.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// TokenBucketLimiter implements in-memory token bucket rate limiting. State
// is per process, which is good enough for a single Lambda container or a
// single API instance.
type TokenBucketLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	maxTokens  int
	refillRate time.Duration
}

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// NewTokenBucketLimiter creates a limiter allowing maxTokens requests per
// refill interval.
func NewTokenBucketLimiter(maxTokens int, refillRate time.Duration) *TokenBucketLimiter {
	return &TokenBucketLimiter{
		buckets:    make(map[string]*bucket),
		maxTokens:  maxTokens,
		refillRate: refillRate,
	}
}

// Allow reports whether the key may make a request now.
func (l *TokenBucketLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, exists := l.buckets[key]
	if !exists {
		b = &bucket{tokens: l.maxTokens, lastRefill: time.Now()}
		l.buckets[key] = b
	}

	elapsed := time.Since(b.lastRefill)
	if elapsed >= l.refillRate {
		b.tokens = l.maxTokens
		b.lastRefill = time.Now()
	}

	if b.tokens <= 0 {
		return false, nil
	}

	b.tokens--
	return true, nil
}
