// Package ratelimit implements a fixed-window rate limiter on top of a shared
// TTL-capable counter store.
//
// Each (endpoint, caller) pair gets one counter per window; the key embeds the
// upcoming window boundary so a new window starts from a fresh counter and old
// ones expire on their own. Fixed windows keep state O(1) per window at the
// cost of bursts of up to roughly twice the limit at window edges.
package ratelimit

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Result classifies one request and carries the metadata exposed on every
// response, throttled or not.
type Result struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	Reset     int64 // epoch seconds of the window boundary
}

type Limiter struct {
	store            CounterStore
	limit            int64
	per              int64 // window length in seconds
	expirationWindow int64 // seconds past the boundary before the counter is reclaimed
	timeout          time.Duration
	failOpen         bool
	now              func() time.Time
}

type Option func(*Limiter)

// WithExpirationWindow sets how long past the window boundary the counter
// stays alive, so late stragglers in the same window still see it.
func WithExpirationWindow(d time.Duration) Option {
	return func(l *Limiter) { l.expirationWindow = int64(d / time.Second) }
}

// WithTimeout bounds each counter-store round trip.
func WithTimeout(d time.Duration) Option {
	return func(l *Limiter) { l.timeout = d }
}

// WithFailOpen admits requests when the counter store is unreachable instead
// of rejecting them. Meant for read-only routes; mutating routes stay
// fail-closed.
func WithFailOpen() Option {
	return func(l *Limiter) { l.failOpen = true }
}

// WithClock overrides the time source. Tests use this to cross window
// boundaries without sleeping.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

func NewLimiter(store CounterStore, limit int64, per time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		store:            store,
		limit:            limit,
		per:              int64(per / time.Second),
		expirationWindow: 10,
		timeout:          2 * time.Second,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.per <= 0 {
		l.per = 1
	}
	return l
}

// Check atomically counts this request against the current window for
// (endpoint, caller) and classifies it. The returned error is non-nil only
// when the counter store failed and the limiter is fail-closed.
func (l *Limiter) Check(ctx context.Context, endpoint string, caller string) (Result, error) {
	reset := (l.now().Unix()/l.per)*l.per + l.per
	key := fmt.Sprintf("rate-limit/%s/%s/%d", endpoint, caller, reset)

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	count, err := l.store.IncrementWithExpiry(ctx, key, time.Unix(reset+l.expirationWindow, 0))
	if err != nil {
		if l.failOpen {
			log.Printf("rate limit counter unavailable, admitting: %v", err)
			return Result{Allowed: true, Limit: l.limit, Remaining: l.limit, Reset: reset}, nil
		}
		return Result{}, fmt.Errorf("rate limit counter: %w", err)
	}

	current := count
	if current > l.limit {
		current = l.limit
	}
	return Result{
		Allowed:   count <= l.limit,
		Limit:     l.limit,
		Remaining: l.limit - current,
		Reset:     reset,
	}, nil
}
