// Package ratelimit enforces the single global request budget shared by every
// fetch in a run. The limiter is an explicit object threaded through the
// client rather than ambient sleep state, so concurrent partition fetches
// would still funnel through one budget.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

const (
	defaultInterval = 250 * time.Millisecond
	defaultCooldown = 10 * time.Second
)

// Limiter spaces requests by a minimum interval and provides the fixed
// cool-down applied after an upstream 429.
type Limiter struct {
	mu       sync.Mutex
	interval time.Duration
	cooldown time.Duration
	next     time.Time

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New constructs a Limiter. Non-positive durations fall back to defaults.
func New(interval, cooldown time.Duration) *Limiter {
	if interval <= 0 {
		interval = defaultInterval
	}
	if cooldown <= 0 {
		cooldown = defaultCooldown
	}
	return &Limiter{
		interval: interval,
		cooldown: cooldown,
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

// Wait blocks until the shared budget allows the next request, spaced by the
// limiter's default interval.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.WaitInterval(ctx, l.interval)
}

// WaitInterval blocks like Wait but reserves a caller-specific spacing after
// this request; resources with tighter upstream quotas (games) pass a longer
// interval while still sharing the one budget.
func (l *Limiter) WaitInterval(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = l.interval
	}

	l.mu.Lock()
	now := l.now()
	wait := l.next.Sub(now)
	if wait < 0 {
		wait = 0
	}
	l.next = now.Add(wait + interval)
	l.mu.Unlock()

	if wait == 0 {
		return nil
	}
	return l.sleep(ctx, wait)
}

// Cooldown applies the fixed rate-limit recovery pause and pushes the next
// request slot past it.
func (l *Limiter) Cooldown(ctx context.Context) error {
	l.mu.Lock()
	if resume := l.now().Add(l.cooldown); resume.After(l.next) {
		l.next = resume
	}
	d := l.cooldown
	l.mu.Unlock()

	return l.sleep(ctx, d)
}

// CooldownInterval reports the configured 429 recovery pause.
func (l *Limiter) CooldownInterval() time.Duration {
	return l.cooldown
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
