package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestLimiter(interval, cooldown time.Duration) (*Limiter, *[]time.Duration) {
	l := New(interval, cooldown)
	clock := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	slept := []time.Duration{}
	l.now = func() time.Time { return clock }
	l.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		clock = clock.Add(d)
		return nil
	}
	return l, &slept
}

func TestWaitFirstCallDoesNotBlock(t *testing.T) {
	l, slept := newTestLimiter(time.Second, 10*time.Second)
	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(*slept) != 0 {
		t.Fatalf("expected first call to pass immediately, slept %v", *slept)
	}
}

func TestWaitSpacesBackToBackCalls(t *testing.T) {
	l, slept := newTestLimiter(time.Second, 10*time.Second)
	ctx := context.Background()

	if err := l.Wait(ctx); err != nil {
		t.Fatalf("first wait: %v", err)
	}
	if err := l.Wait(ctx); err != nil {
		t.Fatalf("second wait: %v", err)
	}
	if len(*slept) != 1 || (*slept)[0] != time.Second {
		t.Fatalf("expected one 1s sleep between calls, got %v", *slept)
	}
}

func TestWaitIntervalUsesCallerSpacing(t *testing.T) {
	l, slept := newTestLimiter(time.Second, 10*time.Second)
	ctx := context.Background()

	if err := l.WaitInterval(ctx, 3*time.Second); err != nil {
		t.Fatalf("first wait: %v", err)
	}
	if err := l.WaitInterval(ctx, 3*time.Second); err != nil {
		t.Fatalf("second wait: %v", err)
	}
	if len(*slept) != 1 || (*slept)[0] != 3*time.Second {
		t.Fatalf("expected one 3s sleep, got %v", *slept)
	}
}

func TestCooldownPushesNextSlot(t *testing.T) {
	l, slept := newTestLimiter(time.Second, 10*time.Second)
	ctx := context.Background()

	if err := l.Wait(ctx); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if err := l.Cooldown(ctx); err != nil {
		t.Fatalf("cooldown: %v", err)
	}
	// The cooldown itself, then no extra wait needed because the clock
	// advanced past the reserved slot.
	if err := l.Wait(ctx); err != nil {
		t.Fatalf("wait after cooldown: %v", err)
	}
	if len(*slept) != 1 || (*slept)[0] != 10*time.Second {
		t.Fatalf("expected a single 10s cooldown sleep, got %v", *slept)
	}
}

func TestSleepHonorsCancellation(t *testing.T) {
	l := New(time.Second, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.Cooldown(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
