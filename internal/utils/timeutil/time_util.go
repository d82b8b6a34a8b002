package timeutil

import (
	"context"
	"sync"
	"time"

	"go.uber.org/fx"
)

type (
	// Clock abstracts the wall clock so that timestamps can be pinned in tests.
	Clock interface {
		Now() time.Time
	}

	realClock struct{}

	FixedClock struct {
		mu  sync.Mutex
		now time.Time
	}
)

var (
	_ Clock = realClock{}
	_ Clock = (*FixedClock)(nil)

	Module = fx.Options(
		fx.Provide(NewClock),
	)
)

func NewClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the fixed clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Sleep blocks for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func TimeToISO8601(date time.Time) string {
	if date.IsZero() {
		return ""
	}

	return date.UTC().Format(time.RFC3339Nano)
}

func ParseISO8601(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
