package engine

import (
	"context"
	"time"
)

// WaitFunc suspends the caller for d or until ctx is done
type WaitFunc func(ctx context.Context, d time.Duration) error

// Clock paces the game loop with a fixed delay between tick starts.
// A tick that overruns its interval is followed immediately by the next one;
// lost time is not made up.
type Clock struct {
	interval  time.Duration
	time      TimeProvider
	wait      WaitFunc
	tickStart time.Time
	ticks     uint64
}

// NewClock creates a clock whose first tick is due one interval from now
func NewClock(interval time.Duration, tp TimeProvider) *Clock {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	return &Clock{
		interval:  interval,
		time:      tp,
		wait:      sleepContext,
		tickStart: tp.Now(),
	}
}

// SetWaitFunc replaces the sleep used between ticks
func (c *Clock) SetWaitFunc(w WaitFunc) {
	c.wait = w
}

// Interval returns the configured tick interval
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Ticks returns how many ticks have elapsed
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Now returns the clock's current time
func (c *Clock) Now() time.Time {
	return c.time.Now()
}

// WaitForTick blocks until the interval since the previous tick start has elapsed
func (c *Clock) WaitForTick(ctx context.Context) error {
	elapsed := c.time.Now().Sub(c.tickStart)
	if remaining := c.interval - elapsed; remaining > 0 {
		if err := c.wait(ctx, remaining); err != nil {
			return err
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	c.tickStart = c.time.Now()
	c.ticks++
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
