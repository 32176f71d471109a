// Package throttle gates how often a frequently fired event is allowed to act.
package throttle

import (
	"time"

	"golang.org/x/time/rate"
)

const DefaultInterval = 5 * time.Second

// Timer grants at most one permission per interval. The first permission
// becomes available one interval after the timer is created.
type Timer struct {
	interval time.Duration
	limiter  *rate.Limiter
	now      func() time.Time
}

func New(interval time.Duration) *Timer {
	return NewWithClock(interval, time.Now)
}

// NewWithClock is like New but reads the current time from now.
func NewWithClock(interval time.Duration, now func() time.Time) *Timer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if now == nil {
		now = time.Now
	}
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	// consume the initial burst so the clock starts at creation
	limiter.AllowN(now(), 1)
	return &Timer{
		interval: interval,
		limiter:  limiter,
		now:      now,
	}
}

// Allow reports whether an emission is due and, if so, restarts the interval.
func (t *Timer) Allow() bool {
	return t.limiter.AllowN(t.now(), 1)
}

func (t *Timer) Interval() time.Duration {
	return t.interval
}
