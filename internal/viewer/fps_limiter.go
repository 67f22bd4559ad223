package viewer

import (
	"time"

	"orrery/internal/config"
)

// pausedFPS caps a paused viewer so it does not spin a core redrawing a
// still picture.
const pausedFPS = 30

// FPSLimiter paces the frame loop to the configured frame rate.
type FPSLimiter struct {
	next time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{now: time.Now, sleep: time.Sleep}
}

// frameBudget returns the target frame time, 0 for unlimited.
func frameBudget(limit int, paused bool) time.Duration {
	if paused && (limit <= 0 || limit > pausedFPS) {
		limit = pausedFPS
	}
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}

// Wait blocks until the next frame is due. It sleeps most of the way and
// spins the last stretch, which keeps high frame caps accurate.
func (f *FPSLimiter) Wait(paused bool) {
	target := frameBudget(config.GetFPSLimit(), paused)
	if target == 0 {
		f.next = time.Time{}
		return
	}

	if f.next.IsZero() {
		f.next = f.now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := f.next.Sub(f.now())
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			f.sleep(remaining - 200*time.Microsecond)
		}
		if !f.next.After(f.now()) {
			break
		}
	}

	// after a hitch, resync instead of rushing frames to catch up
	if late := f.now().Sub(f.next); late > target {
		f.next = f.now().Add(target)
	}
}
