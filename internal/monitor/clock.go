package monitor

import (
	"context"
	"time"
)

type systemClock struct{}

// SystemClock returns the wall clock. It also serves as the actuator
// sleep primitive so the buzzer pulse and cycle pacing share one time
// source.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
