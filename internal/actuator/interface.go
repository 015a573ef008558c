package actuator

import (
	"context"
	"time"
)

// Line is one digital output line.
type Line interface {
	Set(high bool) error
}

// Sleeper blocks for a duration or until the context is canceled.
// Injected so the buzzer pulse is testable without real time elapsing.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration)
}

// Commands is the actuator drive derived from one cycle's alerts.
// BuzzerPulse is the blocking hold time of the buzzer; zero means no
// pulse.
type Commands struct {
	Green       bool
	Yellow      bool
	Red         bool
	Fan         bool
	BuzzerPulse time.Duration
}
