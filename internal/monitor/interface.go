package monitor

import (
	"context"
	"time"

	"codeberg.org/mutker/zonectl/internal/actuator"
	"codeberg.org/mutker/zonectl/internal/alert"
	"codeberg.org/mutker/zonectl/internal/sensor"
)

// Clock abstracts time so cycle pacing is testable without real time
// elapsing. Sleep returns early when the context is canceled.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration)
}

// Sampler produces one cycle's readings, updating the retained zone B
// fields in place.
type Sampler interface {
	Sample(zoneB *sensor.ZoneB) sensor.ZoneA
}

// Actuators applies one cycle's commands and reports the blocking
// pulse time consumed doing so.
type Actuators interface {
	Apply(ctx context.Context, cmd actuator.Commands) time.Duration
}

// StatusPanels refreshes the attached displays from one cycle's
// results.
type StatusPanels interface {
	Show(zoneA sensor.ZoneA, zoneB sensor.ZoneB, alerts alert.State, fanOn, linkUp bool)
}

// Config fixes the engine's pacing and mode for its lifetime.
type Config struct {
	// Period is the target wall-clock spacing between cycle starts
	Period time.Duration
	// SleepFloor is the minimum sleep applied when a cycle overruns
	SleepFloor time.Duration
	// Thresholds feed alert evaluation unchanged every cycle
	Thresholds alert.Thresholds
	// MonitorOnly samples and reports without driving the actuators
	MonitorOnly bool
}
