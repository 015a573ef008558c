package actuator

import (
	"context"
	"time"

	"codeberg.org/mutker/zonectl/internal/logger"
)

// Driver applies commands to the five output lines. Line faults are
// logged and skipped; driving the outputs never fails a cycle.
type Driver struct {
	green  Line
	yellow Line
	red    Line
	buzzer Line
	fan    Line
	sleep  Sleeper
}

func NewDriver(green, yellow, red, buzzer, fan Line, sleep Sleeper) *Driver {
	return &Driver{
		green:  green,
		yellow: yellow,
		red:    red,
		buzzer: buzzer,
		fan:    fan,
		sleep:  sleep,
	}
}

// Apply drives the indicator lines and, when commanded, holds the
// buzzer high for the pulse duration. The buzzer is released even when
// cancellation cuts the hold short. The returned duration is the
// commanded hold, reported back so the cycle accounting neither misses
// nor double-counts it.
func (d *Driver) Apply(ctx context.Context, cmd Commands) time.Duration {
	d.set(d.yellow, cmd.Yellow, "yellow")
	d.set(d.red, cmd.Red, "red")
	d.set(d.green, cmd.Green, "green")

	var pulse time.Duration
	if cmd.BuzzerPulse > 0 {
		d.set(d.buzzer, true, "buzzer")
		d.sleep.Sleep(ctx, cmd.BuzzerPulse)
		d.set(d.buzzer, false, "buzzer")
		pulse = cmd.BuzzerPulse
	} else {
		d.set(d.buzzer, false, "buzzer")
	}

	d.set(d.fan, cmd.Fan, "fan")

	return pulse
}

func (d *Driver) set(line Line, high bool, name string) {
	if err := line.Set(high); err != nil {
		logger.Warn().Err(err).Str("line", name).Msg("Failed to drive output line")
	}
}
