package monitor

import (
	"context"
	"time"

	"codeberg.org/mutker/zonectl/internal/actuator"
	"codeberg.org/mutker/zonectl/internal/alert"
	"codeberg.org/mutker/zonectl/internal/errors"
	"codeberg.org/mutker/zonectl/internal/logger"
	"codeberg.org/mutker/zonectl/internal/sensor"
	"codeberg.org/mutker/zonectl/internal/telemetry"
)

// Deps are the engine's collaborators. All of them are required.
type Deps struct {
	Sampler   Sampler
	Actuators Actuators
	Panels    StatusPanels
	Publisher telemetry.Publisher
	Link      telemetry.LinkChecker
	Clock     Clock
}

// Engine runs the acquire, evaluate, act, report cycle at a fixed
// target period, compensating for the time each cycle consumes. It is
// single-threaded: all mutable state, including the retained zone B
// fields, is owned by the loop.
type Engine struct {
	cfg   Config
	deps  Deps
	zoneB sensor.ZoneB
}

func New(cfg Config, deps Deps) (*Engine, error) {
	errFactory := errors.New()

	if cfg.Period <= 0 {
		return nil, errFactory.WithData(errors.ErrInvalidPeriod, cfg.Period)
	}
	if cfg.SleepFloor <= 0 {
		return nil, errFactory.WithMessage(errors.ErrInvalidArgument, "sleep floor must be positive")
	}
	if deps.Sampler == nil || deps.Actuators == nil || deps.Panels == nil ||
		deps.Publisher == nil || deps.Link == nil || deps.Clock == nil {
		return nil, errFactory.WithMessage(errors.ErrInvalidArgument, "all engine dependencies are required")
	}

	return &Engine{
		cfg:   cfg,
		deps:  deps,
		zoneB: sensor.NewZoneB(),
	}, nil
}

// Run cycles until the context is canceled. Nothing inside a cycle is
// fatal: faults surface as sentinels, log entries or skipped
// deliveries, and the next cycle re-samples everything.
func (e *Engine) Run(ctx context.Context) error {
	if e.cfg.MonitorOnly {
		logger.Info().Msg("Monitor mode activated, actuators will not be driven")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		work, pulse := e.cycle(ctx)

		sleep, overrun := NextSleep(e.cfg.Period, work, pulse, e.cfg.SleepFloor)
		if overrun {
			logger.Warn().
				Dur("work", work).
				Dur("pulse", pulse).
				Dur("period", e.cfg.Period).
				Msg("Cycle exceeded target period")
		}
		e.deps.Clock.Sleep(ctx, sleep)
	}
}

// cycle runs one pass and returns the time it consumed, with the
// blocking buzzer pulse split out of the measured work.
func (e *Engine) cycle(ctx context.Context) (work, pulse time.Duration) {
	start := e.deps.Clock.Now()

	zoneA := e.deps.Sampler.Sample(&e.zoneB)
	alerts := alert.Evaluate(e.cfg.Thresholds, zoneA, e.zoneB)
	cmd := actuator.Plan(alerts)

	if !e.cfg.MonitorOnly {
		pulse = e.deps.Actuators.Apply(ctx, cmd)
	}

	linkUp := e.deps.Link.Up()
	e.deps.Panels.Show(zoneA, e.zoneB, alerts, cmd.Fan, linkUp)

	snapshot := &telemetry.Snapshot{
		ZoneA:  zoneA,
		ZoneB:  e.zoneB,
		Alerts: alerts,
		FanOn:  cmd.Fan,
	}
	outcome := e.deps.Publisher.Publish(ctx, snapshot)

	logger.Debug().
		Bool("zone_a_alert", alerts.ZoneA).
		Bool("zone_b_alert", alerts.ZoneB).
		Bool("fan_on", cmd.Fan).
		Bool("link_up", linkUp).
		Str("delivery", outcome.String()).
		Msg("Cycle complete")

	elapsed := e.deps.Clock.Now().Sub(start)

	return elapsed - pulse, pulse
}
