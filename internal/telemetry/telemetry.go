package telemetry

import (
	"context"

	"codeberg.org/mutker/zonectl/internal/errors"
	"codeberg.org/mutker/zonectl/internal/logger"
)

type service struct {
	transport Transport
	link      LinkChecker
	cfg       Config
}

// No-op implementation
type noopPublisher struct{}

func NewService(cfg Config, link LinkChecker) (Publisher, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	// Without a collector endpoint there is nothing to deliver to
	if !cfg.Enabled || cfg.Endpoint == "" {
		logger.Debug().Msg("Telemetry delivery disabled, using no-op publisher")
		return &noopPublisher{}, nil
	}

	logger.Debug().
		Str("endpoint", cfg.Endpoint).
		Dur("timeout", cfg.Timeout).
		Msg("Telemetry service initialized")

	return &service{
		transport: newHTTPTransport(cfg),
		link:      link,
		cfg:       cfg,
	}, nil
}

// Publish encodes the snapshot and attempts one delivery. A down link
// skips the attempt entirely; the cycle carries on in every case.
func (s *service) Publish(ctx context.Context, snapshot *Snapshot) Outcome {
	body, err := Encode(snapshot)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to encode snapshot")
		return Failed
	}

	logger.Debug().RawJSON("payload", body).Msg("Snapshot encoded")

	if !s.link.Up() {
		logger.Debug().Msg("Network link down, skipping delivery")
		return Skipped
	}

	return s.transport.Deliver(ctx, body)
}

func (s *service) Close() error {
	return s.transport.Close()
}

// No-op implementation
func (*noopPublisher) Publish(_ context.Context, _ *Snapshot) Outcome {
	return Skipped
}

func (*noopPublisher) Close() error {
	return nil
}
