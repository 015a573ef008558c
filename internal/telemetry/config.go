package telemetry

import (
	"net/url"
	"time"

	"codeberg.org/mutker/zonectl/internal/errors"
)

type Config struct {
	Enabled            bool
	Endpoint           string
	Timeout            time.Duration
	AuthToken          string
	InsecureSkipVerify bool
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if c.Timeout <= 0 {
		return errFactory.WithMessage(ErrInvalidConfig, "delivery timeout must be positive")
	}
	if c.Endpoint != "" {
		u, err := url.ParseRequestURI(c.Endpoint)
		if err != nil {
			return errFactory.Wrap(ErrInvalidEndpoint, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errFactory.WithData(ErrInvalidEndpoint, c.Endpoint)
		}
	}

	return nil
}
