package telemetry

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net/http"

	"codeberg.org/mutker/zonectl/internal/errors"
	"codeberg.org/mutker/zonectl/internal/logger"
)

type httpTransport struct {
	client   *http.Client
	endpoint string
	token    string
}

func newHTTPTransport(cfg Config) *httpTransport {
	var rt http.RoundTripper = http.DefaultTransport
	if cfg.InsecureSkipVerify {
		rt = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // collector may use a self-signed certificate
		}
	}

	return &httpTransport{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: rt,
		},
		endpoint: cfg.Endpoint,
		token:    cfg.AuthToken,
	}
}

// Deliver performs the single POST for this cycle. Any failure is
// logged and classified; nothing here is ever fatal and no retry
// happens within the cycle.
func (t *httpTransport) Deliver(ctx context.Context, body []byte) Outcome {
	errFactory := errors.New()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		logger.ErrorWithCode(errFactory.Wrap(ErrDeliveryFailed, err)).Msg("Failed to build collector request")
		return Failed
	}
	req.Header.Set("Content-Type", "application/json")
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		logger.Warn().Err(err).Str("endpoint", t.endpoint).Msg("Snapshot delivery failed")
		return Failed
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		logger.Warn().Int("status", resp.StatusCode).Str("endpoint", t.endpoint).Msg("Collector rejected snapshot")
		return Rejected
	}

	logger.Debug().Int("status", resp.StatusCode).Msg("Snapshot delivered")

	return Delivered
}

func (t *httpTransport) Close() error {
	t.client.CloseIdleConnections()
	return nil
}
