package telemetry

import (
	"context"

	"codeberg.org/mutker/zonectl/internal/alert"
	"codeberg.org/mutker/zonectl/internal/sensor"
)

// Publisher delivers one cycle's snapshot to the remote collector.
// Delivery is best effort: every path yields an Outcome and the cycle
// proceeds regardless.
type Publisher interface {
	Publish(ctx context.Context, snapshot *Snapshot) Outcome
	Close() error
}

// Transport performs the single delivery attempt for an encoded body.
type Transport interface {
	Deliver(ctx context.Context, body []byte) Outcome
	Close() error
}

// LinkChecker reports whether the network link is usable. A down link
// skips delivery for the cycle; the next cycle is the retry.
type LinkChecker interface {
	Up() bool
}

// Snapshot is one cycle's immutable record. All fields originate from
// the same cycle; the snapshot is consumed once and discarded.
type Snapshot struct {
	ZoneA  sensor.ZoneA
	ZoneB  sensor.ZoneB
	Alerts alert.State
	FanOn  bool
}

// Outcome classifies a delivery attempt
type Outcome uint8

const (
	Delivered Outcome = iota
	Skipped
	Rejected
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Delivered:
		return "delivered"
	case Skipped:
		return "skipped"
	case Rejected:
		return "rejected"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
