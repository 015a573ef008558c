package telemetry

import "codeberg.org/mutker/zonectl/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig   = errors.ErrorCode("telemetry_invalid_config")
	ErrInvalidEndpoint = errors.ErrorCode("telemetry_invalid_endpoint")

	// Encoding Errors
	ErrInvalidSnapshot = errors.ErrorCode("telemetry_invalid_snapshot")
	ErrEncodeFailed    = errors.ErrorCode("telemetry_encode_failed")

	// Delivery Errors
	ErrDeliveryFailed = errors.ErrorCode("telemetry_delivery_failed")
)
