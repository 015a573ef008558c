package board

import "codeberg.org/mutker/zonectl/internal/errors"

const (
	// Initialization errors
	ErrHostInit       = errors.ErrorCode("board_host_init")
	ErrBusOpen        = errors.ErrorCode("board_bus_open")
	ErrADCInit        = errors.ErrorCode("board_adc_init")
	ErrProbeInit      = errors.ErrorCode("board_probe_init")
	ErrPinMissing     = errors.ErrorCode("board_pin_missing")
	ErrInvalidChannel = errors.ErrorCode("board_invalid_channel")

	// Runtime errors
	ErrAnalogRead = errors.ErrorCode("board_analog_read")
)
