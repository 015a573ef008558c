package display

import "codeberg.org/mutker/zonectl/internal/errors"

const (
	// Driver errors
	ErrInvalidGeometry = errors.ErrorCode("display_invalid_geometry")
	ErrInvalidRow      = errors.ErrorCode("display_invalid_row")
	ErrBusWrite        = errors.ErrorCode("display_bus_write")
)
