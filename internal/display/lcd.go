package display

import (
	"fmt"
	"io"
	"time"

	"codeberg.org/mutker/zonectl/internal/errors"
)

// PCF8574 backpack pin assignment on the HD44780 control bus.
const (
	busRS        = 0x01
	busEnable    = 0x04
	busBacklight = 0x08
)

// HD44780 instruction set as used here, 4-bit bus.
const (
	lcdClear       = 0x01
	lcdEntryMode   = 0x06 // cursor advances right, no display shift
	lcdDisplayOn   = 0x0C // display on, cursor and blink off
	lcdFunctionSet = 0x28 // 4-bit bus, two-line addressing, 5x8 font
	lcdSetDDRAM    = 0x80
)

// DDRAM start address per visible row.
var lcdRowOffsets = [...]byte{0x00, 0x40, 0x14, 0x54}

// LCD drives an HD44780 character panel behind a PCF8574 I/O expander.
// The expander is written one byte per bus state, so the transport only
// needs to be an io.Writer on the panel's I2C address.
type LCD struct {
	bus  io.Writer
	cols int
	rows int
}

func NewLCD(bus io.Writer, cols, rows int) (*LCD, error) {
	errFactory := errors.New()
	if cols <= 0 || rows <= 0 || rows > len(lcdRowOffsets) {
		return nil, errFactory.WithData(ErrInvalidGeometry, fmt.Sprintf("%dx%d", cols, rows))
	}

	d := &LCD{bus: bus, cols: cols, rows: rows}
	if err := d.init(); err != nil {
		return nil, err
	}

	return d, nil
}

// init walks the controller from its power-on 8-bit state onto the
// 4-bit bus, then configures and clears the panel.
func (d *LCD) init() error {
	time.Sleep(50 * time.Millisecond)
	for _, cmd := range []byte{0x33, 0x32, lcdFunctionSet, lcdDisplayOn, lcdClear, lcdEntryMode} {
		if err := d.command(cmd); err != nil {
			return err
		}
	}

	return nil
}

// WriteRow paints text onto one row, clipped at the panel width.
func (d *LCD) WriteRow(row int, text string) error {
	errFactory := errors.New()
	if row < 0 || row >= d.rows {
		return errFactory.WithData(ErrInvalidRow, row)
	}

	if err := d.command(lcdSetDDRAM | lcdRowOffsets[row]); err != nil {
		return err
	}

	if len(text) > d.cols {
		text = text[:d.cols]
	}
	for i := 0; i < len(text); i++ {
		if err := d.send(text[i], busRS); err != nil {
			return err
		}
	}

	return nil
}

func (d *LCD) Clear() error {
	return d.command(lcdClear)
}

func (d *LCD) command(cmd byte) error {
	if err := d.send(cmd, 0); err != nil {
		return err
	}
	// Clear and the power-on handshake execute in milliseconds, far
	// longer than ordinary instructions
	time.Sleep(3 * time.Millisecond)

	return nil
}

func (d *LCD) send(value, mode byte) error {
	if err := d.writeNibble(value&0xF0 | mode); err != nil {
		return err
	}

	return d.writeNibble(value<<4&0xF0 | mode)
}

// writeNibble latches four data bits: the controller samples the bus
// on the falling edge of the enable line. Data transfer time on the
// I2C bus already exceeds the controller's execution time, so data
// writes need no settle delay of their own.
func (d *LCD) writeNibble(bits byte) error {
	errFactory := errors.New()
	bits |= busBacklight
	for _, b := range []byte{bits | busEnable, bits} {
		if _, err := d.bus.Write([]byte{b}); err != nil {
			return errFactory.Wrap(ErrBusWrite, err)
		}
	}

	return nil
}
