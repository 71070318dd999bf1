/*
Copyright 2024 Tim St. Pierre
periph.io text display interface for the DOGS164
*/
package dogs164

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

// AutoScroll shifts the display instead of the cursor as characters are
// written.
func (d *Dev) AutoScroll(enabled bool) error {
	mode := d.cfg.EntryMode
	mode.Shift = enabled
	return d.SetEntryMode(mode)
}

func (d *Dev) Cols() int {
	return Cols
}

func (d *Dev) Rows() int {
	return Rows
}

func (d *Dev) MinCol() int {
	return 1
}

func (d *Dev) MinRow() int {
	return 1
}

// Cursor sets the cursor mode. CursorUnderline shows the cursor line,
// CursorBlink and CursorBlock the blinking block. Modes can be combined.
func (d *Dev) Cursor(modes ...display.CursorMode) error {
	flags := d.cfg.Display.Without(CursorOn | BlinkOn)
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
			flags = flags.Without(CursorOn | BlinkOn)
		case display.CursorUnderline:
			flags = flags.With(CursorOn)
		case display.CursorBlink, display.CursorBlock:
			flags = flags.With(BlinkOn)
		default:
			return fmt.Errorf("dogs164: cursor mode %d: %w", mode, display.ErrInvalidCommand)
		}
	}
	return d.SetDisplay(flags)
}

// Move shifts the cursor one column. Up and Down are not supported.
func (d *Dev) Move(dir display.CursorDirection) error {
	switch dir {
	case display.Forward:
		return d.Shift(Shift{Direction: LeftToRight, Target: ShiftCursor})
	case display.Backward:
		return d.Shift(Shift{Direction: RightToLeft, Target: ShiftCursor})
	default:
		return fmt.Errorf("dogs164: %w", display.ErrNotImplemented)
	}
}

func (d *Dev) MoveTo(row, col int) error {
	return d.Locate(row, col)
}

// Display turns the display on or off, keeping the cursor settings.
func (d *Dev) Display(on bool) error {
	if on {
		return d.SetDisplay(d.cfg.Display.With(DisplayOn))
	}
	return d.SetDisplay(d.cfg.Display.Without(DisplayOn))
}

// Contrast maps the 0-255 range onto the controller's 0-63 range.
func (d *Dev) Contrast(contrast display.Contrast) error {
	return d.SetContrast(uint8(contrast) >> 2)
}

// Halt blanks the screen and turns the display off.
func (d *Dev) Halt() error {
	if err := d.Clear(); err != nil {
		return err
	}
	return d.Display(false)
}

var _ display.TextDisplay = &Dev{}
var _ display.DisplayContrast = &Dev{}
var _ conn.Resource = &Dev{}
