/*
Copyright 2024 Tim St. Pierre
Controls a DOGS164 4x16 character LCD (SSD18030 controller) over I2C
*/
package dogs164

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/mmr"
)

const (
	Rows = 4
	Cols = 16

	// Data bytes that fit in one transfer next to the control byte
	MaxWrite = 31
)

// ErrInvalidInput is returned, wrapped, when a position, length or mode is
// out of range. Nothing is sent to the display for the failing call.
var ErrInvalidInput = errors.New("dogs164: invalid input data")

// BusError wraps a failed I²C transfer. Transfers are never retried.
type BusError struct {
	Op  string
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("dogs164: %s: %v", e.Op, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// Delayer blocks the caller for ms milliseconds.
type Delayer interface {
	DelayMs(ms uint32)
}

// DelayerFunc adapts a function to the Delayer interface.
type DelayerFunc func(ms uint32)

func (f DelayerFunc) DelayMs(ms uint32) {
	f(ms)
}

var sleeper = DelayerFunc(func(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
})

// DDRAM offset of the first column of each row.
var rowBase = [Rows]byte{0x00, 0x20, 0x40, 0x60}

// Dev is a DOGS164 display session. It is not safe for concurrent use.
type Dev struct {
	// The control byte is written as the register address.
	c       mmr.Dev8
	delay   Delayer
	log     log.FieldLogger
	startup uint32
	step    uint32
	ddram   byte
	cfg     Config
	table   tableState
}

func (d *Dev) String() string {
	return fmt.Sprintf("dogs164{%s}", d.c.Conn)
}

// NewI2C returns a new device that communicates over I²C. The display is
// not touched until Init is called.
//
// delay paces the initialization sequence; nil uses time.Sleep. Use default
// options if opts is nil.
func NewI2C(b i2c.Bus, delay Delayer, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	addr, err := opts.i2cAddr()
	if err != nil {
		return nil, fmt.Errorf("dogs164 %x: %v", opts.I2CAddr, err)
	}
	startup, step, err := opts.delays()
	if err != nil {
		return nil, fmt.Errorf("dogs164 %x: %v", addr, err)
	}
	if opts.Speed != 0 {
		if err := b.SetSpeed(opts.Speed); err != nil {
			return nil, &BusError{Op: "set speed", Err: err}
		}
	}
	if delay == nil {
		delay = sleeper
	}
	cfg := DefaultConfig()
	return &Dev{
		c:       mmr.Dev8{Conn: &i2c.Dev{Bus: b, Addr: addr}, Order: binary.LittleEndian},
		delay:   delay,
		log:     opts.logger().WithField("addr", fmt.Sprintf("%#x", addr)),
		startup: startup,
		step:    step,
		ddram:   cfg.ViewMode.ddramBase(),
		cfg:     cfg,
	}, nil
}

// Config returns a copy of the settings the session currently holds.
func (d *Dev) Config() Config {
	return d.cfg
}

// Table returns the instruction table the controller is assumed to be in,
// and false if it is not known yet.
func (d *Dev) Table() (Table, bool) {
	return tableOf(d.table.re, d.table.is), d.table.known
}

// Init brings the controller from power on to a usable state with cfg and
// keeps a copy of cfg for later commands.
//
// The first failing step aborts the sequence, leaving the controller in
// whatever state the previous steps produced.
func (d *Dev) Init(cfg Config) error {
	if cfg.DoubleHeight != DoubleHeightNone {
		cfg.Function.DoubleHeight = true
	}
	d.cfg = cfg
	d.table = tableState{}
	d.log.WithFields(log.Fields{
		"view":          cfg.ViewMode,
		"double_height": cfg.DoubleHeight,
	}).Info("Initializing display")

	power := cfg.Power.Cmds()
	steps := []func() error{
		func() error { return d.SetEntryMode(cfg.EntryMode) },
		func() error { return d.SetViewMode(cfg.ViewMode) },
		d.SetDoubleHeight,
		d.ExtendedFunctionSet,
		d.setBias,
		func() error { return d.switchTable(TableRE0IS1) },
		func() error { return d.command(cfg.Follower.Cmd()) },
		func() error { return d.command(power[0]) },
		func() error { return d.command(power[1]) },
		func() error { return d.SetDisplay(cfg.Display) },
		func() error { return d.Locate(1, 1) },
		d.Clear,
	}
	for i, step := range steps {
		if i == 0 {
			d.delay.DelayMs(d.startup)
		} else {
			d.delay.DelayMs(d.step)
		}
		if err := step(); err != nil {
			d.log.WithError(err).Errorf("Initialization failed at step %d", i+1)
			return err
		}
	}
	return nil
}

// setBias sets BS1 in the RE=1 table and BS0 together with the oscillator
// frequency in the IS=1 table.
func (d *Dev) setBias() error {
	if err := d.switchTable(TableRE1IS0); err != nil {
		return err
	}
	if err := d.command(d.cfg.bias().Cmd()); err != nil {
		return err
	}
	if err := d.switchTable(TableRE0IS1); err != nil {
		return err
	}
	return d.command(d.cfg.Oscillator.Cmd())
}

// Clear blanks the display. The controller also moves the address counter
// back to DDRAM address 0.
func (d *Dev) Clear() error {
	return d.command(CMD_Clear_Display)
}

// Home moves the cursor to DDRAM address 0. With RE=1 the same opcode is
// the power down command, so RE=0 is selected first.
func (d *Dev) Home() error {
	if err := d.enter(TableRE0IS0); err != nil {
		return err
	}
	return d.command(CMD_Return_Home)
}

// Locate moves the cursor to row and col, both starting at 1.
func (d *Dev) Locate(row, col int) error {
	if row < 1 || row > Rows || col < 1 || col > Cols {
		return fmt.Errorf("%w: position (%d,%d)", ErrInvalidInput, row, col)
	}
	return d.command(d.ddram + rowBase[row-1] + byte(col-1))
}

// Write sends p as a single data transfer at the cursor position. Bytes map
// one to one to characters of the selected ROM.
func (d *Dev) Write(p []byte) (int, error) {
	if len(p) > MaxWrite {
		return 0, fmt.Errorf("%w: %d bytes, at most %d per write", ErrInvalidInput, len(p), MaxWrite)
	}
	if len(p) == 0 {
		return 0, nil
	}
	if err := d.data(p...); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (d *Dev) WriteString(text string) (int, error) {
	return d.Write([]byte(text))
}

// SetDisplay sends the display on, cursor and blink flags and remembers
// them for SetCursorOff and SetBlinkingOff.
func (d *Dev) SetDisplay(flags DisplayFlags) error {
	if err := d.enter(TableRE0IS0); err != nil {
		return err
	}
	if err := d.command(flags.Cmd()); err != nil {
		return err
	}
	d.cfg.Display = flags
	return nil
}

func (d *Dev) SetCursorOff() error {
	return d.SetDisplay(d.cfg.Display.Without(CursorOn))
}

func (d *Dev) SetBlinkingOff() error {
	return d.SetDisplay(d.cfg.Display.Without(BlinkOn))
}

func (d *Dev) SetEntryMode(mode EntryMode) error {
	if err := d.enter(TableRE0IS0); err != nil {
		return err
	}
	if err := d.command(mode.Cmd()); err != nil {
		return err
	}
	d.cfg.EntryMode = mode
	return nil
}

// SetViewMode flips the display between top and bottom view. Locate uses
// the DDRAM base of the new view from now on.
func (d *Dev) SetViewMode(mode ViewMode) error {
	if mode != ViewTop && mode != ViewBottom {
		return fmt.Errorf("%w: view mode %#x", ErrInvalidInput, byte(mode))
	}
	d.ddram = mode.ddramBase()
	d.cfg.ViewMode = mode
	if err := d.enter(TableRE1IS0); err != nil {
		return err
	}
	return d.command(mode.Cmd())
}

// ExtendedFunctionSet sends the font width, inversion and four line bits
// held by the session.
func (d *Dev) ExtendedFunctionSet() error {
	if err := d.enter(TableRE1IS0); err != nil {
		return err
	}
	return d.command(d.cfg.extendedFunctionSet().Cmd())
}

// SetDoubleHeight applies the double height mode held by the session. The
// mode lives in the RE=1 table, which is left again right away.
func (d *Dev) SetDoubleHeight() error {
	if d.cfg.DoubleHeight == DoubleHeightNone {
		return nil
	}
	if err := d.switchTable(TableRE1IS0); err != nil {
		return err
	}
	cmd := DoubleHeightBias{Mode: d.cfg.DoubleHeight, DotShift: true, BS1: true}.Cmd()
	if err := d.command(cmd); err != nil {
		return err
	}
	return d.switchTable(TableRE0IS0)
}

// ClearLine blanks line and leaves the cursor at its first column.
func (d *Dev) ClearLine(line int) error {
	if line < 1 || line > Rows {
		return fmt.Errorf("%w: line %d", ErrInvalidInput, line)
	}
	return d.blank(line, 1, Cols)
}

// ClearChars blanks n characters from row, col on and leaves the cursor at
// row, col. A run past the last column is sent as is; where it lands is up
// to the controller's address counter.
func (d *Dev) ClearChars(row, col, n int) error {
	if row < 1 || row > Rows || col < 1 || col > Cols || n < 1 || n > Cols {
		return fmt.Errorf("%w: %d chars at (%d,%d)", ErrInvalidInput, n, row, col)
	}
	return d.blank(row, col, n)
}

func (d *Dev) blank(row, col, n int) error {
	if err := d.Locate(row, col); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := d.data(' '); err != nil {
			return err
		}
	}
	return d.Locate(row, col)
}

// Shift moves the cursor or the display content by one column.
func (d *Dev) Shift(s Shift) error {
	if err := d.enter(TableRE0IS0); err != nil {
		return err
	}
	return d.command(s.Cmd())
}

// SetContrast changes the contrast, values above MaxContrast are clamped.
func (d *Dev) SetContrast(contrast uint8) error {
	d.cfg.Power.Contrast = clampContrast(contrast)
	if err := d.enter(TableRE0IS1); err != nil {
		return err
	}
	for _, cmd := range d.cfg.Power.Cmds() {
		if err := d.command(cmd); err != nil {
			return err
		}
	}
	return nil
}

// SelectROM switches the character generator ROM.
func (d *Dev) SelectROM(rom ROM) error {
	if rom != ROMA && rom != ROMB && rom != ROMC {
		return fmt.Errorf("%w: rom %#x", ErrInvalidInput, byte(rom))
	}
	if err := d.enter(TableRE1IS0); err != nil {
		return err
	}
	if err := d.command(CMD_ROM_Select); err != nil {
		return err
	}
	if err := d.data(byte(rom)); err != nil {
		return err
	}
	d.cfg.ROM = rom
	return d.enter(TableRE0IS0)
}

// enter selects table t unless it is known to be selected already.
func (d *Dev) enter(t Table) error {
	if d.table.at(t) {
		return nil
	}
	return d.switchTable(t)
}

// switchTable always sends the function set commands for t.
func (d *Dev) switchTable(t Table) error {
	for _, cmd := range d.table.path(t, d.cfg.Function) {
		if err := d.command(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dev) command(cmd byte) error {
	if err := d.write(MODE_Command, cmd); err != nil {
		if cmd&0xE0 == 0x20 {
			// The controller may have latched the new RE/IS bits anyway.
			d.table = tableState{}
		}
		return &BusError{Op: fmt.Sprintf("command 0x%02x", cmd), Err: err}
	}
	d.table.apply(cmd)
	return nil
}

func (d *Dev) data(p ...byte) error {
	if err := d.write(MODE_Data, p...); err != nil {
		return &BusError{Op: "data", Err: err}
	}
	return nil
}

func (d *Dev) write(mode byte, p ...byte) error {
	d.log.WithField("mode", fmt.Sprintf("0x%02x", mode)).Debugf("Writing % x", p)
	if len(p) == 1 {
		return d.c.WriteUint8(mode, p[0])
	}
	return d.c.Conn.Tx(append([]byte{mode}, p...), nil)
}
