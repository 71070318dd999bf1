/*
Copyright 2024 Tim St. Pierre
Emulated SSD18030 controller for testing without hardware
*/

// Package dogs164test provides an emulated DOGS164 display that implements
// i2c.Bus.
//
// It decodes the command and data stream the way the SSD18030 does,
// including the RE/IS instruction table selection, and keeps the resulting
// DDRAM content and register values for inspection.
package dogs164test

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	ddramSize = 0x80
	rows      = 4
	cols      = 16
)

// ErrFault is returned by Tx once FailAfter transfers went through.
var ErrFault = errors.New("dogs164test: injected bus fault")

// Transfer is one recorded I²C write.
type Transfer struct {
	Addr uint16
	W    []byte
}

// Data reports whether the transfer carried data bytes rather than commands.
func (t Transfer) Data() bool {
	return len(t.W) > 0 && t.W[0] == 0x40
}

// Controller is an emulated SSD18030 at address Addr.
type Controller struct {
	Addr uint16
	// When non zero, transfer number FailAfter+1 and later fail with ErrFault.
	FailAfter int

	mu        sync.Mutex
	transfers []Transfer
	speed     physic.Frequency

	re, is     bool
	lines      bool
	dh         bool
	blink      bool
	reverse    bool
	ddram      [ddramSize]byte
	ac         byte
	increment  bool
	shift      bool
	flags      byte
	view       byte
	ext        byte
	ud         byte
	dotShift   bool
	bs1, bs0   bool
	osc        byte
	follower   byte
	booster    bool
	icon       bool
	contrast   byte
	rom        byte
	romPending bool
	scroll     int
}

// New returns a controller in its reset state.
func New(addr uint16) *Controller {
	c := &Controller{Addr: addr}
	c.reset()
	return c
}

func (c *Controller) reset() {
	for i := range c.ddram {
		c.ddram[i] = ' '
	}
	c.ac = 0
	c.increment = true
	c.view = 0x06
	c.ud = 3
}

func (c *Controller) String() string {
	return fmt.Sprintf("dogs164test(%#x)", c.Addr)
}

func (c *Controller) SetSpeed(f physic.Frequency) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.speed = f
	return nil
}

// Speed returns the last frequency set with SetSpeed.
func (c *Controller) Speed() physic.Frequency {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

// Tx decodes w. Reads are not supported since the driver never reads.
func (c *Controller) Tx(addr uint16, w, r []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FailAfter > 0 && len(c.transfers) >= c.FailAfter {
		return ErrFault
	}
	if addr != c.Addr {
		return fmt.Errorf("dogs164test: no device at %#x", addr)
	}
	if len(r) != 0 {
		return errors.New("dogs164test: read not supported")
	}
	if len(w) < 2 {
		return fmt.Errorf("dogs164test: short transfer % x", w)
	}
	c.transfers = append(c.transfers, Transfer{Addr: addr, W: append([]byte(nil), w...)})
	switch w[0] {
	case 0x00:
		for _, cmd := range w[1:] {
			c.command(cmd)
		}
	case 0x40:
		for _, b := range w[1:] {
			c.data(b)
		}
	default:
		return fmt.Errorf("dogs164test: unsupported control byte 0x%02x", w[0])
	}
	return nil
}

func (c *Controller) command(cmd byte) {
	switch {
	case cmd >= 0x80:
		c.ac = cmd & 0x7F
	case cmd >= 0x40:
		c.command4x(cmd)
	case cmd >= 0x20:
		c.lines = cmd&0x08 != 0
		if cmd&0x02 != 0 {
			c.re = true
			c.blink = cmd&0x04 != 0
			c.reverse = cmd&0x01 != 0
		} else {
			c.re = false
			c.dh = cmd&0x04 != 0
			c.is = cmd&0x01 != 0
		}
	case cmd >= 0x10:
		c.command1x(cmd)
	case cmd >= 0x08:
		if c.re {
			c.ext = cmd & 0x07
		} else {
			c.flags = cmd & 0x07
		}
	case cmd >= 0x04:
		if c.re {
			c.view = cmd
		} else {
			c.increment = cmd&0x02 != 0
			c.shift = cmd&0x01 != 0
		}
	case cmd >= 0x02:
		if !c.re {
			c.ac = 0
			c.scroll = 0
		}
	case cmd == 0x01:
		for i := range c.ddram {
			c.ddram[i] = ' '
		}
		c.ac = 0
		c.increment = true
	}
}

func (c *Controller) command1x(cmd byte) {
	switch {
	case !c.re && !c.is:
		right := cmd&0x04 != 0
		if cmd&0x08 != 0 {
			if right {
				c.scroll++
			} else {
				c.scroll--
			}
		} else {
			c.step(right)
		}
	case !c.re && c.is:
		c.bs0 = cmd&0x08 != 0
		c.osc = cmd & 0x07
	case c.re && !c.is:
		c.ud = (cmd >> 2) & 0x03
		c.bs1 = cmd&0x02 != 0
		c.dotShift = cmd&0x01 != 0
	}
}

func (c *Controller) command4x(cmd byte) {
	switch {
	case !c.re && c.is && cmd&0xF0 == 0x50:
		c.icon = cmd&0x08 != 0
		c.booster = cmd&0x04 != 0
		c.contrast = c.contrast&0x0F | (cmd&0x03)<<4
	case !c.re && c.is && cmd&0xF0 == 0x60:
		c.follower = cmd & 0x0F
	case !c.re && c.is && cmd&0xF0 == 0x70:
		c.contrast = c.contrast&0x30 | cmd&0x0F
	case c.re && cmd == 0x72:
		c.romPending = true
	}
}

func (c *Controller) data(b byte) {
	if c.romPending {
		c.rom = b
		c.romPending = false
		return
	}
	c.ddram[c.ac] = b
	c.step(c.increment)
}

func (c *Controller) step(forward bool) {
	if forward {
		c.ac = (c.ac + 1) % ddramSize
	} else {
		c.ac = (c.ac + ddramSize - 1) % ddramSize
	}
}

func (c *Controller) base() byte {
	if c.view == 0x05 {
		return 0x04
	}
	return 0
}

// Row returns the visible text of row n, starting at 1.
func (c *Controller) Row(n int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 1 || n > rows {
		return ""
	}
	start := int(c.base()) + (n-1)*0x20
	return string(c.ddram[start : start+cols])
}

// Lines returns all visible rows.
func (c *Controller) Lines() []string {
	out := make([]string, rows)
	for i := range out {
		out[i] = c.Row(i + 1)
	}
	return out
}

func (c *Controller) Dump() string {
	return strings.Join(c.Lines(), "\n")
}

// Cursor returns the row and column the address counter points at, and
// false when it is outside the visible area.
func (c *Controller) Cursor() (row, col int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	off := int(c.ac) - int(c.base())
	row, col = off/0x20+1, off%0x20+1
	if off < 0 || col > cols {
		return 0, 0, false
	}
	return row, col, true
}

// Table returns the RE and IS bits.
func (c *Controller) Table() (re, is bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.re, c.is
}

// DisplayFlags returns the D, C and B bits of the display control.
func (c *Controller) DisplayFlags() byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flags
}

// EntryMode returns the I/D and S bits.
func (c *Controller) EntryMode() (increment, shift bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.increment, c.shift
}

// TopView reports whether the top view is selected.
func (c *Controller) TopView() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view == 0x05
}

// ExtendedFunction returns the FW, B/W and NW bits.
func (c *Controller) ExtendedFunction() byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ext
}

// DoubleHeight returns the UD2/UD1 bits and whether DH is set.
func (c *Controller) DoubleHeight() (ud byte, on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ud, c.dh
}

// Bias returns the BS1 and BS0 bits.
func (c *Controller) Bias() (bs1, bs0 bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bs1, c.bs0
}

// Oscillator returns F2..F0.
func (c *Controller) Oscillator() byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.osc
}

// Follower returns the follower control bits, Don and Rab2..Rab0.
func (c *Controller) Follower() byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.follower
}

// Power returns the booster and icon switches.
func (c *Controller) Power() (booster, icon bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.booster, c.icon
}

func (c *Controller) Contrast() byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.contrast
}

func (c *Controller) ROM() byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rom
}

// Scroll returns the net number of display shifts, right being positive.
func (c *Controller) Scroll() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scroll
}

// Transfers returns a copy of the recorded writes.
func (c *Controller) Transfers() []Transfer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Transfer(nil), c.transfers...)
}

var _ i2c.Bus = &Controller{}
