/*
Copyright 2024 Tim St. Pierre
*/
package dogs164

import (
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestEntryMode(t *testing.T) {
	tests := []struct {
		mode EntryMode
		want byte
	}{
		{EntryMode{RightToLeft, false}, 0x04},
		{EntryMode{RightToLeft, true}, 0x05},
		{EntryMode{LeftToRight, false}, 0x06},
		{EntryMode{LeftToRight, true}, 0x07},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%+v", tt.mode), func(t *testing.T) {
			qt.Assert(t, tt.mode.Cmd(), qt.Equals, tt.want)
		})
	}
}

func TestSegCommControl(t *testing.T) {
	c := qt.New(t)
	c.Assert(SegCommControl{LeftToRight, TopToBottom}.Cmd(), qt.Equals, byte(0x61))
	c.Assert(SegCommControl{LeftToRight, BottomToTop}.Cmd(), qt.Equals, byte(0x41))
	c.Assert(SegCommControl{RightToLeft, TopToBottom}.Cmd(), qt.Equals, byte(0x60))
	c.Assert(SegCommControl{RightToLeft, BottomToTop}.Cmd(), qt.Equals, byte(0x40))
}

func TestShift(t *testing.T) {
	c := qt.New(t)
	c.Assert(Shift{RightToLeft, ShiftDisplay}.Cmd(), qt.Equals, byte(0x18))
	c.Assert(Shift{LeftToRight, ShiftDisplay}.Cmd(), qt.Equals, byte(0x1C))
	c.Assert(Shift{RightToLeft, ShiftCursor}.Cmd(), qt.Equals, byte(0x10))
	c.Assert(Shift{LeftToRight, ShiftCursor}.Cmd(), qt.Equals, byte(0x14))
}

func TestPowerIconContrast(t *testing.T) {
	tests := []struct {
		name          string
		booster, icon bool
		contrast      uint8
		want1, want2  byte
		wantClampedTo uint8
	}{
		{"all on", true, true, 45, 0x5E, 0x7D, 45},
		{"all off", false, false, 15, 0x50, 0x7F, 15},
		{"default", true, false, 42, 0x56, 0x7A, 42},
		{"max", false, false, 63, 0x53, 0x7F, 63},
		{"clamped", false, false, 200, 0x53, 0x7F, 63},
		{"clamped 64", true, false, 64, 0x57, 0x7F, 63},
		{"zero", false, true, 0, 0x58, 0x70, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			p := NewPowerIconContrast(tt.booster, tt.icon, tt.contrast)
			c.Assert(p.Contrast, qt.Equals, tt.wantClampedTo)
			c.Assert(p.Cmds(), qt.Equals, [2]byte{tt.want1, tt.want2})
		})
	}
}

func TestPowerIconContrastUnclampedField(t *testing.T) {
	p := PowerIconContrast{Contrast: 255}
	qt.Assert(t, p.Cmds(), qt.Equals, [2]byte{0x53, 0x7F})
}

func TestFollowerControl(t *testing.T) {
	c := qt.New(t)
	for rab := Rab1p9; rab <= Rab6p5; rab++ {
		c.Assert(FollowerControl{rab, false}.Cmd(), qt.Equals, 0x60|byte(rab))
		c.Assert(FollowerControl{rab, true}.Cmd(), qt.Equals, 0x68|byte(rab))
	}
	c.Assert(FollowerControl{Rab3p0, true}.Cmd(), qt.Equals, byte(0x6B))
	c.Assert(FollowerControl{Rab3p6, true}.Cmd(), qt.Equals, byte(0x6C))
}

func TestExtendedFunctionSet(t *testing.T) {
	c := qt.New(t)
	for _, fw := range []FontWidth{FontFiveDot, FontSixDot} {
		for _, bw := range []bool{false, true} {
			for _, nw := range []bool{false, true} {
				want := byte(0x08) | byte(fw)<<2
				if bw {
					want |= 0x02
				}
				if nw {
					want |= 0x01
				}
				c.Assert(ExtendedFunctionSet{fw, bw, nw}.Cmd(), qt.Equals, want)
			}
		}
	}
	c.Assert(ExtendedFunctionSet{FontSixDot, true, true}.Cmd(), qt.Equals, byte(0x0F))
	c.Assert(ExtendedFunctionSet{FontFiveDot, false, true}.Cmd(), qt.Equals, byte(0x09))
}

func TestFunctionSet(t *testing.T) {
	tests := []struct {
		name   string
		fs     FunctionSet
		re0is0 byte
		re0is1 byte
		re1is0 byte
	}{
		{"four lines", FunctionSet{Lines: TwoOrFourLines}, 0x38, 0x39, 0x3A},
		{"four lines dh", FunctionSet{Lines: TwoOrFourLines, DoubleHeight: true}, 0x3C, 0x3D, 0x3A},
		{"three lines dh blink", FunctionSet{OneOrThreeLines, true, true, false}, 0x34, 0x35, 0x36},
		{"reverse", FunctionSet{Lines: TwoOrFourLines, Reverse: true}, 0x38, 0x39, 0x3B},
		{"one line", FunctionSet{}, 0x30, 0x31, 0x32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(tt.fs.CmdRE0IS0(), qt.Equals, tt.re0is0)
			c.Assert(tt.fs.CmdRE0IS1(), qt.Equals, tt.re0is1)
			c.Assert(tt.fs.CmdRE1IS0(), qt.Equals, tt.re1is0)
			c.Assert(tt.fs.CmdsRE1IS1(), qt.Equals, [2]byte{tt.re0is1, tt.re1is0})
		})
	}
}

func TestDoubleHeightBias(t *testing.T) {
	tests := []struct {
		mode DoubleHeight
		want byte
	}{
		{DoubleHeight2Lines, 0x1B},
		{DoubleHeight3LinesTop, 0x1F},
		{DoubleHeight3LinesMiddle, 0x17},
		{DoubleHeight3LinesBottom, 0x13},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			qt.Assert(t, DoubleHeightBias{tt.mode, true, true}.Cmd(), qt.Equals, tt.want)
		})
	}
	c := qt.New(t)
	c.Assert(DoubleHeightBias{DoubleHeightNone, false, true}.Cmd(), qt.Equals, byte(0x1E))
	c.Assert(DoubleHeightBias{DoubleHeight3LinesBottom, false, false}.Cmd(), qt.Equals, byte(0x10))
}

func TestOscillator(t *testing.T) {
	c := qt.New(t)
	for f := Osc420kHz; f <= Osc680kHz; f++ {
		c.Assert(Oscillator{f, false}.Cmd(), qt.Equals, 0x10|byte(f))
		c.Assert(Oscillator{f, true}.Cmd(), qt.Equals, 0x18|byte(f))
	}
	c.Assert(Oscillator{Osc540kHz, true}.Cmd(), qt.Equals, byte(0x1B))
}

func TestDisplayFlags(t *testing.T) {
	c := qt.New(t)
	all := DisplayOn.With(CursorOn).With(BlinkOn)
	c.Assert(all.Cmd(), qt.Equals, byte(0x0F))
	c.Assert(all.Without(CursorOn).Cmd(), qt.Equals, byte(0x0D))
	c.Assert(all.Without(CursorOn|BlinkOn).Cmd(), qt.Equals, byte(0x0C))
	c.Assert(DisplayFlags(0).Cmd(), qt.Equals, byte(0x08))
	c.Assert(all.Has(DisplayOn|BlinkOn), qt.IsTrue)
	c.Assert(DisplayOn.Has(CursorOn), qt.IsFalse)
	c.Assert(DisplayFlags(0xF0).Cmd(), qt.Equals, byte(0x08))
}

func TestViewMode(t *testing.T) {
	c := qt.New(t)
	c.Assert(ViewTop.Cmd(), qt.Equals, byte(0x05))
	c.Assert(ViewBottom.Cmd(), qt.Equals, byte(0x06))
	c.Assert(ViewTop.ddramBase(), qt.Equals, byte(0x84))
	c.Assert(ViewBottom.ddramBase(), qt.Equals, byte(0x80))
}

func TestDefaultConfig(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()
	c.Assert(cfg.Display, qt.Equals, DisplayOn)
	c.Assert(cfg.EntryMode.Cmd(), qt.Equals, byte(0x06))
	c.Assert(cfg.ViewMode, qt.Equals, ViewTop)
	c.Assert(cfg.DoubleHeight, qt.Equals, DoubleHeightNone)
	c.Assert(cfg.Function.CmdRE0IS0(), qt.Equals, byte(0x38))
	c.Assert(cfg.Oscillator.Cmd(), qt.Equals, byte(0x1B))
	c.Assert(cfg.Follower.Cmd(), qt.Equals, byte(0x6C))
	c.Assert(cfg.extendedFunctionSet().Cmd(), qt.Equals, byte(0x09))
	c.Assert(cfg.bias().Cmd(), qt.Equals, byte(0x1E))
}
