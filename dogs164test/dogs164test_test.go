/*
Copyright 2024 Tim St. Pierre
*/
package dogs164test

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
)

func tx(c *qt.C, ctrl *Controller, w ...byte) {
	c.Helper()
	c.Assert(ctrl.Tx(ctrl.Addr, w, nil), qt.IsNil)
}

func TestReset(t *testing.T) {
	c := qt.New(t)
	ctrl := New(0x3C)
	c.Assert(ctrl.Lines(), qt.DeepEquals, []string{
		"                ", "                ", "                ", "                ",
	})
	c.Assert(ctrl.TopView(), qt.IsFalse)
	inc, shift := ctrl.EntryMode()
	c.Assert(inc, qt.IsTrue)
	c.Assert(shift, qt.IsFalse)
	c.Assert(ctrl.String(), qt.Equals, "dogs164test(0x3c)")
}

func TestTxRejects(t *testing.T) {
	c := qt.New(t)
	ctrl := New(0x3C)
	c.Assert(ctrl.Tx(0x3D, []byte{0x00, 0x01}, nil), qt.ErrorMatches, "dogs164test: no device at 0x3d")
	c.Assert(ctrl.Tx(0x3C, []byte{0x00, 0x01}, make([]byte, 1)), qt.ErrorMatches, "dogs164test: read not supported")
	c.Assert(ctrl.Tx(0x3C, []byte{0x00}, nil), qt.ErrorMatches, "dogs164test: short transfer 00")
	c.Assert(ctrl.Tx(0x3C, []byte{0x80, 0x01}, nil), qt.ErrorMatches, "dogs164test: unsupported control byte 0x80")
}

func TestFailAfter(t *testing.T) {
	c := qt.New(t)
	ctrl := New(0x3C)
	ctrl.FailAfter = 2
	tx(c, ctrl, 0x00, 0x01)
	tx(c, ctrl, 0x00, 0x02)
	err := ctrl.Tx(0x3C, []byte{0x00, 0x01}, nil)
	c.Assert(errors.Is(err, ErrFault), qt.IsTrue)
	c.Assert(ctrl.Transfers(), qt.HasLen, 2)
}

func TestTableSelection(t *testing.T) {
	c := qt.New(t)
	ctrl := New(0x3C)

	tx(c, ctrl, 0x00, 0x39)
	re, is := ctrl.Table()
	c.Assert([]bool{re, is}, qt.DeepEquals, []bool{false, true})

	// RE=1 keeps IS.
	tx(c, ctrl, 0x00, 0x3A)
	re, is = ctrl.Table()
	c.Assert([]bool{re, is}, qt.DeepEquals, []bool{true, true})

	tx(c, ctrl, 0x00, 0x3C)
	re, is = ctrl.Table()
	c.Assert([]bool{re, is}, qt.DeepEquals, []bool{false, false})
	_, dh := ctrl.DoubleHeight()
	c.Assert(dh, qt.IsTrue)
}

func TestCommandsDependOnTable(t *testing.T) {
	c := qt.New(t)
	ctrl := New(0x3C)

	// 0x0D is display control with RE=0 and extended function set with RE=1.
	tx(c, ctrl, 0x00, 0x38, 0x0D)
	c.Assert(ctrl.DisplayFlags(), qt.Equals, byte(0x05))
	tx(c, ctrl, 0x00, 0x3A, 0x0D)
	c.Assert(ctrl.ExtendedFunction(), qt.Equals, byte(0x05))
	c.Assert(ctrl.DisplayFlags(), qt.Equals, byte(0x05))

	// 0x1B is a shift with RE=0 IS=0, bias and double height with RE=1 and
	// the oscillator with IS=1.
	tx(c, ctrl, 0x00, 0x1B)
	ud, _ := ctrl.DoubleHeight()
	c.Assert(ud, qt.Equals, byte(2))
	bs1, bs0 := ctrl.Bias()
	c.Assert(bs1, qt.IsTrue)
	c.Assert(bs0, qt.IsFalse)

	tx(c, ctrl, 0x00, 0x39, 0x1B)
	c.Assert(ctrl.Oscillator(), qt.Equals, byte(0x03))
	_, bs0 = ctrl.Bias()
	c.Assert(bs0, qt.IsTrue)

	// Power and contrast only exist with IS=1.
	tx(c, ctrl, 0x00, 0x5E, 0x7D, 0x6B)
	c.Assert(ctrl.Contrast(), qt.Equals, byte(45))
	booster, icon := ctrl.Power()
	c.Assert(booster, qt.IsTrue)
	c.Assert(icon, qt.IsTrue)
	c.Assert(ctrl.Follower(), qt.Equals, byte(0x0B))

	tx(c, ctrl, 0x00, 0x38, 0x7F)
	c.Assert(ctrl.Contrast(), qt.Equals, byte(45))
	c.Assert(ctrl.Scroll(), qt.Equals, 0)
}

func TestDataAndCursor(t *testing.T) {
	c := qt.New(t)
	ctrl := New(0x3C)
	tx(c, ctrl, 0x00, 0x3A, 0x05, 0x38)
	c.Assert(ctrl.TopView(), qt.IsTrue)

	tx(c, ctrl, 0x00, 0xA4)
	tx(c, ctrl, 0x40, 'h', 'i')
	c.Assert(ctrl.Row(2), qt.Equals, "hi              ")
	row, col, ok := ctrl.Cursor()
	c.Assert(ok, qt.IsTrue)
	c.Assert([]int{row, col}, qt.DeepEquals, []int{2, 3})
	c.Assert(ctrl.Transfers()[2].Data(), qt.IsTrue)

	// Bottom view shows DDRAM from 0x00.
	tx(c, ctrl, 0x00, 0x3A, 0x06, 0x38)
	c.Assert(ctrl.Row(2), qt.Equals, "    hi          ")
	c.Assert(ctrl.Row(0), qt.Equals, "")

	tx(c, ctrl, 0x00, 0x01)
	c.Assert(ctrl.Row(2), qt.Equals, "                ")
}

func TestROMSelect(t *testing.T) {
	c := qt.New(t)
	ctrl := New(0x3C)
	tx(c, ctrl, 0x00, 0x3A, 0x72)
	tx(c, ctrl, 0x40, 0x04)
	c.Assert(ctrl.ROM(), qt.Equals, byte(0x04))
	c.Assert(ctrl.Lines()[0], qt.Equals, "                ")
}
