/*
Copyright 2024 Tim St. Pierre
Instruction encoding for the SSD18030 controller of the DOGS164 display
*/
package dogs164

const (
	// Control bytes prefixed to every I²C transfer
	MODE_Command = 0x00
	MODE_Data    = 0x40

	// Commands valid in every instruction table
	CMD_Clear_Display = 0x01
	CMD_Return_Home   = 0x02
	CMD_DDRAM_Set     = 0x80

	// Commands of the RE=0, IS=0 table
	CMD_Entry_Mode      = 0x04
	CMD_Display_Control = 0x08
	CMD_Shift           = 0x10

	// Commands of the RE=1, IS=0 table
	CMD_Seg_Comm_Control = 0x40
	CMD_ROM_Select       = 0x72

	// Commands of the RE=0, IS=1 table
	CMD_Power_Icon_Contrast = 0x50
	CMD_Follower_Control    = 0x60
	CMD_Contrast_Set        = 0x70

	// Function set family, selects the instruction table
	CMD_Function_Set_RE0 = 0x30
	CMD_Function_Set_RE1 = 0x32

	CMD_Extended_Function_Set = 0x08
	CMD_Double_Height_Bias    = 0x10
	CMD_Oscillator            = 0x10

	// Options
	OPT_Left_To_Right   = 0x02 // CMD_Entry_Mode
	OPT_Shift_Increment = 0x01 // CMD_Entry_Mode
	OPT_Display_Shift_L = 0x08 // CMD_Shift
	OPT_Display_Shift_R = 0x0C // CMD_Shift
	OPT_Cursor_Shift_L  = 0x00 // CMD_Shift
	OPT_Cursor_Shift_R  = 0x04 // CMD_Shift
	OPT_Seg_Left2Right  = 0x01 // CMD_Seg_Comm_Control
	OPT_Com_Top2Bottom  = 0x20 // CMD_Seg_Comm_Control
	OPT_Booster_On      = 0x04 // CMD_Power_Icon_Contrast
	OPT_Icon_On         = 0x08 // CMD_Power_Icon_Contrast
	OPT_Follower_On     = 0x08 // CMD_Follower_Control
	OPT_Two_Four_Lines  = 0x08 // CMD_Function_Set_*
	OPT_Double_Height   = 0x04 // CMD_Function_Set_RE0
	OPT_Data_Blink      = 0x04 // CMD_Function_Set_RE1
	OPT_Reverse         = 0x01 // CMD_Function_Set_RE1
	OPT_IS              = 0x01 // CMD_Function_Set_RE0
	OPT_BS1             = 0x02 // CMD_Double_Height_Bias
	OPT_Dot_Shift       = 0x01 // CMD_Double_Height_Bias
	OPT_BS0             = 0x08 // CMD_Oscillator

	// Largest contrast value, C5..C0
	MaxContrast = 63
)

// HorizontalDir is the scan direction of the segment drivers or of the
// address counter.
type HorizontalDir uint8

const (
	RightToLeft HorizontalDir = iota
	LeftToRight
)

// VerticalDir is the scan direction of the common drivers.
type VerticalDir uint8

const (
	BottomToTop VerticalDir = iota
	TopToBottom
)

// DisplayFlags is the D/C/B set of the display control command.
type DisplayFlags uint8

const (
	BlinkOn   DisplayFlags = 0x01
	CursorOn  DisplayFlags = 0x02
	DisplayOn DisplayFlags = 0x04
)

// With returns the union of f and o.
func (f DisplayFlags) With(o DisplayFlags) DisplayFlags {
	return f | o
}

// Without returns f with every flag of o removed.
func (f DisplayFlags) Without(o DisplayFlags) DisplayFlags {
	return f &^ o
}

// Has reports whether all flags of o are set in f.
func (f DisplayFlags) Has(o DisplayFlags) bool {
	return f&o == o
}

func (f DisplayFlags) Cmd() byte {
	return CMD_Display_Control | byte(f&(DisplayOn|CursorOn|BlinkOn))
}

// EntryMode sets the cursor move direction and whether the display shifts
// along with it.
type EntryMode struct {
	Direction HorizontalDir
	Shift     bool
}

func (e EntryMode) Cmd() byte {
	cmd := byte(CMD_Entry_Mode)
	if e.Direction == LeftToRight {
		cmd |= OPT_Left_To_Right
	}
	if e.Shift {
		cmd |= OPT_Shift_Increment
	}
	return cmd
}

// SegCommControl selects the scan direction of the segment and common
// drivers.
type SegCommControl struct {
	Seg HorizontalDir
	Com VerticalDir
}

func (s SegCommControl) Cmd() byte {
	cmd := byte(CMD_Seg_Comm_Control)
	if s.Seg == LeftToRight {
		cmd |= OPT_Seg_Left2Right
	}
	if s.Com == TopToBottom {
		cmd |= OPT_Com_Top2Bottom
	}
	return cmd
}

// ShiftTarget is what a shift command moves.
type ShiftTarget uint8

const (
	ShiftCursor ShiftTarget = iota
	ShiftDisplay
)

// Shift moves the cursor or the whole display by one position.
//
// RightToLeft selects the "left" opcodes and LeftToRight the "right" ones.
type Shift struct {
	Direction HorizontalDir
	Target    ShiftTarget
}

func (s Shift) Cmd() byte {
	switch {
	case s.Target == ShiftDisplay && s.Direction == RightToLeft:
		return CMD_Shift | OPT_Display_Shift_L
	case s.Target == ShiftDisplay:
		return CMD_Shift | OPT_Display_Shift_R
	case s.Direction == RightToLeft:
		return CMD_Shift | OPT_Cursor_Shift_L
	default:
		return CMD_Shift | OPT_Cursor_Shift_R
	}
}

// PowerIconContrast holds the booster and icon switches together with the
// 6 bit contrast value. They are sent as two commands of the RE=0, IS=1
// table.
type PowerIconContrast struct {
	Booster  bool
	Icon     bool
	Contrast uint8
}

// NewPowerIconContrast clamps contrast to MaxContrast.
func NewPowerIconContrast(booster, icon bool, contrast uint8) PowerIconContrast {
	return PowerIconContrast{
		Booster:  booster,
		Icon:     icon,
		Contrast: clampContrast(contrast),
	}
}

func clampContrast(c uint8) uint8 {
	if c > MaxContrast {
		return MaxContrast
	}
	return c
}

// Cmds returns the power/icon/contrast-high command followed by the
// contrast-low command.
func (p PowerIconContrast) Cmds() [2]byte {
	c := clampContrast(p.Contrast)
	b1 := byte(CMD_Power_Icon_Contrast)
	if p.Booster {
		b1 |= OPT_Booster_On
	}
	if p.Icon {
		b1 |= OPT_Icon_On
	}
	b1 |= (c >> 4) & 0x03
	return [2]byte{b1, CMD_Contrast_Set | c&0x0F}
}

// Rab is the V0 generator amplified ratio of the follower circuit.
type Rab uint8

const (
	Rab1p9 Rab = iota
	Rab2p2
	Rab2p6
	Rab3p0
	Rab3p6
	Rab4p4
	Rab5p3
	Rab6p5
)

type FollowerControl struct {
	Rab Rab
	On  bool
}

func (f FollowerControl) Cmd() byte {
	cmd := CMD_Follower_Control | byte(f.Rab&0x07)
	if f.On {
		cmd |= OPT_Follower_On
	}
	return cmd
}

type FontWidth uint8

const (
	FontFiveDot FontWidth = iota
	FontSixDot
)

// ExtendedFunctionSet carries the FW, B/W and NW bits.
type ExtendedFunctionSet struct {
	FontWidth   FontWidth
	BWInversion bool
	FourLine    bool
}

func (e ExtendedFunctionSet) Cmd() byte {
	cmd := CMD_Extended_Function_Set | byte(e.FontWidth&0x01)<<2
	if e.BWInversion {
		cmd |= 0x02
	}
	if e.FourLine {
		cmd |= 0x01
	}
	return cmd
}

// LineMode is the N bit of the function set.
type LineMode uint8

const (
	OneOrThreeLines LineMode = iota
	TwoOrFourLines
)

// FunctionSet is the function set command. Its encoding depends on which
// instruction table is being selected, so it has one method per table.
type FunctionSet struct {
	Lines        LineMode
	DoubleHeight bool // DH, RE=0 only
	DataBlink    bool // BE, RE=1 only
	Reverse      bool // REV, RE=1 only
}

func (f FunctionSet) CmdRE0IS0() byte {
	cmd := byte(CMD_Function_Set_RE0)
	if f.Lines == TwoOrFourLines {
		cmd |= OPT_Two_Four_Lines
	}
	if f.DoubleHeight {
		cmd |= OPT_Double_Height
	}
	return cmd
}

func (f FunctionSet) CmdRE0IS1() byte {
	return f.CmdRE0IS0() | OPT_IS
}

func (f FunctionSet) CmdRE1IS0() byte {
	cmd := byte(CMD_Function_Set_RE1)
	if f.Lines == TwoOrFourLines {
		cmd |= OPT_Two_Four_Lines
	}
	if f.DataBlink {
		cmd |= OPT_Data_Blink
	}
	if f.Reverse {
		cmd |= OPT_Reverse
	}
	return cmd
}

// CmdsRE1IS1 needs two writes: IS can only be changed while RE=0, and the
// RE=1 function set leaves IS untouched.
func (f FunctionSet) CmdsRE1IS1() [2]byte {
	return [2]byte{f.CmdRE0IS1(), f.CmdRE1IS0()}
}

// DoubleHeight selects which lines are drawn double height.
type DoubleHeight uint8

const (
	DoubleHeightNone DoubleHeight = iota
	DoubleHeight2Lines
	DoubleHeight3LinesTop
	DoubleHeight3LinesMiddle
	DoubleHeight3LinesBottom
)

// ud returns the UD2/UD1 bits. DoubleHeightNone shares the encoding of
// DoubleHeight3LinesTop, which is the controller reset value.
func (d DoubleHeight) ud() byte {
	switch d {
	case DoubleHeight2Lines:
		return 2
	case DoubleHeight3LinesMiddle:
		return 1
	case DoubleHeight3LinesBottom:
		return 0
	default:
		return 3
	}
}

func (d DoubleHeight) String() string {
	switch d {
	case DoubleHeightNone:
		return "none"
	case DoubleHeight2Lines:
		return "2lines"
	case DoubleHeight3LinesTop:
		return "3lines-top"
	case DoubleHeight3LinesMiddle:
		return "3lines-middle"
	case DoubleHeight3LinesBottom:
		return "3lines-bottom"
	}
	return "invalid"
}

// DoubleHeightBias is the double height / BS1 / dot scroll command of the
// RE=1, IS=0 table.
type DoubleHeightBias struct {
	Mode     DoubleHeight
	DotShift bool
	BS1      bool
}

func (d DoubleHeightBias) Cmd() byte {
	cmd := CMD_Double_Height_Bias | d.Mode.ud()<<2
	if d.DotShift {
		cmd |= OPT_Dot_Shift
	}
	if d.BS1 {
		cmd |= OPT_BS1
	}
	return cmd
}

// OscFreq is the internal oscillator frequency selector F2..F0.
type OscFreq uint8

const (
	Osc420kHz OscFreq = iota
	Osc460kHz
	Osc500kHz
	Osc540kHz
	Osc580kHz
	Osc620kHz
	Osc640kHz
	Osc680kHz
)

// Oscillator is the bias (BS0) / oscillator command of the RE=0, IS=1
// table.
type Oscillator struct {
	Freq OscFreq
	BS0  bool
}

func (o Oscillator) Cmd() byte {
	cmd := CMD_Oscillator | byte(o.Freq&0x07)
	if o.BS0 {
		cmd |= OPT_BS0
	}
	return cmd
}

// ViewMode is the bottom or top viewing direction. The value is the
// RE=1 entry mode command that selects it.
type ViewMode uint8

const (
	ViewTop    ViewMode = 0x05
	ViewBottom ViewMode = 0x06
)

func (v ViewMode) Cmd() byte {
	return byte(v)
}

// ddramBase returns the first DDRAM address of the visible area.
func (v ViewMode) ddramBase() byte {
	if v == ViewTop {
		return CMD_DDRAM_Set + 0x04
	}
	return CMD_DDRAM_Set
}

func (v ViewMode) String() string {
	if v == ViewBottom {
		return "bottom"
	}
	return "top"
}

// ROM is the character generator ROM. The value is the data byte following
// CMD_ROM_Select.
type ROM uint8

const (
	ROMA ROM = 0x00
	ROMB ROM = 0x04
	ROMC ROM = 0x08
)
