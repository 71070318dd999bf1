/*
Copyright 2024 Tim St. Pierre
Display configuration for the DOGS164
*/
package dogs164

// Config is the full set of display settings applied by Init.
//
// The fields are not checked against each other; FourLine together with a
// double height mode is accepted as given.
type Config struct {
	Display      DisplayFlags
	EntryMode    EntryMode
	SegComm      SegCommControl
	ViewMode     ViewMode
	DoubleHeight DoubleHeight
	ROM          ROM
	Function     FunctionSet
	Oscillator   Oscillator
	Follower     FollowerControl
	Power        PowerIconContrast
	BWInversion  bool
	FontWidth    FontWidth
	FourLine     bool
}

// DefaultConfig returns the settings for a DOGS164 in top view with four
// lines and the display switched on.
func DefaultConfig() Config {
	return Config{
		Display:   DisplayOn,
		EntryMode: EntryMode{Direction: LeftToRight},
		SegComm: SegCommControl{
			Seg: LeftToRight,
			Com: TopToBottom,
		},
		ViewMode:   ViewTop,
		ROM:        ROMA,
		Function:   FunctionSet{Lines: TwoOrFourLines},
		Oscillator: Oscillator{Freq: Osc540kHz, BS0: true},
		Follower:   FollowerControl{Rab: Rab3p6, On: true},
		Power:      NewPowerIconContrast(true, false, 42),
		FontWidth:  FontFiveDot,
		FourLine:   true,
	}
}

func (c Config) extendedFunctionSet() ExtendedFunctionSet {
	return ExtendedFunctionSet{
		FontWidth:   c.FontWidth,
		BWInversion: c.BWInversion,
		FourLine:    c.FourLine,
	}
}

// bias is the RE=1 command sent while setting BS1. It repeats the double
// height mode so the bias step does not undo it.
func (c Config) bias() DoubleHeightBias {
	return DoubleHeightBias{
		Mode:     c.DoubleHeight,
		DotShift: c.DoubleHeight != DoubleHeightNone,
		BS1:      true,
	}
}
