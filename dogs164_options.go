/*
Copyright 2024 Tim St. Pierre
Options for the DOGS164 character display
*/
package dogs164

import (
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/physic"
)

type Opts struct {
	// The I²C slave address, 0x3C or 0x3D depending on SA0
	I2CAddr uint16
	// Bus clock to request, 0 leaves the bus as configured
	Speed physic.Frequency
	// Pause before the first initialization command
	StartupDelay time.Duration
	// Pause between the following initialization steps
	StepDelay time.Duration
	// Defaults to the logrus standard logger
	Logger log.FieldLogger
}

var DefaultOpts = Opts{
	I2CAddr:      0x3C,
	StartupDelay: 15 * time.Millisecond,
	StepDelay:    100 * time.Millisecond,
}

func (o *Opts) i2cAddr() (uint16, error) {
	switch o.I2CAddr {
	case 0:
		// Default address.
		return DefaultOpts.I2CAddr, nil
	case 0x3C, 0x3D:
		return o.I2CAddr, nil
	default:
		return 0, errors.New("given address not supported by device")
	}
}

// delays returns the initialization pauses in milliseconds. The controller
// needs time to settle after every step, so zero selects the default rather
// than no pause at all.
func (o *Opts) delays() (startup, step uint32, err error) {
	if o.StartupDelay < 0 || o.StepDelay < 0 {
		return 0, 0, errors.New("negative initialization delay")
	}
	s, p := o.StartupDelay, o.StepDelay
	if s == 0 {
		s = DefaultOpts.StartupDelay
	}
	if p == 0 {
		p = DefaultOpts.StepDelay
	}
	return toMs(s), toMs(p), nil
}

// toMs rounds d up to whole milliseconds.
func toMs(d time.Duration) uint32 {
	return uint32((d + time.Millisecond - 1) / time.Millisecond)
}

func (o *Opts) logger() log.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.StandardLogger()
}
