/*
Copyright 2024 Tim St. Pierre
Writes text to a DOGS164 display attached to a host I2C bus
*/

// Command dogs164 initializes a DOGS164 display and writes each argument on
// its own line.
//
//	dogs164 -bus 1 -view bottom "Hello" "World"
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/Neomium/dogs164"
)

var (
	busName  = flag.String("bus", "", "I²C bus name (empty for the first one)")
	addr     = flag.String("addr", "0x3c", "I²C address, 0x3c or 0x3d")
	view     = flag.String("view", "top", "View mode: top or bottom")
	contrast = flag.Int("contrast", -1, "Contrast 0-63, -1 keeps the default")
	dh       = flag.String("dh", "none", "Double height: none, 2, 3top, 3middle, 3bottom")
	verbose  = flag.Bool("v", false, "Log every transfer")
)

var doubleHeights = map[string]dogs164.DoubleHeight{
	"none":    dogs164.DoubleHeightNone,
	"2":       dogs164.DoubleHeight2Lines,
	"3top":    dogs164.DoubleHeight3LinesTop,
	"3middle": dogs164.DoubleHeight3LinesMiddle,
	"3bottom": dogs164.DoubleHeight3LinesBottom,
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [line...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if flag.NArg() > dogs164.Rows {
		log.Fatalf("At most %d lines, got %d", dogs164.Rows, flag.NArg())
	}

	cfg, err := config()
	if err != nil {
		log.Fatal(err)
	}
	a, err := strconv.ParseUint(*addr, 0, 16)
	if err != nil {
		log.Fatalf("Invalid address %q: %v", *addr, err)
	}

	if _, err := host.Init(); err != nil {
		log.Fatalf("Failed to initialize periph.io: %v", err)
	}
	b, err := i2creg.Open(*busName)
	if err != nil {
		log.Fatalf("Failed to open I²C bus: %v", err)
	}
	defer b.Close()

	opts := dogs164.DefaultOpts
	opts.I2CAddr = uint16(a)
	dev, err := dogs164.NewI2C(b, nil, &opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := dev.Init(cfg); err != nil {
		log.Fatal(err)
	}
	for i, line := range flag.Args() {
		if err := write(dev, i+1, line); err != nil {
			log.WithField("line", i+1).Fatal(err)
		}
	}
	log.Infof("Wrote %d lines to %s", flag.NArg(), dev)
}

func config() (dogs164.Config, error) {
	cfg := dogs164.DefaultConfig()
	switch *view {
	case "top":
		cfg.ViewMode = dogs164.ViewTop
	case "bottom":
		cfg.ViewMode = dogs164.ViewBottom
	default:
		return cfg, fmt.Errorf("unknown view %q", *view)
	}
	mode, ok := doubleHeights[*dh]
	if !ok {
		return cfg, fmt.Errorf("unknown double height mode %q", *dh)
	}
	cfg.DoubleHeight = mode
	if *contrast >= 0 {
		if *contrast > dogs164.MaxContrast {
			return cfg, fmt.Errorf("contrast %d above %d", *contrast, dogs164.MaxContrast)
		}
		cfg.Power = dogs164.NewPowerIconContrast(cfg.Power.Booster, cfg.Power.Icon, uint8(*contrast))
	}
	return cfg, nil
}

// write puts text on row, cut to the display width.
func write(dev *dogs164.Dev, row int, text string) error {
	if err := dev.ClearLine(row); err != nil {
		return err
	}
	if len(text) > dogs164.Cols {
		text = text[:dogs164.Cols]
	}
	_, err := dev.WriteString(text)
	return err
}
