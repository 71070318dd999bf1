//go:build tinygo

/*
Copyright 2024 Tim St. Pierre
DOGS164 demo firmware for a Raspberry Pi Pico
*/

// Command dogs164-pico drives a DOGS164 on I2C0 (GP4 SDA, GP5 SCL) and
// counts up on the bottom line.
//
//	tinygo flash -target=pico ./cmd/dogs164-pico
package main

import (
	"errors"
	"machine"
	"strconv"
	"time"

	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"

	"github.com/Neomium/dogs164"
)

// bus adapts a TinyGo I²C peripheral to the periph.io bus interface.
type bus struct {
	drivers.I2C
	name string
}

func (b *bus) String() string {
	return b.name
}

func (b *bus) SetSpeed(f physic.Frequency) error {
	s, ok := b.I2C.(interface{ SetBaudRate(br uint32) error })
	if !ok {
		return errors.New("bus speed cannot be changed")
	}
	return s.SetBaudRate(uint32(f / physic.Hertz))
}

func main() {
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA: machine.GP4,
		SCL: machine.GP5,
	})
	if err != nil {
		halt("could not configure I2C", err)
	}

	delay := dogs164.DelayerFunc(func(ms uint32) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
	})
	opts := dogs164.DefaultOpts
	opts.Speed = 400 * physic.KiloHertz
	dev, err := dogs164.NewI2C(&bus{I2C: machine.I2C0, name: "I2C0"}, delay, &opts)
	if err != nil {
		halt("could not set up display", err)
	}
	if err := dev.Init(dogs164.DefaultConfig()); err != nil {
		halt("could not initialize display", err)
	}
	dev.Locate(1, 1)
	dev.WriteString("Hello from")
	dev.Locate(2, 1)
	dev.WriteString("TinyGo")

	for n := 0; ; n++ {
		if err := dev.ClearLine(4); err != nil {
			println("write failed:", err.Error())
		}
		dev.WriteString(strconv.Itoa(n))
		time.Sleep(time.Second)
	}
}

func halt(msg string, err error) {
	for {
		println(msg, err.Error())
		time.Sleep(time.Second)
	}
}
