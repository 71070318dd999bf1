/*
Copyright 2024 Tim St. Pierre
*/

// Package dogs164 controls the Electronic Assembly DOGS164 4x16 character
// LCD, driven by a Solomon Systech SSD18030 (SSD1803A compatible) controller
// on the I²C bus.
//
// The controller keeps two sticky bits, RE and IS, that select which of its
// instruction tables the next command is decoded with. Dev tracks them and
// sends the function set commands each operation needs, so callers only deal
// with the operations themselves.
//
// Every transfer starts with a control byte, 0x00 for commands and 0x40 for
// data. The controller is write only on this bus; nothing is read back.
//
// # Usage
//
//	b, err := i2creg.Open("")
//	if err != nil {
//		log.Fatal(err)
//	}
//	dev, err := dogs164.NewI2C(b, nil, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := dev.Init(dogs164.DefaultConfig()); err != nil {
//		log.Fatal(err)
//	}
//	dev.Locate(2, 1)
//	dev.WriteString("Hello")
//
// Dev also implements periph.io/x/conn/v3/display.TextDisplay.
//
// # Datasheet
//
// https://www.lcd-module.com/fileadmin/eng/pdf/doma/dogs164e.pdf
package dogs164
