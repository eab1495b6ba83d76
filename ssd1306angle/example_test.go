// Copyright 2024 German Bionic Systems. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306angle_test

import (
	"log"
	"time"

	"github.com/GermanBionicSystems/tiltdisplay/ssd1306angle"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use spireg SPI port registry to find the first available SPI bus.
	p, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	dc := gpioreg.ByName("GPIO24")
	cs := gpioreg.ByName("GPIO8")
	rst := gpioreg.ByName("GPIO25")

	dev, err := ssd1306angle.NewSPI(p, dc, cs, rst, nil)
	if err != nil {
		log.Fatalf("failed to open display: %v", err)
	}
	if err := dev.Init(); err != nil {
		log.Fatalf("failed to initialize display: %v", err)
	}

	// Feed the transfer watchdog from a 1 ms timer.
	go func() {
		for range time.Tick(time.Millisecond) {
			dev.Tick()
		}
	}()

	// The application super-loop: request a render whenever the driver is
	// idle, advance the state machine on every pass.
	angle := float32(-12.3)
	for {
		if dev.IsReady() {
			if err := dev.PrintAngle(angle, 2, 10); err != nil {
				log.Printf("render rejected: %v", err)
			}
			angle += 0.1
			if angle > 90 {
				angle = -90
			}
		}
		if err := dev.Update(); err != nil {
			log.Printf("render failed: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
