// Copyright 2024 German Bionic Systems. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306angle

import (
	"fmt"
	"sync/atomic"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

const (
	// bufferSize is the GDDRAM size: 128 columns by 8 pages.
	bufferSize = 1024
	// watchdogTicks is the number of millisecond ticks granted to an
	// asynchronous transfer before it is declared stuck.
	watchdogTicks = 10
	// resetPulse is how long the reset line is held low. The controller
	// needs 3 µs.
	resetPulse = 10 * time.Microsecond

	// Valid argument ranges of PrintAngle.
	minAngle = -90.0
	maxAngle = 90.0
)

// state is the phase of the cooperative render machine. Update dispatches on
// it exhaustively; adding a state is a type-checked change.
type state uint8

const (
	// stateIdle accepts render requests; no bus activity.
	stateIdle state = iota
	// stateRasterizing has a latched request to rasterize and launch.
	stateRasterizing
	// stateAwaitingData has an asynchronous transfer on the wire.
	stateAwaitingData
)

// Opts holds the configuration of the display connection.
type Opts struct {
	// Freq is the SPI clock. Defaults to 3.3 MHz, the maximum the SSD1306
	// supports.
	Freq physic.Frequency
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Freq: 3300 * physic.KiloHertz,
}

// Dev is an open handle to the display driver.
//
// The driver is deliberately non-blocking: the application runs a loop that
// calls Update on every pass and a 1 ms timer that calls Tick. A render is
// requested with PrintAngle once IsReady reports true; Update then performs
// the bounded command traffic and hands the payload to the asynchronous
// transmit path, so the loop never stalls on the bus for more than the
// command timeout.
//
// Dev is not safe for concurrent use; only Tick may be called from another
// goroutine or timer context.
type Dev struct {
	t   Transmitter
	dc  gpio.PinOut
	cs  gpio.PinOut
	rst gpio.PinOut

	// GDDRAM shadow. The render path reuses the first payloadSize bytes as
	// its scratch area; the buffer is never touched while an asynchronous
	// transfer reads from it.
	buffer [bufferSize]byte

	// Latched render request, consumed by the next Update.
	nextAngle  float32
	nextPage   int
	nextColumn int

	state state

	// Milliseconds left before an outstanding transfer is declared stuck.
	// Decremented by Tick from timer context, hence atomic.
	deadline atomic.Int32
}

// New returns a driver over an arbitrary Transmitter.
//
// dc selects command or data traffic, cs frames every transfer, rst is the
// active-low panel reset. rst may be nil when the reset line is driven
// externally; the panel must then be out of reset before Init.
func New(t Transmitter, dc, cs, rst gpio.PinOut) *Dev {
	return &Dev{t: t, dc: dc, cs: cs, rst: rst}
}

// NewSPI returns a driver that communicates with the panel over 4-wire SPI.
//
// Connect SCK to SPI_CLK, SDA to SPI_MOSI. The chip select is driven as a
// GPIO rather than by the bus because it must stay asserted across the
// command byte, the parameter bytes and the whole asynchronous payload.
func NewSPI(p spi.Port, dc, cs, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	freq := opts.Freq
	if freq == 0 {
		freq = DefaultOpts.Freq
	}
	c, err := p.Connect(freq, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1306angle: %w", err)
	}
	return New(&connTransmitter{c: c}, dc, cs, rst), nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306angle.Dev{%s, %s}", d.dc, d.cs)
}

// Init resets the panel, runs the init script and clears the screen. The
// driver is idle and ready for PrintAngle afterwards.
func (d *Dev) Init() error {
	// Idle the bus before touching the reset line.
	if err := d.cs.Out(gpio.High); err != nil {
		return err
	}
	if err := d.reset(); err != nil {
		return err
	}
	if err := initDisplay(d); err != nil {
		return fmt.Errorf("ssd1306angle: %w", err)
	}
	clear(d.buffer[:])
	if err := clearScreen(d, d.buffer[:]); err != nil {
		return fmt.Errorf("ssd1306angle: %w", err)
	}
	d.state = stateIdle
	return nil
}

func (d *Dev) reset() error {
	if d.rst == nil {
		return nil
	}
	if err := d.rst.Out(gpio.Low); err != nil {
		return err
	}
	time.Sleep(resetPulse)
	if err := d.rst.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(resetPulse)
	return nil
}

// IsReady reports whether the driver accepts a new render request. Callers
// must gate PrintAngle on it: a request issued while the driver is busy
// overwrites the latched one.
func (d *Dev) IsReady() bool {
	return d.state == stateIdle
}

// PrintAngle latches a request to draw angle (in degrees, one decimal, with
// sign and degree mark) at the given position. page is the upper of the two
// pages written, 0 to 6; column is the leftmost of the 66 columns written,
// 0 to 61. The work happens on the following Update calls.
func (d *Dev) PrintAngle(angle float32, page, column int) error {
	if angle < minAngle || angle > maxAngle {
		return fmt.Errorf("%w: %+.1f°", ErrAngleOutOfRange, angle)
	}
	d.nextAngle = angle
	d.nextPage = page
	d.nextColumn = column
	d.state = stateRasterizing
	return nil
}

// Tick counts down the transfer watchdog by one millisecond. Call it from a
// 1 ms periodic timer. It never goes below zero and is safe to call from a
// different goroutine than Update.
func (d *Dev) Tick() {
	for {
		v := d.deadline.Load()
		if v <= 0 {
			return
		}
		if d.deadline.CompareAndSwap(v, v-1) {
			return
		}
	}
}

// Update advances the driver by one step and returns the outcome of that
// step. Any error forces the driver back to idle so the application can
// re-render; nothing is retried internally.
func (d *Dev) Update() error {
	switch d.state {
	case stateRasterizing:
		return d.render()
	case stateAwaitingData:
		return d.awaitTransfer()
	case stateIdle:
	}
	return nil
}

// render services a latched request: rasterize into the buffer, program the
// address window with bounded commands, then launch the payload
// asynchronously with chip select held.
func (d *Dev) render() error {
	rasterizeInto(d.buffer[:], d.nextAngle)
	if err := setRenderWindow(d, d.nextPage, d.nextColumn); err != nil {
		d.state = stateIdle
		return fmt.Errorf("ssd1306angle: %w", err)
	}
	if err := d.dc.Out(gpio.High); err != nil {
		d.state = stateIdle
		return fmt.Errorf("ssd1306angle: %w", err)
	}
	if err := d.cs.Out(gpio.Low); err != nil {
		d.state = stateIdle
		return fmt.Errorf("ssd1306angle: %w", err)
	}
	d.deadline.Store(watchdogTicks)
	if err := d.t.TransmitAsync(d.buffer[:payloadSize]); err != nil {
		_ = d.cs.Out(gpio.High)
		d.state = stateIdle
		return fmt.Errorf("%w: %v", ErrAsyncLaunch, err)
	}
	d.state = stateAwaitingData
	return nil
}

// awaitTransfer polls the outstanding transfer. The watchdog is checked
// first so a wedged bus cannot hold the driver busy forever.
func (d *Dev) awaitTransfer() error {
	if d.deadline.Load() <= 0 {
		_ = d.cs.Out(gpio.High)
		_ = d.t.Abort()
		d.state = stateIdle
		return fmt.Errorf("%w: no completion within %d ms", ErrAsyncTimeout, watchdogTicks)
	}
	if d.t.Busy() {
		return nil
	}
	d.state = stateIdle
	return d.cs.Out(gpio.High)
}
