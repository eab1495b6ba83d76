// Copyright 2024 German Bionic Systems. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306angle

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

const (
	// maxParameters is the most parameter bytes a single command carries.
	maxParameters = 6
	// spiTimeout bounds every blocking transmission.
	spiTimeout = 10 * time.Millisecond
)

// Transmitter is the transport the driver requires from its host: a bounded
// blocking transmit for short command bursts and a non-blocking bulk transfer
// for the render payload, with completion observable by polling.
//
// NewSPI installs an implementation over a spi.Conn. Tests and host-side
// tools inject their own.
type Transmitter interface {
	// Transmit sends p and returns once the bus has drained or timeout has
	// passed, whichever comes first.
	Transmit(p []byte, timeout time.Duration) error
	// TransmitAsync starts sending p and returns immediately. p must not be
	// modified until Busy reports false. Launching while a transfer is
	// outstanding is refused.
	TransmitAsync(p []byte) error
	// Busy reports whether an asynchronous transfer is outstanding.
	Busy() bool
	// Abort gives up on an outstanding asynchronous transfer.
	Abort() error
}

// connTransmitter adapts a conn.Conn to the Transmitter contract. The
// asynchronous path runs the transfer on a goroutine and flags completion;
// an error on that path leaves the panel stale, which the next render
// overwrites.
//
// mu serializes every Tx: a transfer abandoned by a Transmit timeout keeps
// running on its goroutine, and later transfers queue behind it instead of
// interleaving on the bus. A truly wedged bus therefore times out every
// following Transmit as well.
type connTransmitter struct {
	c    conn.Conn
	mu   sync.Mutex
	busy atomic.Bool
}

func (t *connTransmitter) Transmit(p []byte, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		done <- t.c.Tx(p, nil)
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("transmit of %d bytes exceeded %s", len(p), timeout)
	}
}

func (t *connTransmitter) TransmitAsync(p []byte) error {
	if !t.busy.CompareAndSwap(false, true) {
		return errors.New("transfer already outstanding")
	}
	go func() {
		t.mu.Lock()
		_ = t.c.Tx(p, nil)
		t.mu.Unlock()
		t.busy.Store(false)
	}()
	return nil
}

func (t *connTransmitter) Busy() bool {
	return t.busy.Load()
}

// Abort is best effort: a conn.Conn transfer cannot be cancelled midway, so
// an aborted transfer only stops being reported as outstanding.
func (t *connTransmitter) Abort() error {
	t.busy.Store(false)
	return nil
}

// sendCommand transmits a register byte followed by its parameter bytes.
// Chip select is released on every exit path.
func (d *Dev) sendCommand(reg byte, params ...byte) error {
	if len(params) > maxParameters {
		return fmt.Errorf("%w: register %#02x with %d parameters", ErrTooManyParameters, reg, len(params))
	}
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.cs.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.t.Transmit([]byte{reg}, spiTimeout); err != nil {
		_ = d.cs.Out(gpio.High)
		return fmt.Errorf("%w: register %#02x: %v", ErrCommandTx, reg, err)
	}
	var result error
	if len(params) > 0 {
		if err := d.t.Transmit(params, spiTimeout); err != nil {
			result = fmt.Errorf("%w: register %#02x: %v", ErrParameterTx, reg, err)
		}
	}
	if err := d.cs.Out(gpio.High); err != nil && result == nil {
		result = err
	}
	return result
}

// sendData transmits p to the GDDRAM in one blocking call. An empty p is a
// no-op.
func (d *Dev) sendData(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if len(p) > bufferSize {
		return fmt.Errorf("%w: %d bytes", ErrSizeTooLarge, len(p))
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	if err := d.cs.Out(gpio.Low); err != nil {
		return err
	}
	var result error
	if err := d.t.Transmit(p, spiTimeout); err != nil {
		result = fmt.Errorf("%w: %d bytes: %v", ErrDataTx, len(p), err)
	}
	if err := d.cs.Out(gpio.High); err != nil && result == nil {
		result = err
	}
	return result
}
