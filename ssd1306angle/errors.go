// Copyright 2024 German Bionic Systems. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306angle

import "errors"

// Warnings reject a request and leave the driver state untouched.
var (
	// ErrAngleOutOfRange is returned by PrintAngle for angles outside
	// [-90°, +90°].
	ErrAngleOutOfRange = errors.New("ssd1306angle: angle out of range")
	// ErrTooManyParameters is returned when a command carries more than
	// maxParameters parameter bytes.
	ErrTooManyParameters = errors.New("ssd1306angle: too many command parameters")
	// ErrSizeTooLarge is returned when a data transfer exceeds the GDDRAM
	// size.
	ErrSizeTooLarge = errors.New("ssd1306angle: data larger than GDDRAM")
)

// Transport failures. Chip select is deasserted before any of these is
// returned, and the state machine falls back to idle.
var (
	// ErrCommandTx reports a failed register byte transmission.
	ErrCommandTx = errors.New("ssd1306angle: command transmission failed")
	// ErrParameterTx reports a failed parameter byte transmission.
	ErrParameterTx = errors.New("ssd1306angle: parameter transmission failed")
	// ErrDataTx reports a failed blocking data transmission.
	ErrDataTx = errors.New("ssd1306angle: data transmission failed")
	// ErrAsyncLaunch reports that the asynchronous engine refused a transfer.
	ErrAsyncLaunch = errors.New("ssd1306angle: asynchronous transfer refused")
	// ErrAsyncTimeout reports an asynchronous transfer that did not complete
	// within the watchdog deadline. The transfer is aborted.
	ErrAsyncTimeout = errors.New("ssd1306angle: asynchronous transfer timed out")
)

// IsWarning reports whether err is a request validation error rather than a
// transport failure. Warnings never change the driver state; the caller can
// correct the arguments and retry immediately.
func IsWarning(err error) bool {
	return errors.Is(err, ErrAngleOutOfRange) ||
		errors.Is(err, ErrTooManyParameters) ||
		errors.Is(err, ErrSizeTooLarge)
}
