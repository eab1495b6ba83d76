// Copyright 2024 German Bionic Systems. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306angle

import "fmt"

// controller is the slice of the device the fixed command sequences need.
type controller interface {
	sendCommand(reg byte, params ...byte) error
	sendData(p []byte) error
}

type initEntry struct {
	reg      byte
	param    byte
	hasParam bool
}

// initScript brings the panel from reset to a displaying state, taken from
// the application example on page 64 of the datasheet. Registers whose reset
// value is already correct are not written. The order matters: the charge
// pump must be running before display-on.
var initScript = [8]initEntry{
	{reg: regScanDirectionN10},
	{reg: regHardwareConfig, param: pinConfigAlternate | comRemapDisable, hasParam: true},
	{reg: regSegmentRemap127},
	{reg: regMemoryAddrMode, param: horizontalAddressing, hasParam: true},
	{reg: regContrastControl, param: contrastHighest, hasParam: true},
	{reg: regClockDivideRatio, param: clockFreqMid | clockDivider1, hasParam: true},
	{reg: regChargePump, param: enableChargePump, hasParam: true},
	{reg: regDisplayOn},
}

func initDisplay(ctrl controller) error {
	for i, e := range initScript {
		var err error
		if e.hasParam {
			err = ctrl.sendCommand(e.reg, e.param)
		} else {
			err = ctrl.sendCommand(e.reg)
		}
		if err != nil {
			return fmt.Errorf("init step %d: %w", i, err)
		}
	}
	return nil
}

// clearScreen opens the full address window and wipes the GDDRAM with
// buffer, which the caller zeroes beforehand. The page range 0..31 follows
// the 32-row addressing of this panel variant; a 64-row part needs 0..7.
func clearScreen(ctrl controller, buffer []byte) error {
	if err := ctrl.sendCommand(regColumnAddress, 0, 127); err != nil {
		return fmt.Errorf("clear columns: %w", err)
	}
	if err := ctrl.sendCommand(regPageAddress, 0, 31); err != nil {
		return fmt.Errorf("clear pages: %w", err)
	}
	if err := ctrl.sendData(buffer); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	return nil
}

// setRenderWindow programs the address window for a readout drawn at the
// given page and column: six glyph cells wide, two pages tall.
func setRenderWindow(ctrl controller, page, column int) error {
	last := column + slotCount*GlyphWidth - 1
	if err := ctrl.sendCommand(regColumnAddress, byte(column), byte(last)); err != nil {
		return fmt.Errorf("render columns: %w", err)
	}
	if err := ctrl.sendCommand(regPageAddress, byte(page), byte(page+1)); err != nil {
		return fmt.Errorf("render pages: %w", err)
	}
	return nil
}
