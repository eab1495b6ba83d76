// Copyright 2024 German Bionic Systems. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306angle

// Command registers of the SSD1306. Only the subset used by the init script
// and the render path is listed. See page 28 of the datasheet,
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
const (
	regMemoryAddrMode   byte = 0x20
	regColumnAddress    byte = 0x21
	regPageAddress      byte = 0x22
	regContrastControl  byte = 0x81
	regChargePump       byte = 0x8D
	regSegmentRemap127  byte = 0xA1
	regDisplayOn        byte = 0xAF
	regScanDirectionN10 byte = 0xC8
	regClockDivideRatio byte = 0xD5
	regHardwareConfig   byte = 0xDA
)

// Parameter values for the registers above.
const (
	horizontalAddressing byte = 0x00 // regMemoryAddrMode A[1:0]=00
	contrastHighest      byte = 0xFF
	enableChargePump     byte = 0x14 // regChargePump, datasheet page 62
	pinConfigAlternate   byte = 0x12 // regHardwareConfig A[4]=1, alternative COM pins
	comRemapDisable      byte = 0x00 // regHardwareConfig A[5]=0, no left/right remap
	clockFreqMid         byte = 0x80 // regClockDivideRatio A[7:4], mid oscillator frequency
	clockDivider1        byte = 0x00 // regClockDivideRatio A[3:0], divide ratio 1
)
