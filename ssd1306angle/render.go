// Copyright 2024 German Bionic Systems. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306angle

// The readout is six glyph slots: sign, tens, units, decimal point, tenths,
// degree mark.
const (
	slotSign   = 0
	slotTens   = 1
	slotUnits  = 2
	slotTenths = 4

	slotCount = 6
	// payloadSize is the byte count of one rendered readout.
	payloadSize = slotCount * GlyphBytes
)

// negThreshold is the angle below which the sign slot shows a minus.
// Slightly below zero so float noise on a zero reading does not flicker the
// sign: -0.03 still renders as +00.0°.
const negThreshold = -0.05

// angleSlots converts an angle in degrees to the six glyph indices of the
// readout. The arithmetic runs in float32; the truncation results differ in
// float64 (12.3 would lose its tenths digit).
func angleSlots(angle float32) [slotCount]uint8 {
	slots := [slotCount]uint8{IndexPlus, 0, 0, IndexDot, 0, IndexDegree}
	if angle < negThreshold {
		slots[slotSign] = IndexMinus
		angle = -angle
	} else if angle < 0 {
		// Within the threshold. Truncate as zero instead of handing a
		// negative value to the unsigned conversions below.
		angle = 0
	}
	slots[slotTens] = uint8(angle / 10)
	slots[slotUnits] = uint8(angle) % 10
	slots[slotTenths] = uint8(uint16(angle*10) % 10)
	return slots
}

// rasterizeInto writes the readout for angle into buf in the controller's
// horizontal addressing order for a two-page window: the upper page of each
// glyph left to right, then the lower page of each glyph. buf must hold at
// least payloadSize bytes.
func rasterizeInto(buf []byte, angle float32) {
	slots := angleSlots(angle)
	i := 0
	for page := 0; page < GlyphPages; page++ {
		for _, slot := range slots {
			i += copy(buf[i:], Font[slot][page*GlyphWidth:(page+1)*GlyphWidth])
		}
	}
}

// Rasterize renders the readout for angle exactly as the driver sends it to
// the panel: 132 bytes covering a window two pages tall and 66 columns wide.
// The result depends only on angle. Useful for tests and host-side previews.
// The readout has two integer digits, so angles beyond [-90°, +90°] saturate
// to the nearest limit.
func Rasterize(angle float32) []byte {
	if angle < minAngle {
		angle = minAngle
	} else if angle > maxAngle {
		angle = maxAngle
	}
	buf := make([]byte, payloadSize)
	rasterizeInto(buf, angle)
	return buf
}
