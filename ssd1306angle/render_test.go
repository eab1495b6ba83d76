// Copyright 2024 German Bionic Systems. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306angle

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAngleSlots(t *testing.T) {
	for _, tc := range []struct {
		name  string
		angle float32
		want  [slotCount]uint8
	}{
		{
			name:  "positive with decimal",
			angle: 12.3,
			want:  [slotCount]uint8{IndexPlus, 1, 2, IndexDot, 3, IndexDegree},
		},
		{
			name:  "negative tenth",
			angle: -0.1,
			want:  [slotCount]uint8{IndexMinus, 0, 0, IndexDot, 1, IndexDegree},
		},
		{
			name:  "negative within threshold",
			angle: -0.03,
			want:  [slotCount]uint8{IndexPlus, 0, 0, IndexDot, 0, IndexDegree},
		},
		{
			name:  "zero",
			angle: 0,
			want:  [slotCount]uint8{IndexPlus, 0, 0, IndexDot, 0, IndexDegree},
		},
		{
			name:  "positive limit",
			angle: 90.0,
			want:  [slotCount]uint8{IndexPlus, 9, 0, IndexDot, 0, IndexDegree},
		},
		{
			name:  "negative limit",
			angle: -90.0,
			want:  [slotCount]uint8{IndexMinus, 9, 0, IndexDot, 0, IndexDegree},
		},
		{
			name:  "tenths rounding",
			angle: -67.8,
			want:  [slotCount]uint8{IndexMinus, 6, 7, IndexDot, 8, IndexDegree},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(angleSlots(tc.angle), tc.want); diff != "" {
				t.Errorf("angleSlots(%v) difference (-got +want):\n%s", tc.angle, diff)
			}
		})
	}
}

func TestRasterizePayloadOrder(t *testing.T) {
	got := Rasterize(12.3)
	if len(got) != payloadSize {
		t.Fatalf("payload length = %d, want %d", len(got), payloadSize)
	}

	// Upper page of each glyph left to right, then the lower page.
	slots := []uint8{IndexPlus, 1, 2, IndexDot, 3, IndexDegree}
	var want []byte
	for page := 0; page < GlyphPages; page++ {
		for _, slot := range slots {
			want = append(want, Font[slot][page*GlyphWidth:(page+1)*GlyphWidth]...)
		}
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Rasterize(12.3) difference (-got +want):\n%s", diff)
	}
	if !bytes.Equal(got[:GlyphWidth], Font[IndexPlus][:GlyphWidth]) {
		t.Error("payload does not start with the upper page of '+'")
	}
	if !bytes.Equal(got[payloadSize/2:payloadSize/2+GlyphWidth], Font[IndexPlus][GlyphWidth:]) {
		t.Error("second half of payload does not start with the lower page of '+'")
	}
}

func TestRasterizeSaturates(t *testing.T) {
	// A three-digit angle must not reach past the ten glyph digits; it
	// renders as the nearest limit instead.
	for _, tc := range []struct {
		angle float32
		limit float32
	}{
		{100.0, 90.0},
		{150.0, 90.0},
		{-100.0, -90.0},
		{-273.9, -90.0},
	} {
		if !bytes.Equal(Rasterize(tc.angle), Rasterize(tc.limit)) {
			t.Errorf("Rasterize(%v) does not match Rasterize(%v)", tc.angle, tc.limit)
		}
	}
}

func TestRasterizeDeterministic(t *testing.T) {
	// The payload must depend on the angle alone, not on prior renders.
	first := Rasterize(-33.7)
	_ = Rasterize(90.0)
	_ = Rasterize(-0.04)
	second := Rasterize(-33.7)
	if !bytes.Equal(first, second) {
		t.Error("identical angles rasterized to different payloads")
	}
}

func TestFontGeometry(t *testing.T) {
	if len(Font) != 14 {
		t.Fatalf("font has %d glyphs, want 14", len(Font))
	}
	for i, g := range Font {
		if len(g) != GlyphBytes {
			t.Errorf("glyph %d holds %d bytes, want %d", i, len(g), GlyphBytes)
		}
	}
	// The decimal point lights only the lower page.
	for i, b := range Font[IndexDot][:GlyphWidth] {
		if b != 0 {
			t.Errorf("'.' upper page column %d = %#02x, want 0", i, b)
		}
	}
	// The degree mark lights only the upper page.
	for i, b := range Font[IndexDegree][GlyphWidth:] {
		if b != 0 {
			t.Errorf("'°' lower page column %d = %#02x, want 0", i, b)
		}
	}
}
