// Copyright 2024 German Bionic Systems. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306angle

// Geometry of the angle readout glyphs. Each glyph is 11 columns wide and
// spans two GDDRAM pages (16 pixel rows). Within a page a byte is one column,
// bit 0 being the topmost row of that page, matching the controller's RAM
// layout. Bytes 0..10 of a glyph are the upper page, bytes 11..21 the lower
// page.
const (
	// GlyphWidth is the width of a glyph in columns (pixels).
	GlyphWidth = 11
	// GlyphPages is the number of 8-pixel pages a glyph spans.
	GlyphPages = 2
	// GlyphBytes is the storage size of one glyph.
	GlyphBytes = GlyphWidth * GlyphPages
)

// Indices into Font. Indices 0 through 9 hold the corresponding digits.
const (
	IndexDot    = 10
	IndexPlus   = 11
	IndexMinus  = 12
	IndexDegree = 13
)

// Font is the Verdana 16 pt numeric glyph set used for the angle readout.
// Generated offline (see the fontgen package for the generator); the byte
// values are frozen since they define what the panel shows, so regenerate
// only on purpose.
var Font = [14][GlyphBytes]byte{
	// '0'
	{
		0xF0, 0xFC, 0x0E, 0x07, 0x03, 0x03, 0x03, 0x07, 0x0E, 0xFC, 0xF0,
		0x0F, 0x3F, 0x70, 0xE0, 0xC0, 0xC0, 0xC0, 0xE0, 0x70, 0x3F, 0x0F,
	},
	// '1'
	{
		0x00, 0x00, 0x0C, 0x0C, 0x0C, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0xC0, 0xC0, 0xC0, 0xFF, 0xFF, 0xC0, 0xC0, 0xC0, 0x00,
	},
	// '2'
	{
		0x00, 0x06, 0x03, 0x03, 0x03, 0x03, 0x03, 0x87, 0xFE, 0x7C, 0x00,
		0x00, 0xE0, 0xF0, 0xF8, 0xDC, 0xCE, 0xC7, 0xC3, 0xC0, 0xC0, 0xC0,
	},
	// '3'
	{
		0x00, 0x06, 0x03, 0x03, 0xC3, 0xC3, 0xC3, 0xE7, 0x3E, 0x1C, 0x00,
		0x00, 0x60, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0x61, 0x7F, 0x1E, 0x00,
	},
	// '4'
	{
		0x00, 0x80, 0xC0, 0xF0, 0x38, 0x1C, 0x0E, 0xFF, 0xFF, 0x00, 0x00,
		0x07, 0x07, 0x07, 0x06, 0x06, 0x06, 0x06, 0xFF, 0xFF, 0x06, 0x06,
	},
	// '5'
	{
		0x00, 0x00, 0xFF, 0xFF, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0x83, 0x03,
		0x00, 0x60, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0x61, 0x7F, 0x1F,
	},
	// '6'
	{
		0xE0, 0xF8, 0x9C, 0xC6, 0xC7, 0xC3, 0xC3, 0xC3, 0x83, 0x80, 0x00,
		0x0F, 0x3F, 0x71, 0xE0, 0xC0, 0xC0, 0xC0, 0xC0, 0x61, 0x3F, 0x1F,
	},
	// '7'
	{
		0x00, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0xC3, 0xF3, 0x3F, 0x0F,
		0x00, 0x00, 0x80, 0xE0, 0xF8, 0x3E, 0x0F, 0x03, 0x00, 0x00, 0x00,
	},
	// '8'
	{
		0x3C, 0x7E, 0x66, 0xC3, 0xC3, 0x83, 0x83, 0xC3, 0x46, 0x7E, 0x3C,
		0x3E, 0x7F, 0x61, 0xC0, 0xC0, 0xC0, 0xC1, 0xC1, 0x63, 0x7F, 0x1E,
	},
	// '9'
	{
		0xF8, 0xFC, 0x86, 0x03, 0x03, 0x03, 0x03, 0x07, 0x8E, 0xFC, 0xF0,
		0x00, 0x01, 0xC1, 0xC3, 0xC3, 0xC3, 0xE3, 0x63, 0x39, 0x1F, 0x07,
	},
	// '.'
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0xE0, 0xE0, 0x00, 0x00, 0x00, 0x00,
	},
	// '+'
	{
		0x00, 0x00, 0x00, 0x00, 0xC0, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x0C, 0x0C, 0x0C, 0x0C, 0xFF, 0xFF, 0x0C, 0x0C, 0x0C, 0x0C, 0x00,
	},
	// '-'
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x00, 0x00,
	},
	// '°'
	{
		0x00, 0x00, 0x3C, 0x7E, 0xE7, 0xC3, 0xC3, 0xE7, 0x7E, 0x3C, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
}
