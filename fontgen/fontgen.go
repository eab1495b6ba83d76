// Copyright 2024 German Bionic Systems. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package fontgen rasterizes TrueType glyphs into the fixed-cell, page-major
// byte format the panel driver blits directly to the SSD1306.
//
// Each glyph cell is Width columns by Height rows, Height a multiple of 8.
// The cell is stored band by band: Width bytes for rows 0-7, then Width bytes
// for rows 8-15, and so on. Within a byte the least significant bit is the
// topmost row of the band, matching the controller's page layout.
package fontgen

import (
	"bytes"
	"fmt"
	"go/format"
	"image"
	"io"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Charset is the default glyph set: the characters needed to print a signed
// angle with one decimal.
const Charset = "0123456789.+-°"

// Opts selects the cell geometry and type size.
type Opts struct {
	// Size is the type size in points at 72 DPI.
	Size float64
	// Width and Height are the cell size in pixels.
	Width  int
	Height int
	// Charset overrides the default glyph set.
	Charset string
}

func (o *Opts) charset() []rune {
	if o.Charset != "" {
		return []rune(o.Charset)
	}
	return []rune(Charset)
}

// Rasterize renders every charset rune of the TrueType font ttf into a glyph
// cell and returns one packed byte slice per rune, in charset order.
func Rasterize(ttf []byte, opts *Opts) ([][]byte, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.Height%8 != 0 {
		return nil, fmt.Errorf("fontgen: invalid cell %dx%d; height must be a positive multiple of 8", opts.Width, opts.Height)
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("fontgen: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    opts.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	ascent := face.Metrics().Ascent.Ceil()
	runes := opts.charset()
	glyphs := make([][]byte, 0, len(runes))
	cell := image.NewGray(image.Rect(0, 0, opts.Width, opts.Height))
	for _, r := range runes {
		for i := range cell.Pix {
			cell.Pix[i] = 0
		}
		d := font.Drawer{
			Dst:  cell,
			Src:  image.White,
			Face: face,
		}
		adv := d.MeasureString(string(r))
		// Center horizontally, put the baseline at the face ascent.
		d.Dot = fixed.Point26_6{
			X: (fixed.I(opts.Width) - adv) / 2,
			Y: fixed.I(ascent),
		}
		d.DrawString(string(r))
		glyphs = append(glyphs, pack(cell))
	}
	return glyphs, nil
}

// pack converts the grayscale cell into page-major bytes, thresholding at
// half intensity.
func pack(cell *image.Gray) []byte {
	w := cell.Rect.Dx()
	h := cell.Rect.Dy()
	out := make([]byte, w*h/8)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cell.GrayAt(x, y).Y < 0x80 {
				continue
			}
			out[(y/8)*w+x] |= 1 << (y % 8)
		}
	}
	return out
}

// Emit writes a gofmt-ed Go source file declaring the glyph table as
//
//	var <name> = [N][M]byte{...}
//
// in package pkg, one row per glyph with the rune as a trailing comment.
func Emit(w io.Writer, pkg, name string, glyphs [][]byte, opts *Opts) error {
	if len(glyphs) == 0 {
		return fmt.Errorf("fontgen: no glyphs to emit")
	}
	runes := opts.charset()
	if len(runes) != len(glyphs) {
		return fmt.Errorf("fontgen: %d glyphs for %d charset runes", len(glyphs), len(runes))
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by fontgen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "// %s holds %dx%d glyphs in page-major, LSB-top format.\n", name, opts.Width, opts.Height)
	fmt.Fprintf(&b, "var %s = [%d][%d]byte{\n", name, len(glyphs), len(glyphs[0]))
	for i, g := range glyphs {
		fmt.Fprintf(&b, "\t{")
		for j, v := range g {
			if j > 0 {
				fmt.Fprintf(&b, ", ")
			}
			fmt.Fprintf(&b, "%#02x", v)
		}
		fmt.Fprintf(&b, "}, // %q\n", runes[i])
	}
	fmt.Fprintf(&b, "}\n")
	src, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("fontgen: %w", err)
	}
	_, err = w.Write(src)
	return err
}
