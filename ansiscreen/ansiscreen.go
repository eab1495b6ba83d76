// Copyright 2024 German Bionic Systems. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ansiscreen implements a 2D display.Drawer that outputs to terminal
// (stdout) using ANSI color codes.
//
// Useful to see what the panel driver would draw without a panel attached:
// it accepts the same page-major byte stream the SSD1306 consumes.
package ansiscreen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Opts represents the options available for this display.
type Opts struct {
	W       int
	H       int
	Palette *ansi256.Palette
	// Writer overrides the output; defaults to a colorable stdout.
	Writer io.Writer
}

// Dev is a monochrome screen emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	rect    image.Rectangle
	palette ansi256.Palette

	img *image1bit.VerticalLSB
	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
//
// Permits local testing of the angle readout rendering.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Writer
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Dev{
		w:       w,
		rect:    image.Rect(0, 0, opts.W, opts.H),
		palette: *p,
		img:     image1bit.NewVerticalLSB(image.Rect(0, 0, opts.W, opts.H)),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("ANSIScreen{%d, %d}", d.rect.Dx(), d.rect.Dy())
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so following output is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Src.Draw(d.img, r.Intersect(d.rect), src, sp)
	return d.refresh()
}

// Write accepts a full frame in the SSD1306 wire format: page-major bands of
// 8 vertical pixels per byte, least significant bit topmost.
func (d *Dev) Write(pixels []byte) (int, error) {
	want := d.rect.Dx() * d.rect.Dy() / 8
	if len(pixels) != want {
		return 0, fmt.Errorf("ansiscreen: invalid pixel stream length; expected %d bytes, got %d bytes", want, len(pixels))
	}
	img := Image(d.rect.Dx(), d.rect.Dy(), pixels)
	copy(d.img.Pix, img.Pix)
	if err := d.refresh(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

func (d *Dev) refresh() error {
	white := color.NRGBA{255, 255, 255, 255}
	black := color.NRGBA{0, 0, 0, 255}

	// Minimize the amount of memory allocated per call.
	d.buf.Reset()
	for y := 0; y < d.rect.Dy(); y++ {
		_, _ = d.buf.WriteString("\033[0m")
		for x := 0; x < d.rect.Dx(); x++ {
			c := black
			if d.img.BitAt(x, y) {
				c = white
			}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

// Image converts a page-major byte stream of w×h pixels into an image. The
// SSD1306 page layout and image1bit bands agree on bit 0 as the topmost row,
// so the bytes copy through unchanged.
func Image(w, h int, pixels []byte) *image1bit.VerticalLSB {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	return img
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
