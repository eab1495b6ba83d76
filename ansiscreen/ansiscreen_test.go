// Copyright 2024 German Bionic Systems. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ansiscreen

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func TestImageBitOrder(t *testing.T) {
	// Bit 0 of a page byte is the topmost row of the band.
	pix := make([]byte, 8*16/8)
	pix[0] = 0x01
	pix[1] = 0x80
	img := Image(8, 16, pix)
	if !img.BitAt(0, 0) {
		t.Fatal("bit 0 of byte 0 must map to (0, 0)")
	}
	if img.BitAt(0, 7) {
		t.Fatal("(0, 7) must be off")
	}
	if !img.BitAt(1, 7) {
		t.Fatal("bit 7 of byte 1 must map to (1, 7)")
	}
}

func TestImagePageMajor(t *testing.T) {
	pix := make([]byte, 8*16/8)
	// Second page starts at byte index w.
	pix[8] = 0x01
	img := Image(8, 16, pix)
	if !img.BitAt(0, 8) {
		t.Fatal("byte w must map to the top of the second band")
	}
	if img.BitAt(0, 0) {
		t.Fatal("(0, 0) must be off")
	}
}

func TestWrite(t *testing.T) {
	b := &bytes.Buffer{}
	d := New(&Opts{W: 8, H: 16, Writer: b})
	n, err := d.Write(make([]byte, 8*16/8))
	if err != nil {
		t.Fatal(err)
	}
	if n != 16 {
		t.Fatalf("n = %d", n)
	}
	if got := strings.Count(b.String(), "\n"); got != 16 {
		t.Fatalf("expected one line per row, got %d lines", got)
	}
}

func TestWriteBadLength(t *testing.T) {
	d := New(&Opts{W: 8, H: 16, Writer: &bytes.Buffer{}})
	if _, err := d.Write(make([]byte, 15)); err == nil {
		t.Fatal("expected length error")
	}
}

func TestDraw(t *testing.T) {
	b := &bytes.Buffer{}
	d := New(&Opts{W: 8, H: 16, Writer: b})
	src := image1bit.NewVerticalLSB(image.Rect(0, 0, 8, 16))
	src.SetBit(3, 5, image1bit.On)
	if err := d.Draw(d.Bounds(), src, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if !d.img.BitAt(3, 5) {
		t.Fatal("pixel not drawn")
	}
	if b.Len() == 0 {
		t.Fatal("nothing written")
	}
}

func TestHalt(t *testing.T) {
	b := &bytes.Buffer{}
	d := New(&Opts{W: 8, H: 8, Writer: b})
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "\033[0m") {
		t.Fatal("expected attribute reset")
	}
}

func TestString(t *testing.T) {
	d := New(&Opts{W: 128, H: 64, Writer: &bytes.Buffer{}})
	if s := d.String(); s != "ANSIScreen{128, 64}" {
		t.Fatal(s)
	}
}
