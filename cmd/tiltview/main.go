// Copyright 2024 German Bionic Systems. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// tiltview renders the angle readout to the terminal, and optionally to a
// PNG, exactly as the panel driver would blit it. No hardware required.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/GermanBionicSystems/tiltdisplay/ansiscreen"
	"github.com/GermanBionicSystems/tiltdisplay/ssd1306angle"
	"github.com/fogleman/gg"
)

func mainImpl() error {
	angle := flag.Float64("angle", 12.3, "angle to render, in degrees")
	pngPath := flag.String("png", "", "also write the readout to this PNG file")
	scale := flag.Int("scale", 8, "pixel size in the PNG output")
	flag.Parse()
	if flag.NArg() != 0 {
		return fmt.Errorf("unexpected argument: %s", flag.Arg(0))
	}
	if *scale <= 0 {
		return fmt.Errorf("invalid scale %d", *scale)
	}

	payload := ssd1306angle.Rasterize(float32(*angle))
	w := len(payload) / ssd1306angle.GlyphPages
	h := 8 * ssd1306angle.GlyphPages

	d := ansiscreen.New(&ansiscreen.Opts{W: w, H: h})
	if _, err := d.Write(payload); err != nil {
		return err
	}
	if err := d.Halt(); err != nil {
		return err
	}

	if *pngPath == "" {
		return nil
	}
	img := ansiscreen.Image(w, h, payload)
	s := float64(*scale)
	dc := gg.NewContext(w*(*scale), h*(*scale))
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !img.BitAt(x, y) {
				continue
			}
			dc.DrawRectangle(float64(x)*s, float64(y)*s, s, s)
		}
	}
	dc.Fill()
	return dc.SavePNG(*pngPath)
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "tiltview: %s.\n", err)
		os.Exit(1)
	}
}
