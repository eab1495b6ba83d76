// Copyright 2024 German Bionic Systems. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// fontgen regenerates the panel driver's glyph table from a TrueType font.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/GermanBionicSystems/tiltdisplay/fontgen"
)

func mainImpl() error {
	fontPath := flag.String("font", "", "TrueType font file to rasterize")
	size := flag.Float64("size", 14, "type size in points")
	width := flag.Int("width", 11, "glyph cell width in pixels")
	height := flag.Int("height", 16, "glyph cell height in pixels; multiple of 8")
	charset := flag.String("charset", fontgen.Charset, "characters to rasterize")
	pkg := flag.String("pkg", "ssd1306angle", "package name of the generated file")
	name := flag.String("name", "Font", "variable name of the generated table")
	out := flag.String("out", "", "output file; stdout if empty")
	flag.Parse()
	if flag.NArg() != 0 {
		return fmt.Errorf("unexpected argument: %s", flag.Arg(0))
	}
	if *fontPath == "" {
		return fmt.Errorf("-font is required")
	}

	ttf, err := os.ReadFile(*fontPath)
	if err != nil {
		return err
	}
	opts := &fontgen.Opts{Size: *size, Width: *width, Height: *height, Charset: *charset}
	glyphs, err := fontgen.Rasterize(ttf, opts)
	if err != nil {
		return err
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return fontgen.Emit(w, *pkg, *name, glyphs, opts)
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "fontgen: %s.\n", err)
		os.Exit(1)
	}
}
