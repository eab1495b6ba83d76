// Copyright 2024 German Bionic Systems. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306angle drives a 128x64 monochrome OLED on an SSD1306-class
// controller over 4-wire SPI, specialized for one job: showing a signed angle
// in degrees with one decimal place, rendered from a preloaded bitmap font.
//
// Unlike a general framebuffer driver, the package is built for cooperative
// loops on a shared bus. Command traffic is short and bounded; the 132-byte
// glyph payload goes out on a non-blocking transfer that the application
// polls via Update, with a 10 ms watchdog fed by Tick. See Dev for the
// calling convention.
//
// The panel reset line, chip select and data/command select are driven as
// GPIOs by the driver.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306angle
