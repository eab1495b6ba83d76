// Copyright 2024 German Bionic Systems. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tiltdisplay is a container for the OLED tilt readout driver and its
// host-side tooling.
//
// The hardware driver lives in ssd1306angle. The ansiscreen and fontgen
// packages support development without a panel attached.
package tiltdisplay
