// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color helpers for timeline surfaces,
// including the flat key colors used to identify pickable regions.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

var (
	// White is opaque white, which is reserved on picking surfaces as "no region".
	White = color.RGBA{0xff, 0xff, 0xff, 0xff}

	// Black is opaque black.
	Black = color.RGBA{0, 0, 0, 0xff}

	// Transparent is fully transparent black.
	Transparent = color.RGBA{}
)

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromName returns the color value specified
// by the given CSS standard color name.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("colors.FromName: name not found: %v", name)
	}
	return c, nil
}

// WithAlpha returns the given color with the given alpha value (0-1),
// premultiplying the color channels.
func WithAlpha(c color.Color, alpha float32) color.RGBA {
	r := AsRGBA(c)
	a := min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float32(r.R) * a),
		G: uint8(float32(r.G) * a),
		B: uint8(float32(r.B) * a),
		A: uint8(float32(r.A) * a),
	}
}

// Palette is the default sequence of fill colors for band items.
var Palette = []color.RGBA{
	colornames.Steelblue,
	colornames.Darkorange,
	colornames.Seagreen,
	colornames.Indianred,
	colornames.Mediumpurple,
	colornames.Goldenrod,
	colornames.Teal,
	colornames.Palevioletred,
}

// Spaced returns the palette color for the given index, wrapping around.
func Spaced(idx int) color.RGBA {
	if idx < 0 {
		idx = -idx
	}
	return Palette[idx%len(Palette)]
}
