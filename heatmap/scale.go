// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
)

// paletteColors is the number of ColorBrewer classes used for each
// scale. Both sequential schemes in use provide nine.
const paletteColors = 9

// colors adapts a color slice to palette.Palette.
type colors []color.Color

func (c colors) Colors() []color.Color { return c }

// A scale maps values in [min, max] onto a discrete palette, using
// the same rounding as plotter.HeatMap so cells and color bar agree.
type scale struct {
	colors   []color.Color
	min, max float64
}

// newScale returns a scale over the named sequential ColorBrewer
// scheme. A degenerate range is widened so that every value still maps
// to a color.
func newScale(scheme string, min, max float64) (*scale, error) {
	p, err := brewer.GetPalette(brewer.TypeSequential, scheme, paletteColors)
	if err != nil {
		return nil, err
	}
	if !(min < max) {
		min, max = min-0.5, max+0.5
	}
	return &scale{colors: p.Colors(), min: min, max: max}, nil
}

func (s *scale) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < s.min:
		return nil, palette.ErrUnderflow
	case v > s.max:
		return nil, palette.ErrOverflow
	}
	return s.colors[s.class(v)], nil
}

func (s *scale) Min() float64 { return s.min }
func (s *scale) Max() float64 { return s.max }

// perClass is the number of classes per unit value.
func (s *scale) perClass() float64 {
	return float64(len(s.colors)-1) / (s.max - s.min)
}

func (s *scale) class(v float64) int {
	return int((v-s.min)*s.perClass() + 0.5)
}

// bounds returns the range of values that map to class i.
func (s *scale) bounds(i int) (lo, hi float64) {
	w := 1 / s.perClass()
	lo = math.Max(s.min, s.min+(float64(i)-0.5)*w)
	hi = math.Min(s.max, s.min+(float64(i)+0.5)*w)
	return lo, hi
}

// textColor returns a color for text drawn over bg: black on light
// colors, white on dark ones.
func textColor(bg color.Color) color.Color {
	r, g, b, _ := bg.RGBA()
	lum := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 0xffff
	if lum > 0.55 {
		return color.Black
	}
	return color.White
}
