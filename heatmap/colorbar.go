// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A colorBar draws each class of a scale as a filled band spanning
// x in [0, 1] and the class's value range in y. Bands are vector
// polygons, so every output format can draw them.
type colorBar struct {
	s *scale
}

// Plot implements the Plot method of the plot.Plotter interface.
func (b colorBar) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	x0, x1 := trX(0), trX(1)
	for i, col := range b.s.colors {
		lo, hi := b.s.bounds(i)
		if !(lo < hi) {
			continue
		}
		y0, y1 := trY(lo), trY(hi)
		pts := []vg.Point{
			{X: x0, Y: y0},
			{X: x1, Y: y0},
			{X: x1, Y: y1},
			{X: x0, Y: y1},
		}
		c.FillPolygon(col, c.ClipPolygonY(pts))
	}
}

// DataRange implements the DataRange method of the plot.DataRanger
// interface.
func (b colorBar) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, 1, b.s.min, b.s.max
}
