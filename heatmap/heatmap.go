// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heatmap renders grid-search tables as annotated heatmaps.
//
// Each Panel shows one gridtab.Table: MAX_SIZE runs along the x axis,
// NUM_TREES down the y axis with the smallest value at the top, every
// cell is labeled with its value, and a color bar to the right of the
// panel gives the scale. Several panels are laid out side by side in
// one figure.
package heatmap

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"gridheat/gridtab"
)

// Default figure size.
const (
	DefaultWidth  = 20 * vg.Inch
	DefaultHeight = 8 * vg.Inch
)

// dpi is the resolution of raster output.
const dpi = 100

// A Panel is one heatmap in a figure.
type Panel struct {
	Table *gridtab.Table

	Title string
	// Scheme names a sequential ColorBrewer color scheme, such as
	// "YlOrRd". Colors run from light for low values to dark for
	// high values.
	Scheme string
	// Label is the caption of the color bar.
	Label string
}

// SpeedupPanel returns the panel for a speedup table.
func SpeedupPanel(t *gridtab.Table) Panel {
	return Panel{Table: t, Title: "Speedup Heatmap", Scheme: "YlOrRd", Label: "Speedup"}
}

// RecallPanel returns the panel for a recall table.
func RecallPanel(t *gridtab.Table) Panel {
	return Panel{Table: t, Title: "Recall Heatmap", Scheme: "YlGnBu", Label: "Recall"}
}

// grid presents a Table as a plotter.GridXYZ. Grid row 0 is the bottom
// of the plot, so rows are flipped to put the first table row on top.
type grid struct {
	t *gridtab.Table
}

func (g grid) Dims() (c, r int) {
	rows, cols := g.t.Dims()
	return cols, rows
}

func (g grid) Z(c, r int) float64 {
	v, ok := g.t.At(g.row(r), c)
	if !ok {
		return math.NaN()
	}
	return v
}

func (g grid) X(c int) float64 { return float64(c) }
func (g grid) Y(r int) float64 { return float64(r) }

func (g grid) row(r int) int { return len(g.t.Rows) - 1 - r }

func labels(keys []int) []string {
	ls := make([]string, len(keys))
	for i, k := range keys {
		ls[i] = strconv.Itoa(k)
	}
	return ls
}

// plots returns the heatmap plot of p and the plot of its color bar.
// bar is nil if the table has no defined cells.
func (p Panel) plots() (heat, bar *plot.Plot, err error) {
	t := p.Table
	heat = plot.New()
	heat.Title.Text = p.Title
	heat.Title.TextStyle.Font.Size = vg.Points(16)
	heat.X.Label.Text = "MAX_SIZE"
	heat.Y.Label.Text = "NUM_TREES"

	if t.Len() == 0 {
		// Nothing to color. Keep the axes so the panel is
		// still recognizable.
		heat.X.Min, heat.X.Max = 0, 1
		heat.Y.Min, heat.Y.Max = 0, 1
		return heat, nil, nil
	}

	sum := t.Summary()
	sc, err := newScale(p.Scheme, sum.Min, sum.Max)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", p.Title, err)
	}

	g := grid{t}
	hm := plotter.NewHeatMap(g, colors(sc.colors))
	hm.Min, hm.Max = sc.min, sc.max
	heat.Add(hm)

	// Annotate each defined cell with its value.
	var xyl plotter.XYLabels
	var fg []color.Color
	cols, rows := g.Dims()
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			v := g.Z(c, r)
			if math.IsNaN(v) {
				continue
			}
			bg, err := sc.At(v)
			if err != nil {
				return nil, nil, err
			}
			xyl.XYs = append(xyl.XYs, plotter.XY{X: g.X(c), Y: g.Y(r)})
			xyl.Labels = append(xyl.Labels, gridtab.FormatCell(v))
			fg = append(fg, textColor(bg))
		}
	}
	annot, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, nil, err
	}
	for i := range annot.TextStyle {
		annot.TextStyle[i].XAlign = draw.XCenter
		annot.TextStyle[i].YAlign = draw.YCenter
		annot.TextStyle[i].Color = fg[i]
	}
	heat.Add(annot)

	heat.NominalX(labels(t.Cols)...)
	rowLabels := labels(t.Rows)
	for i, j := 0, len(rowLabels)-1; i < j; i, j = i+1, j-1 {
		rowLabels[i], rowLabels[j] = rowLabels[j], rowLabels[i]
	}
	heat.NominalY(rowLabels...)

	bar = plot.New()
	bar.HideX()
	bar.Y.Label.Text = p.Label
	bar.X.Padding = 0
	bar.Y.Padding = 0
	bar.Add(colorBar{sc})
	return heat, bar, nil
}

// Draw draws panels side by side on c.
func Draw(c draw.Canvas, panels ...Panel) error {
	if len(panels) == 0 {
		return nil
	}
	c.SetColor(color.White)
	c.Fill(c.Rectangle.Path())

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(panels),
		PadX:      vg.Inch / 2,
		PadTop:    vg.Inch / 4,
		PadBottom: vg.Inch / 4,
		PadLeft:   vg.Inch / 4,
		PadRight:  vg.Inch / 4,
	}
	for i, p := range panels {
		heat, bar, err := p.plots()
		if err != nil {
			return err
		}
		tile := tiles.At(c, i, 0)
		if bar == nil {
			heat.Draw(tile)
			continue
		}

		// Reserve a strip at the right of the tile for the
		// color bar, and give the bar the height of the
		// heatmap's data area.
		strip := (tile.Max.X - tile.Min.X) / 8
		heatCanvas := draw.Crop(tile, 0, -strip, 0, 0)
		heat.Draw(heatCanvas)

		da := heat.DataCanvas(heatCanvas)
		barCanvas := draw.Canvas{
			Canvas: tile.Canvas,
			Rectangle: vg.Rectangle{
				Min: vg.Point{X: heatCanvas.Max.X + vg.Inch/8, Y: da.Min.Y},
				Max: vg.Point{X: tile.Max.X, Y: da.Max.Y},
			},
		}
		bar.Draw(barCanvas)
	}
	return nil
}

// Formats lists the image formats Render supports.
var Formats = []string{"png", "svg", "pdf"}

func checkFormat(format string) error {
	for _, f := range Formats {
		if strings.EqualFold(f, format) {
			return nil
		}
	}
	return fmt.Errorf("unsupported image format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

func newCanvas(format string, width, height vg.Length) (vg.CanvasWriterTo, error) {
	if err := checkFormat(format); err != nil {
		return nil, err
	}
	switch strings.ToLower(format) {
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))}, nil
	case "svg":
		return vgsvg.New(width, height), nil
	case "pdf":
		return vgpdf.New(width, height), nil
	}
	panic("unreachable")
}

// Render draws panels side by side in a figure of the given size and
// writes it to w in format, which is one of Formats.
func Render(w io.Writer, format string, width, height vg.Length, panels ...Panel) error {
	can, err := newCanvas(format, width, height)
	if err != nil {
		return err
	}
	if err := Draw(draw.New(can), panels...); err != nil {
		return err
	}
	_, err = can.WriteTo(w)
	return err
}

// Save renders panels to the file path. The image format is taken
// from the file extension.
func Save(path string, width, height vg.Length, panels ...Panel) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if err := checkFormat(format); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Render(f, format, width, height, panels...)
}
