// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridtab

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"gridheat/gridtab/internal/texttab"
)

// A Table is a two-dimensional table of one measurement, with a row
// for each NUM_TREES value and a column for each MAX_SIZE value.
type Table struct {
	// Value names the measurement in the cells.
	Value string

	// Rows and Cols are the distinct NUM_TREES and MAX_SIZE
	// values, in ascending order.
	Rows, Cols []int

	cells [][]float64 // [row][col], undefined if missing
}

func newTable(value string, rows, cols []int) *Table {
	t := &Table{Value: value, Rows: rows, Cols: cols}
	t.cells = make([][]float64, len(rows))
	for i := range t.cells {
		t.cells[i] = make([]float64, len(cols))
		for j := range t.cells[i] {
			t.cells[i][j] = undefined
		}
	}
	return t
}

// Dims returns the number of rows and columns in t.
func (t *Table) Dims() (rows, cols int) {
	return len(t.Rows), len(t.Cols)
}

// At returns the value of the cell at row index r and column index c.
// ok is false if no result was recorded for that cell.
func (t *Table) At(r, c int) (v float64, ok bool) {
	v = t.cells[r][c]
	return v, !math.IsNaN(v)
}

// Len returns the number of defined cells in t.
func (t *Table) Len() int {
	n := 0
	for _, row := range t.cells {
		for _, v := range row {
			if !math.IsNaN(v) {
				n++
			}
		}
	}
	return n
}

// Values returns the defined cells of t in row-major order.
func (t *Table) Values() []float64 {
	vs := make([]float64, 0, len(t.Rows)*len(t.Cols))
	for _, row := range t.cells {
		for _, v := range row {
			if !math.IsNaN(v) {
				vs = append(vs, v)
			}
		}
	}
	return vs
}

// Label is the caption of the row-label column in text and CSV output.
const Label = colNumTrees + `\` + colMaxSize

// FormatCell formats a cell value the way tables and heatmaps display
// it.
func FormatCell(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Format writes t to w as an aligned text table, preceded by a line
// naming the measurement. Missing cells are shown as "-".
func (t *Table) Format(w io.Writer) error {
	var tab texttab.Table
	tab.Row().Cell(t.Value)
	tab.Row().Cell(Label)
	for _, c := range t.Cols {
		tab.Cell(strconv.Itoa(c), texttab.Right)
	}
	tab.Rule()
	for i, r := range t.Rows {
		tab.Row().Cell(strconv.Itoa(r))
		for j := range t.Cols {
			s := "-"
			if v, ok := t.At(i, j); ok {
				s = FormatCell(v)
			}
			tab.Cell(s, texttab.Right)
		}
	}
	return tab.Format(w)
}

// WriteCSV writes t to w in CSV form. The first record holds the
// MAX_SIZE labels; each following record starts with a NUM_TREES
// label. Missing cells are empty.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	rec := make([]string, 1+len(t.Cols))
	rec[0] = Label
	for j, c := range t.Cols {
		rec[1+j] = strconv.Itoa(c)
	}
	if err := cw.Write(rec); err != nil {
		return err
	}
	for i, r := range t.Rows {
		rec[0] = strconv.Itoa(r)
		for j := range t.Cols {
			rec[1+j] = ""
			if v, ok := t.At(i, j); ok {
				rec[1+j] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing %s table: %w", t.Value, err)
	}
	return nil
}
