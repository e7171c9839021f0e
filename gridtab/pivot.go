// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gridtab reshapes grid-search results into two-dimensional
// tables.
//
// Each table is indexed by NUM_TREES along its rows and MAX_SIZE
// along its columns, and holds one measured value per cell. The
// Speedup and Recall tables built from the same results share the same
// row and column labels, so they can be displayed side by side.
package gridtab

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-gg/table"

	"gridheat/gridfmt"
)

// A Field selects the measurement a Table holds.
type Field int

const (
	Speedup Field = iota
	Recall
)

func (f Field) String() string {
	switch f {
	case Speedup:
		return "Speedup"
	case Recall:
		return "Recall"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

func (f Field) value(r *gridfmt.Record) (float64, bool) {
	switch f {
	case Speedup:
		return r.Speedup, true
	case Recall:
		return r.Recall, true
	}
	return 0, false
}

// Column names of the intermediate relation.
const (
	colID       = "id"
	colNumTrees = "NUM_TREES"
	colMaxSize  = "MAX_SIZE"
	colValue    = "value"
)

// A DuplicateKeyError reports two or more records with the same
// NUM_TREES and MAX_SIZE. Such results have no single value for
// their cell.
type DuplicateKeyError struct {
	NumTrees, MaxSize int
	IDs               []string // IDs of the conflicting records
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate results for NUM_TREES=%d MAX_SIZE=%d: records %s", e.NumTrees, e.MaxSize, strings.Join(e.IDs, ", "))
}

// BuildPivot returns a Table of field for each (NUM_TREES, MAX_SIZE)
// pair in set. Rows and columns are sorted in ascending order. Pairs
// that do not appear in set are undefined in the Table.
//
// If more than one record in set has the same pair, BuildPivot returns
// a *DuplicateKeyError for the lowest such pair, ordered by NUM_TREES
// and then MAX_SIZE.
func BuildPivot(set gridfmt.Set, field Field) (*Table, error) {
	ids := make([]string, len(set))
	trees := make([]int, len(set))
	sizes := make([]int, len(set))
	vals := make([]float64, len(set))
	for i := range set {
		v, ok := field.value(&set[i])
		if !ok {
			return nil, fmt.Errorf("unknown field %v", field)
		}
		ids[i], trees[i], sizes[i], vals[i] = set[i].ID, set[i].NumTrees, set[i].MaxSize, v
	}
	if len(set) == 0 {
		return newTable(field.String(), nil, nil), nil
	}

	var b table.Builder
	b.Add(colID, ids).Add(colNumTrees, trees).Add(colMaxSize, sizes).Add(colValue, vals)
	rel := b.Done()

	t := newTable(field.String(), distinct(rel, colNumTrees), distinct(rel, colMaxSize))
	rowIdx, colIdx := index(t.Rows), index(t.Cols)

	// Group order follows record order, so keep the lowest
	// conflicting pair rather than the first one found.
	var dup *DuplicateKeyError
	cells := table.GroupBy(rel, colNumTrees, colMaxSize)
	for _, gid := range cells.Tables() {
		cell := cells.Table(gid)
		nt, ms := gid.Parent().Label().(int), gid.Label().(int)
		if cell.Len() > 1 {
			if dup == nil || nt < dup.NumTrees || nt == dup.NumTrees && ms < dup.MaxSize {
				ids := append([]string(nil), cell.MustColumn(colID).([]string)...)
				dup = &DuplicateKeyError{NumTrees: nt, MaxSize: ms, IDs: ids}
			}
			continue
		}
		t.cells[rowIdx[nt]][colIdx[ms]] = cell.MustColumn(colValue).([]float64)[0]
	}
	if dup != nil {
		return nil, dup
	}
	return t, nil
}

// Build returns the Speedup and Recall tables of set. Both tables have
// the same rows and columns.
func Build(set gridfmt.Set) (speedup, recall *Table, err error) {
	speedup, err = BuildPivot(set, Speedup)
	if err != nil {
		return nil, nil, err
	}
	recall, err = BuildPivot(set, Recall)
	if err != nil {
		return nil, nil, err
	}
	return speedup, recall, nil
}

// distinct returns the distinct values of the int column col of g in
// ascending order.
func distinct(g table.Grouping, col string) []int {
	groups := table.GroupBy(table.SortBy(g, col), col)
	keys := make([]int, 0, len(groups.Tables()))
	for _, gid := range groups.Tables() {
		keys = append(keys, gid.Label().(int))
	}
	return keys
}

func index(keys []int) map[int]int {
	m := make(map[int]int, len(keys))
	for i, k := range keys {
		m[k] = i
	}
	return m
}

// undefined marks an empty cell.
var undefined = math.NaN()
