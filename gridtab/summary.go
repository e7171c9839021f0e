// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridtab

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-moremath/stats"
)

// A Summary describes the defined cells of a Table.
type Summary struct {
	N        int
	Min, Max float64
	Mean     float64
	GeoMean  float64 // NaN unless every value is positive
}

// Summary returns summary statistics of the defined cells of t. All
// statistics are NaN if t has no defined cells.
func (t *Table) Summary() Summary {
	vs := t.Values()
	if len(vs) == 0 {
		nan := math.NaN()
		return Summary{Min: nan, Max: nan, Mean: nan, GeoMean: nan}
	}
	s := Summary{N: len(vs), Mean: stats.Mean(vs), GeoMean: math.NaN()}
	s.Min, s.Max = stats.Bounds(vs)
	if s.Min > 0 {
		s.GeoMean = stats.GeoMean(vs)
	}
	return s
}

func (s Summary) String() string {
	if s.N == 0 {
		return "n=0"
	}
	var buf strings.Builder
	fmt.Fprintf(&buf, "n=%d min=%s max=%s mean=%s", s.N, FormatCell(s.Min), FormatCell(s.Max), FormatCell(s.Mean))
	if !math.IsNaN(s.GeoMean) {
		fmt.Fprintf(&buf, " geomean=%s", FormatCell(s.GeoMean))
	}
	return buf.String()
}
