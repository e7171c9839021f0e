// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridtab

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"gridheat/gridfmt"
)

var sparseSet = gridfmt.Set{
	{ID: "a", NumTrees: 10, MaxSize: 100, Speedup: 2.5, Recall: 0.95},
	{ID: "b", NumTrees: 20, MaxSize: 200, Speedup: 3, Recall: 0},
}

func mustBuild(t *testing.T, set gridfmt.Set, field Field) *Table {
	t.Helper()
	tab, err := BuildPivot(set, field)
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func TestFormat(t *testing.T) {
	check := func(tab *Table, want string) {
		t.Helper()
		var buf strings.Builder
		if err := tab.Format(&buf); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != want {
			t.Errorf("want:\n%sgot:\n%s", want, got)
		}
	}

	check(mustBuild(t, exampleSet, Speedup), ""+
		"Speedup\n"+
		"NUM_TREES\\MAX_SIZE  100  200\n"+
		"------------------ ---- ----\n"+
		"10"+strings.Repeat(" ", 17)+"2.50 3.00\n")

	check(mustBuild(t, sparseSet, Recall), ""+
		"Recall\n"+
		"NUM_TREES\\MAX_SIZE  100  200\n"+
		"------------------ ---- ----\n"+
		"10"+strings.Repeat(" ", 17)+"0.95    -\n"+
		"20"+strings.Repeat(" ", 17)+"   - 0.00\n")

	check(mustBuild(t, nil, Speedup), ""+
		"Speedup\n"+
		"NUM_TREES\\MAX_SIZE\n"+
		"------------------\n")
}

func TestWriteCSV(t *testing.T) {
	var buf strings.Builder
	if err := mustBuild(t, sparseSet, Speedup).WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	want := "" +
		"NUM_TREES\\MAX_SIZE,100,200\n" +
		"10,2.5,\n" +
		"20,,3\n"
	if got := buf.String(); got != want {
		t.Errorf("want:\n%sgot:\n%s", want, got)
	}
}

func TestSummary(t *testing.T) {
	s := mustBuild(t, exampleSet, Speedup).Summary()
	if s.N != 2 || s.Min != 2.5 || s.Max != 3 || s.Mean != 2.75 {
		t.Errorf("unexpected summary %+v", s)
	}
	if want := math.Sqrt(2.5 * 3); math.Abs(s.GeoMean-want) > 1e-9 {
		t.Errorf("want geomean %v, got %v", want, s.GeoMean)
	}
	if got, want := s.String(), "n=2 min=2.50 max=3.00 mean=2.75 geomean=2.74"; got != want {
		t.Errorf("want %s, got %s", want, got)
	}

	// A zero value has no geometric mean.
	s = mustBuild(t, sparseSet, Recall).Summary()
	if !math.IsNaN(s.GeoMean) {
		t.Errorf("want NaN geomean, got %v", s.GeoMean)
	}
	if got := s.String(); strings.Contains(got, "geomean") {
		t.Errorf("summary %q reports a geomean", got)
	}

	s = mustBuild(t, nil, Recall).Summary()
	nan := math.NaN()
	if diff := cmp.Diff(Summary{Min: nan, Max: nan, Mean: nan, GeoMean: nan}, s, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("summary of empty table (-want +got):\n%s", diff)
	}
	if got := s.String(); got != "n=0" {
		t.Errorf("want n=0, got %s", got)
	}
}

func TestValues(t *testing.T) {
	got := mustBuild(t, sparseSet, Speedup).Values()
	if len(got) != 2 || got[0] != 2.5 || got[1] != 3 {
		t.Errorf("want [2.5 3], got %v", got)
	}
}
