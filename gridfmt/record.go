// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gridfmt reads the results of a grid search over index
// parameters.
//
// A results document is a JSON object mapping an arbitrary run
// identifier to one record per benchmark run:
//
//	{
//		"run-1": {"NUM_TREES": 10, "MAX_SIZE": 100, "Speedup": "2.5x", "Recall": 0.95},
//		"run-2": {"NUM_TREES": 10, "MAX_SIZE": 200, "Speedup": "3.0x", "Recall": 0.90}
//	}
//
// NUM_TREES and MAX_SIZE are the grid coordinates. Speedup is a
// multiplier written with a trailing "x". Recall is a fraction in
// [0, 1].
package gridfmt

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// A Record is a single benchmark run.
type Record struct {
	// ID is the run identifier the record was keyed by in the
	// input. It is only used to report errors.
	ID string

	NumTrees int
	MaxSize  int
	Speedup  float64
	Recall   float64
}

// A Set is a collection of records ordered by ID.
type Set []Record

// Sort orders s by record ID.
func (s Set) Sort() {
	sort.Slice(s, func(i, j int) bool {
		return s[i].ID < s[j].ID
	})
}

// A FormatError reports a Speedup value that is not a number followed
// by a single "x".
type FormatError struct {
	ID    string // Record ID, if known
	Value string
}

func (e *FormatError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("malformed speedup %q: want <number>x", e.Value)
	}
	return fmt.Sprintf("%s: malformed speedup %q: want <number>x", e.ID, e.Value)
}

var speedupRe = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?x$`)

// NormalizeSpeedup parses a speedup of the form "2.5x" or "3x" and
// returns its numeric value.
func NormalizeSpeedup(s string) (float64, error) {
	if !speedupRe.MatchString(s) {
		return 0, &FormatError{Value: s}
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "x"), 64)
	if err != nil {
		// Only possible for values out of float64 range.
		return 0, &FormatError{Value: s}
	}
	return v, nil
}

// FormatSpeedup is the inverse of NormalizeSpeedup.
func FormatSpeedup(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "x"
}
