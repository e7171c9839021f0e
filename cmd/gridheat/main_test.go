// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gridheat/gridfmt"
	"gridheat/gridtab"
)

func TestText(t *testing.T) {
	golden(t, "text", "-o", "", "-text", "testdata/grid.json")
}

func TestCSV(t *testing.T) {
	golden(t, "csv", "-o", "", "-csv", "testdata/grid.json")
}

func golden(t *testing.T, name string, args ...string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	t.Logf("gridheat %s", strings.Join(args, " "))
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want, err := os.ReadFile(filepath.Join("testdata", name+".stdout"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(want), stdout.String()); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr:\n%s", stderr.String())
	}
}

func TestImage(t *testing.T) {
	for _, ext := range []string{"png", "svg", "pdf"} {
		out := filepath.Join(t.TempDir(), "heatmap."+ext)
		var stdout, stderr bytes.Buffer
		args := []string{"-o", out, "-width", "8", "-height", "3", "testdata/grid.json"}
		if err := run(args, &stdout, &stderr); err != nil {
			t.Errorf("%s: %s", ext, err)
			continue
		}
		fi, err := os.Stat(out)
		if err != nil {
			t.Errorf("%s: %s", ext, err)
			continue
		}
		if fi.Size() == 0 {
			t.Errorf("%s: empty image", out)
		}
		if stdout.Len() != 0 {
			t.Errorf("%s: unexpected stdout:\n%s", ext, stdout.String())
		}
		if want := "gridheat: wrote " + out + "\n"; stderr.String() != want {
			t.Errorf("%s: want stderr %q, got %q", ext, want, stderr.String())
		}
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	err := run([]string{"-o", "", filepath.Join(dir, "data.json")}, &stdout, &stderr)
	var missing *gridfmt.MissingFileError
	if !errors.As(err, &missing) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing input: want *MissingFileError, got %v", err)
	}

	err = run([]string{"-o", "", "testdata/dup.json"}, &stdout, &stderr)
	var dup *gridtab.DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Errorf("duplicate input: want *DuplicateKeyError, got %v", err)
	} else if want := []string{"run-1", "run-2"}; !cmp.Equal(want, dup.IDs) {
		t.Errorf("duplicate input: want IDs %v, got %v", want, dup.IDs)
	}

	err = run([]string{"-o", "", "testdata/badspeedup.json"}, &stdout, &stderr)
	var format *gridfmt.FormatError
	if !errors.As(err, &format) || format.ID != "run-1" || format.Value != "fast" {
		t.Errorf("bad speedup: want *FormatError for run-1, got %v", err)
	}

	// An unsupported image format is reported before anything is
	// written.
	out := filepath.Join(dir, "heatmap.gif")
	if err := run([]string{"-o", out, "testdata/grid.json"}, &stdout, &stderr); err == nil {
		t.Errorf("gif output: want error, got success")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("%s: created for unsupported format", out)
	}

	if stdout.Len() != 0 {
		t.Errorf("unexpected stdout:\n%s", stdout.String())
	}
}

func TestUsage(t *testing.T) {
	check := func(args ...string) {
		t.Helper()
		var stdout, stderr bytes.Buffer
		err := run(args, &stdout, &stderr)
		if !errors.Is(err, errUsage) {
			t.Errorf("%v: want usage error, got %v", args, err)
		}
		if !strings.Contains(stderr.String(), "usage: gridheat") {
			t.Errorf("%v: usage not printed; stderr:\n%s", args, stderr.String())
		}
	}
	check("-bogus")
	check("a.json", "b.json")
	check("-width", "0", "testdata/grid.json")
	check("-height", "-1", "testdata/grid.json")
	check("-text", "-csv", "testdata/grid.json")
	check("-open", "-o", "", "testdata/grid.json")
}

func TestMainExit(t *testing.T) {
	defer func(args []string, e func(int)) {
		os.Args, exit = args, e
	}(os.Args, exit)

	check := func(want int, args ...string) {
		t.Helper()
		code := 0
		exit = func(c int) { code = c }
		os.Args = append([]string{"gridheat"}, args...)
		main()
		if code != want {
			t.Errorf("%v: want exit status %d, got %d", args, want, code)
		}
	}
	check(0, "-o", "", "testdata/grid.json")
	check(1, "-o", "", "testdata/dup.json")
	check(2, "-width", "0")
}
