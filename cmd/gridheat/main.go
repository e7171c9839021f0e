// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gridheat draws heatmaps of grid-search benchmark results.
//
// Usage:
//
//	gridheat [flags] [data.json]
//
// The input is a JSON object mapping run IDs to records of the form
//
//	{"NUM_TREES": 10, "MAX_SIZE": 100, "Speedup": "2.5x", "Recall": 0.95}
//
// Comments and trailing commas are allowed. The input may also be "-"
// for standard input, or a gs://bucket/object path naming a Google
// Cloud Storage object. If no input is given, gridheat reads data.json.
//
// Gridheat pivots the records into a Speedup table and a Recall table,
// both with one row per NUM_TREES value and one column per MAX_SIZE
// value, and draws them side by side as annotated heatmaps. The image
// format is chosen by the extension of the -o file: png, svg, or pdf.
//
// Two records with the same NUM_TREES and MAX_SIZE are an error.
//
// The flags are:
//
//	-o file
//		write the figure to file (default heatmap.png); -o "" skips it
//	-width inches, -height inches
//		figure size (default 20 by 8)
//	-text
//		print both tables and summary statistics to standard output
//	-csv
//		print both tables in CSV form to standard output
//	-open
//		show the figure with the system image viewer
//
// Gridheat exits with status 1 on any error and 2 on a usage error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"runtime"

	"gonum.org/v1/plot/vg"

	"gridheat/gridfmt"
	"gridheat/gridtab"
	"gridheat/heatmap"
)

var exit = os.Exit // replaced during testing

// errUsage reports bad command-line arguments. The flag set has already
// printed the usage message.
var errUsage = errors.New("usage error")

func main() {
	log.SetPrefix("gridheat: ")
	log.SetFlags(0)
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		exit(2)
	default:
		log.Print(err)
		exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gridheat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: gridheat [flags] [data.json]\n")
		fmt.Fprintf(fs.Output(), "flags:\n")
		fs.PrintDefaults()
	}
	var (
		flagOut    = fs.String("o", "heatmap.png", "write the figure to `file`; the extension picks png, svg or pdf")
		flagWidth  = fs.Float64("width", float64(heatmap.DefaultWidth/vg.Inch), "figure width in `inches`")
		flagHeight = fs.Float64("height", float64(heatmap.DefaultHeight/vg.Inch), "figure height in `inches`")
		flagText   = fs.Bool("text", false, "print the tables and their summaries")
		flagCSV    = fs.Bool("csv", false, "print the tables in CSV form")
		flagOpen   = fs.Bool("open", false, "open the figure in the system image viewer")
	)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	usageErr := func(format string, args ...interface{}) error {
		fmt.Fprintf(stderr, "gridheat: "+format+"\n", args...)
		fs.Usage()
		return errUsage
	}
	if fs.NArg() > 1 {
		return usageErr("too many inputs")
	}
	if !(*flagWidth > 0 && *flagHeight > 0) {
		return usageErr("-width and -height must be positive")
	}
	if *flagText && *flagCSV {
		return usageErr("-text and -csv are mutually exclusive")
	}
	if *flagOpen && *flagOut == "" {
		return usageErr("-open requires an output file")
	}
	path := "data.json"
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}

	set, err := gridfmt.ReadFile(context.Background(), path)
	if err != nil {
		return err
	}
	speedup, recall, err := gridtab.Build(set)
	if err != nil {
		return err
	}
	tables := []*gridtab.Table{speedup, recall}

	switch {
	case *flagText:
		if err := writeText(stdout, tables); err != nil {
			return err
		}
	case *flagCSV:
		if err := writeCSV(stdout, tables); err != nil {
			return err
		}
	}

	if *flagOut == "" {
		return nil
	}
	width, height := vg.Length(*flagWidth)*vg.Inch, vg.Length(*flagHeight)*vg.Inch
	if err := heatmap.Save(*flagOut, width, height, heatmap.SpeedupPanel(speedup), heatmap.RecallPanel(recall)); err != nil {
		return err
	}
	logger := log.New(stderr, "gridheat: ", 0)
	logger.Printf("wrote %s", *flagOut)

	if *flagOpen {
		if err := viewer(*flagOut).Start(); err != nil {
			return fmt.Errorf("opening %s: %w", *flagOut, err)
		}
	}
	return nil
}

func writeText(w io.Writer, tables []*gridtab.Table) error {
	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := t.Format(w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "summary: %s\n", t.Summary()); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(w io.Writer, tables []*gridtab.Table) error {
	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if _, err := fmt.Fprintf(w, "%s\n", t.Value); err != nil {
			return err
		}
		if err := t.WriteCSV(w); err != nil {
			return err
		}
	}
	return nil
}

// viewer returns a command that shows path in the platform's default
// viewer.
func viewer(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path)
	}
	return exec.Command("xdg-open", path)
}
