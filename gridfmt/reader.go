// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/tailscale/hujson"
)

// A ParseError reports a results document that is not well-formed: it
// is not JSON, its top-level value is not an object, or one of its
// records is missing a field or has a field of the wrong type.
type ParseError struct {
	FileName string
	ID       string // Record ID, or "" if the error is not specific to a record
	Err      error
}

func (e *ParseError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %v", e.FileName, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.FileName, e.ID, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// rawRecord is the wire form of a Record. Fields are pointers so that
// missing fields can be told apart from zero values.
type rawRecord struct {
	NumTrees *int     `json:"NUM_TREES"`
	MaxSize  *int     `json:"MAX_SIZE"`
	Speedup  *string  `json:"Speedup"`
	Recall   *float64 `json:"Recall"`
}

func (r *rawRecord) missing() string {
	switch {
	case r.NumTrees == nil:
		return "NUM_TREES"
	case r.MaxSize == nil:
		return "MAX_SIZE"
	case r.Speedup == nil:
		return "Speedup"
	case r.Recall == nil:
		return "Recall"
	}
	return ""
}

// Parse reads a results document from r. fileName is used in error
// messages; it is purely diagnostic.
//
// Comments and trailing commas are accepted, so results files may be
// annotated by hand.
//
// Parse returns a *ParseError if the document is malformed and a
// *FormatError if a Speedup value is malformed. Errors reading r are
// returned as a *MissingFileError.
func Parse(r io.Reader, fileName string) (Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &MissingFileError{Path: fileName, Err: err}
	}
	data, err = hujson.Standardize(data)
	if err != nil {
		return nil, &ParseError{FileName: fileName, Err: err}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			err = fmt.Errorf("top-level value is %s, want object", typeErr.Value)
		}
		return nil, &ParseError{FileName: fileName, Err: err}
	}
	if raw == nil {
		// The document was "null".
		return nil, &ParseError{FileName: fileName, Err: errors.New("top-level value is null, want object")}
	}

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	set := make(Set, 0, len(raw))
	for _, id := range ids {
		var rr rawRecord
		if err := json.Unmarshal(raw[id], &rr); err != nil {
			return nil, &ParseError{FileName: fileName, ID: id, Err: err}
		}
		if f := rr.missing(); f != "" {
			return nil, &ParseError{FileName: fileName, ID: id, Err: fmt.Errorf("missing field %s", f)}
		}
		speedup, err := NormalizeSpeedup(*rr.Speedup)
		if err != nil {
			err.(*FormatError).ID = id
			return nil, err
		}
		set = append(set, Record{
			ID:       id,
			NumTrees: *rr.NumTrees,
			MaxSize:  *rr.MaxSize,
			Speedup:  speedup,
			Recall:   *rr.Recall,
		})
	}
	return set, nil
}
