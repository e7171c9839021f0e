// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridfmt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
)

// A MissingFileError reports a results document that does not exist
// or cannot be read.
type MissingFileError struct {
	Path string
	Err  error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *MissingFileError) Unwrap() error {
	return e.Err
}

// gcsScheme prefixes paths naming a Google Cloud Storage object.
const gcsScheme = "gs://"

// splitGCSPath splits "gs://bucket/object" into its bucket and object
// names. ok is false if path is not a GCS path.
func splitGCSPath(path string) (bucket, object string, ok bool, err error) {
	rest, ok := strings.CutPrefix(path, gcsScheme)
	if !ok {
		return "", "", false, nil
	}
	bucket, object, _ = strings.Cut(rest, "/")
	if bucket == "" || object == "" {
		return "", "", true, fmt.Errorf("malformed GCS path %q: want gs://bucket/object", path)
	}
	return bucket, object, true, nil
}

// Open opens the results document at path for reading.
//
// If path is "-", Open returns standard input. If path has the form
// gs://bucket/object, Open reads the object from Google Cloud Storage
// using application default credentials. Otherwise path names a local
// file.
//
// If the document does not exist or cannot be opened, Open returns a
// *MissingFileError.
func Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	bucket, object, isGCS, err := splitGCSPath(path)
	if err != nil {
		return nil, &MissingFileError{Path: path, Err: err}
	}
	if isGCS {
		return openGCS(ctx, path, bucket, object)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &MissingFileError{Path: path, Err: err}
	}
	return f, nil
}

// gcsReader closes the storage client along with the object reader.
type gcsReader struct {
	*storage.Reader
	client *storage.Client
}

func (r *gcsReader) Close() error {
	err := r.Reader.Close()
	if cerr := r.client.Close(); err == nil {
		err = cerr
	}
	return err
}

func openGCS(ctx context.Context, path, bucket, object string) (io.ReadCloser, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, &MissingFileError{Path: path, Err: err}
	}
	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		client.Close()
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			err = fmt.Errorf("%w (%v)", os.ErrNotExist, err)
		}
		return nil, &MissingFileError{Path: path, Err: err}
	}
	return &gcsReader{Reader: r, client: client}, nil
}

// ReadFile opens and parses the results document at path. See Open for
// the forms path may take.
func ReadFile(ctx context.Context, path string) (Set, error) {
	r, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	name := path
	if path == "-" {
		name = "<stdin>"
	}
	return Parse(r, name)
}
