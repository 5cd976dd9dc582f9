// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package png

import (
	"context"
	"os"
	"path/filepath"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"
)

// defaultMode is used when WriteFile creates a new file.
const defaultMode os.FileMode = 0644

// ReadFile loads the whole file at path and decodes it.
func ReadFile(ctx context.Context, path string, options ...OpenOption) (*Container, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, errors.Annotate(err, "statting %q", path).Err()
	}
	if st.IsDir() {
		return nil, errors.Reason("%q is a directory", path).Err()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotate(err, "reading %q", path).Err()
	}
	logging.Debugf(ctx, "read %d bytes from %q", len(data), path)

	ret, err := Decode(data, options...)
	if err != nil {
		return nil, errors.Annotate(err, "decoding %q", path).Err()
	}
	logging.Debugf(ctx, "decoded %d chunks from %q", ret.Len(), path)
	return ret, nil
}

// WriteFile encodes the container to path.
//
// The data is written to a temporary file next to path which is then renamed
// over it, so a failed write leaves any existing file intact. The permissions
// of an existing file are kept.
func (c *Container) WriteFile(ctx context.Context, path string) (err error) {
	mode := defaultMode
	if st, err := os.Stat(path); err == nil {
		if st.IsDir() {
			return errors.Reason("%q is a directory", path).Err()
		}
		mode = st.Mode().Perm()
	} else if !os.IsNotExist(err) {
		return errors.Annotate(err, "statting %q", path).Err()
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Annotate(err, "creating temp file for %q", path).Err()
	}
	tmpName := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			if rmErr := os.Remove(tmpName); rmErr != nil && !os.IsNotExist(rmErr) {
				logging.Warningf(ctx, "failed to remove %q: %s", tmpName, rmErr)
			}
		}
	}()

	n, err := c.WriteTo(f)
	if err != nil {
		return errors.Annotate(err, "writing %q", tmpName).Err()
	}
	if err = f.Chmod(mode); err != nil {
		return errors.Annotate(err, "setting mode of %q", tmpName).Err()
	}
	if err = f.Close(); err != nil {
		return errors.Annotate(err, "closing %q", tmpName).Err()
	}
	if err = os.Rename(tmpName, path); err != nil {
		return errors.Annotate(err, "renaming %q to %q", tmpName, path).Err()
	}
	logging.Debugf(ctx, "wrote %d bytes (%d chunks) to %q", n, c.Len(), path)
	return nil
}
