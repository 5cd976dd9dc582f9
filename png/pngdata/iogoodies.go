// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pngdata

import (
	"io"

	"go.chromium.org/luci/common/errors"
)

// readFull is io.ReadFull, except that running out of input (at any point) is
// reported as ErrLength.
func readFull(r io.Reader, buf []byte, what string) error {
	n, err := io.ReadFull(r, buf)
	switch err {
	case nil:
		return nil
	case io.EOF, io.ErrUnexpectedEOF:
		return errors.Annotate(ErrLength, "truncated %s: %d of %d bytes", what, n, len(buf)).Err()
	}
	return errors.Annotate(err, "reading %s", what).Err()
}

type lener interface {
	Len() int
}

// remaining returns the number of unread bytes in r, if r can report it (e.g.
// *bytes.Reader).
func remaining(r io.Reader) (int, bool) {
	if l, ok := r.(lener); ok {
		return l.Len(), true
	}
	return 0, false
}
