// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pngdata

import (
	"bytes"
	"io"

	"go.chromium.org/luci/common/errors"
)

// Signature is the magic which begins every PNG datastream.
const Signature = "\x89PNG\r\n\x1a\n"

// SignatureSize is the length of Signature.
const SignatureSize = len(Signature)

var signature [SignatureSize]byte

func init() {
	copy(signature[:], Signature)
}

// StandardSignature returns the signature as a fixed-size array.
func StandardSignature() [SignatureSize]byte {
	return signature
}

// HasSignature returns true iff b begins with Signature.
func HasSignature(b []byte) bool {
	return bytes.HasPrefix(b, signature[:])
}

// WriteSignature writes the PNG signature to the writer.
func WriteSignature(w io.Writer) error {
	_, err := w.Write(signature[:])
	return err
}

// ReadSignature reads SignatureSize bytes from r and checks that they're equal
// to Signature.
func ReadSignature(r io.Reader) error {
	var buf [SignatureSize]byte
	if err := readFull(r, buf[:], "signature"); err != nil {
		if errors.Is(err, ErrLength) {
			return errors.Annotate(ErrHeader, "short signature").Err()
		}
		return err
	}
	if buf != signature {
		return errors.Annotate(ErrHeader, "bad signature %q", buf[:]).Err()
	}
	return nil
}
