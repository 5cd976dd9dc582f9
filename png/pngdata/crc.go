// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pngdata

import (
	"fmt"
	"hash/crc32"
)

// crcTable is the CRC-32/ISO-HDLC table (reflected polynomial 0xEDB88320).
// It's shared read-only by every chunk.
var crcTable = crc32.MakeTable(crc32.IEEE)

// Checksum computes the chunk CRC, which covers the type bytes followed by the
// payload. The length field is not covered.
func Checksum(t TypeCode, payload []byte) uint32 {
	crc := crc32.Update(0, crcTable, t[:])
	return crc32.Update(crc, crcTable, payload)
}

// ErrMismatchedCRC is returned when a decoded chunk's stored CRC doesn't match
// its contents. It wraps ErrCRC.
type ErrMismatchedCRC struct {
	Type    TypeCode
	Nominal uint32
	Actual  uint32
}

func (e *ErrMismatchedCRC) Error() string {
	return fmt.Sprintf("mismatched crc (%s): stored %08x, computed %08x", e.Type,
		e.Nominal, e.Actual)
}

// Unwrap allows errors.Is(err, ErrCRC).
func (e *ErrMismatchedCRC) Unwrap() error {
	return ErrCRC
}
