// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pngdata

import (
	"go.chromium.org/luci/common/errors"
)

// TypeCodeSize is the number of bytes in a chunk type.
const TypeCodeSize = 4

// propertyBit is bit 5 of a type byte, the ASCII lowercase bit.
const propertyBit = 1 << 5

// TypeCode is the four byte chunk type, e.g. "IHDR". Each byte is an ASCII
// letter, and the case of each letter encodes one property of the chunk.
//
// The zero TypeCode is not valid; obtain one with TypeCodeFromBytes or
// ParseTypeCode.
type TypeCode [TypeCodeSize]byte

func isLetter(b byte) bool {
	return ('A' <= b && b <= 'Z') || ('a' <= b && b <= 'z')
}

// TypeCodeFromBytes validates that every byte of b is an ASCII letter.
func TypeCodeFromBytes(b [TypeCodeSize]byte) (TypeCode, error) {
	for i, c := range b {
		if !isLetter(c) {
			return TypeCode{}, errors.Annotate(ErrType, "type byte %d is %#02x, not a letter", i, c).Err()
		}
	}
	return TypeCode(b), nil
}

// ParseTypeCode parses a four letter chunk type such as "tEXt".
func ParseTypeCode(s string) (TypeCode, error) {
	if len(s) != TypeCodeSize {
		return TypeCode{}, errors.Annotate(ErrType, "type %q is %d bytes, want %d", s, len(s), TypeCodeSize).Err()
	}
	var b [TypeCodeSize]byte
	copy(b[:], s)
	return TypeCodeFromBytes(b)
}

// MustParseTypeCode is like ParseTypeCode, but panics on error.
func MustParseTypeCode(s string) TypeCode {
	t, err := ParseTypeCode(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Bytes returns the raw type bytes.
func (t TypeCode) Bytes() [TypeCodeSize]byte {
	return t
}

// IsCritical is true if the first letter is uppercase. Decoders which don't
// recognize a critical chunk must not process the file.
func (t TypeCode) IsCritical() bool {
	return t[0]&propertyBit == 0
}

// IsPublic is true if the second letter is uppercase.
func (t TypeCode) IsPublic() bool {
	return t[1]&propertyBit == 0
}

// IsReservedBitValid is true if the third letter is uppercase, which is the
// only value the current format allows.
func (t TypeCode) IsReservedBitValid() bool {
	return t[2]&propertyBit == 0
}

// IsSafeToCopy is true if the fourth letter is lowercase.
func (t TypeCode) IsSafeToCopy() bool {
	return t[3]&propertyBit != 0
}

// IsValid is true if every byte is a letter and the reserved bit is valid.
func (t TypeCode) IsValid() bool {
	for _, c := range t {
		if !isLetter(c) {
			return false
		}
	}
	return 'A' <= t[2] && t[2] <= 'Z'
}

func (t TypeCode) String() string {
	return string(t[:])
}
