// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pngdata

// Kind classifies a decoding failure.
type Kind int

// These are the failure kinds of the chunk codec.
const (
	// ErrHeader means the container signature did not match.
	ErrHeader Kind = iota + 1

	// ErrLength means a declared length disagrees with the bytes available.
	ErrLength

	// ErrType means a chunk type byte is not an ASCII letter.
	ErrType

	// ErrData means a payload requested as text is not valid UTF-8.
	ErrData

	// ErrCRC means a stored chunk CRC does not match the computed one.
	ErrCRC
)

func (k Kind) Error() string {
	switch k {
	case ErrHeader:
		return "invalid header"
	case ErrLength:
		return "invalid length"
	case ErrType:
		return "invalid type"
	case ErrData:
		return "invalid data"
	case ErrCRC:
		return "invalid crc"
	}
	return "unknown error kind"
}
