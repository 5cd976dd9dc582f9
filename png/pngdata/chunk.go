// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pngdata

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"

	"go.chromium.org/luci/common/errors"
)

const (
	lengthSize = 4
	crcSize    = 4

	// FrameSize is the number of bytes a chunk occupies in addition to its
	// payload: length, type and crc.
	FrameSize = lengthSize + TypeCodeSize + crcSize

	// MaxLength is the largest payload length the PNG format allows.
	MaxLength uint32 = 1<<31 - 1
)

// Chunk is a single length-prefixed, typed, checksummed record. Chunks are
// immutable; the crc always matches the type and payload.
type Chunk struct {
	length  uint32
	typ     TypeCode
	payload []byte
	crc     uint32
}

// NewChunk makes a chunk holding a copy of payload, computing its crc.
func NewChunk(t TypeCode, payload []byte) *Chunk {
	p := make([]byte, len(payload))
	copy(p, payload)
	return &Chunk{
		length:  uint32(len(p)),
		typ:     t,
		payload: p,
		crc:     Checksum(t, p),
	}
}

// DecodeChunk parses exactly one encoded chunk. b must be precisely the size
// of the chunk frame plus the declared payload length.
func DecodeChunk(b []byte) (*Chunk, error) {
	if len(b) < FrameSize {
		return nil, errors.Annotate(ErrLength, "chunk is %d bytes, frame alone is %d", len(b), FrameSize).Err()
	}
	length := binary.BigEndian.Uint32(b)
	typ, err := TypeCodeFromBytes([TypeCodeSize]byte(b[lengthSize:]))
	if err != nil {
		return nil, err
	}
	if uint64(len(b)) != uint64(length)+FrameSize {
		return nil, errors.Annotate(ErrLength, "%s declares %d payload bytes, buffer holds %d",
			typ, length, len(b)-FrameSize).Err()
	}
	payloadStart := lengthSize + TypeCodeSize
	payload := make([]byte, length)
	copy(payload, b[payloadStart:])
	return verify(length, typ, payload, binary.BigEndian.Uint32(b[len(b)-crcSize:]))
}

// ReadChunk reads one chunk from r.
//
// If r is exhausted before the first byte of the chunk, ReadChunk returns
// io.EOF unwrapped. A stream that ends anywhere inside the chunk, or a declared
// length over maxLength, is ErrLength.
func ReadChunk(r io.Reader, maxLength uint32) (*Chunk, error) {
	var hdr [lengthSize + TypeCodeSize]byte
	n, err := io.ReadFull(r, hdr[:])
	if err == io.EOF {
		return nil, io.EOF
	}
	if err == io.ErrUnexpectedEOF {
		return nil, errors.Annotate(ErrLength, "truncated chunk header: %d of %d bytes", n, len(hdr)).Err()
	}
	if err != nil {
		return nil, errors.Annotate(err, "reading chunk header").Err()
	}

	length := binary.BigEndian.Uint32(hdr[:])
	typ, err := TypeCodeFromBytes([TypeCodeSize]byte(hdr[lengthSize:]))
	if err != nil {
		return nil, err
	}
	if length > maxLength {
		return nil, errors.Annotate(ErrLength, "%s declares %d payload bytes, limit is %d",
			typ, length, maxLength).Err()
	}
	// Avoid allocating for a length the reader can't possibly satisfy.
	if left, ok := remaining(r); ok && uint64(left) < uint64(length)+crcSize {
		return nil, errors.Annotate(ErrLength, "%s declares %d payload bytes, only %d bytes remain",
			typ, length, left).Err()
	}

	payload := make([]byte, length)
	if err := readFull(r, payload, typ.String()+" payload"); err != nil {
		return nil, err
	}
	var crc [crcSize]byte
	if err := readFull(r, crc[:], typ.String()+" crc"); err != nil {
		return nil, err
	}
	return verify(length, typ, payload, binary.BigEndian.Uint32(crc[:]))
}

// verify takes ownership of payload.
func verify(length uint32, typ TypeCode, payload []byte, crc uint32) (*Chunk, error) {
	if actual := Checksum(typ, payload); actual != crc {
		return nil, &ErrMismatchedCRC{Type: typ, Nominal: crc, Actual: actual}
	}
	return &Chunk{length: length, typ: typ, payload: payload, crc: crc}, nil
}

// Length is the number of payload bytes.
func (c *Chunk) Length() uint32 { return c.length }

// Type is the chunk's type code.
func (c *Chunk) Type() TypeCode { return c.typ }

// CRC is the chunk's checksum over type and payload.
func (c *Chunk) CRC() uint32 { return c.crc }

// Payload returns a copy of the payload bytes.
func (c *Chunk) Payload() []byte {
	ret := make([]byte, len(c.payload))
	copy(ret, c.payload)
	return ret
}

// PayloadString interprets the payload as UTF-8 text.
func (c *Chunk) PayloadString() (string, error) {
	if !utf8.Valid(c.payload) {
		return "", errors.Annotate(ErrData, "%s payload is not UTF-8", c.typ).Err()
	}
	return string(c.payload), nil
}

// Equal compares two chunks by value.
func (c *Chunk) Equal(o *Chunk) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.length == o.length && c.typ == o.typ && c.crc == o.crc &&
		bytes.Equal(c.payload, o.payload)
}

// EncodedSize is the number of bytes Encode produces.
func (c *Chunk) EncodedSize() int {
	return FrameSize + len(c.payload)
}

// Encode returns the wire form: length, type, payload, crc.
func (c *Chunk) Encode() []byte {
	return c.appendTo(make([]byte, 0, c.EncodedSize()))
}

func (c *Chunk) appendTo(buf []byte) []byte {
	buf = binary.BigEndian.AppendUint32(buf, c.length)
	buf = append(buf, c.typ[:]...)
	buf = append(buf, c.payload...)
	return binary.BigEndian.AppendUint32(buf, c.crc)
}

// WriteTo writes the encoded chunk to w.
func (c *Chunk) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.Encode())
	return int64(n), err
}

// maxStringPayload is the longest payload String will print inline.
const maxStringPayload = 64

// String renders "length type payload crc". Payloads which are long or not
// UTF-8 are summarized.
func (c *Chunk) String() string {
	payload := fmt.Sprintf("<%d bytes>", c.length)
	if len(c.payload) <= maxStringPayload && utf8.Valid(c.payload) {
		payload = string(c.payload)
	}
	return fmt.Sprintf("%d %s %s %d", c.length, c.typ, payload, c.crc)
}
