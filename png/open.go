// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package png

import (
	"bytes"
	"io"

	"go.chromium.org/luci/common/errors"

	"github.com/Rishabh672003/pngme/png/pngdata"
)

type openOptionData struct {
	maxChunkLength uint32
}

// OpenOption functions can be supplied to Decode, Open and ReadFile.
type OpenOption func(*openOptionData)

// WithMaxChunkLength rejects (with ErrLength) any chunk declaring a payload
// longer than n bytes. The default is pngdata.MaxLength.
func WithMaxChunkLength(n uint32) OpenOption {
	return func(o *openOptionData) {
		o.maxChunkLength = n
	}
}

func getOptions(options []OpenOption) openOptionData {
	opts := openOptionData{
		maxChunkLength: pngdata.MaxLength,
	}
	for _, o := range options {
		o(&opts)
	}
	return opts
}

// Decode parses a complete PNG datastream held in memory.
//
// It checks the signature, then reads chunks until b is used up. Every chunk's
// crc is verified. Errors wrap one of the pngdata error kinds; a datastream
// which ends partway through a chunk is pngdata.ErrLength.
func Decode(b []byte, options ...OpenOption) (*Container, error) {
	opts := getOptions(options)

	r := bytes.NewReader(b)
	if err := pngdata.ReadSignature(r); err != nil {
		return nil, errors.Annotate(err, "checking signature").Err()
	}

	ret := &Container{}
	for {
		offset := len(b) - r.Len()
		ch, err := pngdata.ReadChunk(r, opts.maxChunkLength)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Annotate(err, "chunk %d at offset %d", len(ret.chunks), offset).Err()
		}
		ret.chunks = append(ret.chunks, ch)
	}
	return ret, nil
}

// Open reads all of r and decodes it. Decoding doesn't begin until r is
// exhausted.
func Open(r io.Reader, options ...OpenOption) (*Container, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Annotate(err, "reading datastream").Err()
	}
	return Decode(b, options...)
}
