// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package png assembles and disassembles PNG datastreams at the chunk level.
//
// A Container is the signature followed by an ordered list of chunks. It
// doesn't interpret any chunk, so IHDR/IEND placement is up to the caller.
package png

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"go.chromium.org/luci/common/data/stringset"
	"go.chromium.org/luci/common/iotools"

	"github.com/Rishabh672003/pngme/png/pngdata"
)

// Container is a decoded PNG datastream. It is not safe for concurrent use.
type Container struct {
	chunks []*pngdata.Chunk
}

// New returns a container holding chunks, in order.
func New(chunks ...*pngdata.Chunk) *Container {
	return &Container{chunks: append([]*pngdata.Chunk(nil), chunks...)}
}

// Len returns the number of chunks.
func (c *Container) Len() int {
	return len(c.chunks)
}

// Chunks returns the chunks in order. The returned slice is a copy.
func (c *Container) Chunks() []*pngdata.Chunk {
	return append([]*pngdata.Chunk(nil), c.chunks...)
}

func (c *Container) index(typ string) int {
	for i, ch := range c.chunks {
		if ch.Type().String() == typ {
			return i
		}
	}
	return -1
}

// ChunkByType returns the first chunk of the given type, or nil.
func (c *Container) ChunkByType(typ string) *pngdata.Chunk {
	if i := c.index(typ); i >= 0 {
		return c.chunks[i]
	}
	return nil
}

// AppendChunk adds ch after every existing chunk, including any IEND.
func (c *Container) AppendChunk(ch *pngdata.Chunk) {
	c.chunks = append(c.chunks, ch)
}

// RemoveFirstChunk removes and returns the first chunk of the given type. If
// there is none, it returns nil and leaves the container unchanged.
func (c *Container) RemoveFirstChunk(typ string) *pngdata.Chunk {
	i := c.index(typ)
	if i < 0 {
		return nil
	}
	ret := c.chunks[i]
	c.chunks = append(c.chunks[:i:i], c.chunks[i+1:]...)
	return ret
}

// Types returns the distinct chunk types in order of first appearance.
func (c *Container) Types() []string {
	seen := stringset.New(len(c.chunks))
	var ret []string
	for _, ch := range c.chunks {
		if t := ch.Type().String(); seen.Add(t) {
			ret = append(ret, t)
		}
	}
	return ret
}

// EncodedSize is the number of bytes Encode produces.
func (c *Container) EncodedSize() int {
	n := pngdata.SignatureSize
	for _, ch := range c.chunks {
		n += ch.EncodedSize()
	}
	return n
}

// Encode returns the signature followed by every encoded chunk.
func (c *Container) Encode() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, c.EncodedSize()))
	// bytes.Buffer never returns a write error.
	_, _ = c.WriteTo(buf)
	return buf.Bytes()
}

// WriteTo writes the encoded container to w.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	cw := &iotools.CountingWriter{Writer: w}
	if err := pngdata.WriteSignature(cw); err != nil {
		return cw.Count, err
	}
	for _, ch := range c.chunks {
		if _, err := ch.WriteTo(cw); err != nil {
			return cw.Count, err
		}
	}
	return cw.Count, nil
}

// String lists one chunk per line.
func (c *Container) String() string {
	b := strings.Builder{}
	for i, ch := range c.chunks {
		fmt.Fprintf(&b, "%d: %s\n", i, ch)
	}
	return b.String()
}
