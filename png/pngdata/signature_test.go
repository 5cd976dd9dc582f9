// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pngdata

import (
	"bytes"
	"testing"

	"go.chromium.org/luci/common/errors"

	. "github.com/smartystreets/goconvey/convey"
	. "go.chromium.org/luci/common/testing/assertions"
)

func TestSignature(t *testing.T) {
	t.Parallel()

	Convey("Signature", t, func() {
		Convey("write", func() {
			buf := &bytes.Buffer{}
			So(WriteSignature(buf), ShouldBeNil)
			So(buf.Bytes(), ShouldResemble, []byte{137, 80, 78, 71, 13, 10, 26, 10})
		})

		Convey("fixed array", func() {
			sig := StandardSignature()
			So(sig[:], ShouldResemble, []byte(Signature))
			So(HasSignature([]byte(Signature+"trailing")), ShouldBeTrue)
			So(HasSignature([]byte("\x89PN")), ShouldBeFalse)
		})

		Convey("read", func() {
			Convey("good", func() {
				buf := bytes.NewReader([]byte(Signature + "rest"))
				So(ReadSignature(buf), ShouldBeNil)
				So(buf.Len(), ShouldEqual, 4)
			})

			Convey("bad", func() {
				Convey("bad prefix", func() {
					buf := bytes.NewReader([]byte("GIF89a\x00\x00"))
					err := ReadSignature(buf)
					So(err, ShouldErrLike, `bad signature "GIF89a\x00\x00"`)
					So(errors.Is(err, ErrHeader), ShouldBeTrue)
				})

				Convey("short read", func() {
					buf := bytes.NewReader([]byte{0x89, 'P'})
					err := ReadSignature(buf)
					So(err, ShouldErrLike, "short signature")
					So(errors.Is(err, ErrHeader), ShouldBeTrue)
				})
			})
		})
	})
}
