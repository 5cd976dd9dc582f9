// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pngdata

import (
	"testing"

	"go.chromium.org/luci/common/errors"

	. "github.com/smartystreets/goconvey/convey"
	. "go.chromium.org/luci/common/testing/assertions"
)

func TestTypeCode(t *testing.T) {
	t.Parallel()

	Convey("TypeCode", t, func() {
		Convey("from bytes", func() {
			tc, err := TypeCodeFromBytes([4]byte{82, 117, 83, 116})
			So(err, ShouldBeNil)
			So(tc.Bytes(), ShouldEqual, [4]byte{82, 117, 83, 116})
			So(tc.String(), ShouldEqual, "RuSt")
		})

		Convey("from string", func() {
			tc, err := ParseTypeCode("RuSt")
			So(err, ShouldBeNil)
			fromBytes, err := TypeCodeFromBytes([4]byte{82, 117, 83, 116})
			So(err, ShouldBeNil)
			So(tc, ShouldEqual, fromBytes)
		})

		Convey("accepts exactly the letters", func() {
			for b := 0; b < 256; b++ {
				_, err := TypeCodeFromBytes([4]byte{'R', 'u', byte(b), 't'})
				letter := (b >= 65 && b <= 90) || (b >= 97 && b <= 122)
				So(err == nil, ShouldEqual, letter)
				if !letter {
					So(errors.Is(err, ErrType), ShouldBeTrue)
				}
			}
		})

		Convey("rejects", func() {
			Convey("digits", func() {
				_, err := ParseTypeCode("Ru1t")
				So(err, ShouldErrLike, "type byte 2 is 0x31, not a letter")
				So(errors.Is(err, ErrType), ShouldBeTrue)
			})

			Convey("wrong length", func() {
				_, err := ParseTypeCode("RuStY")
				So(err, ShouldErrLike, `type "RuStY" is 5 bytes, want 4`)
				So(errors.Is(err, ErrType), ShouldBeTrue)

				_, err = ParseTypeCode("")
				So(errors.Is(err, ErrType), ShouldBeTrue)
			})

			Convey("multibyte text", func() {
				_, err := ParseTypeCode("Rü")
				So(errors.Is(err, ErrType), ShouldBeTrue)
			})

			Convey("must", func() {
				So(func() { MustParseTypeCode("R$St") }, ShouldPanic)
			})
		})

		Convey("properties", func() {
			tc := MustParseTypeCode("RuSt")
			So(tc.IsCritical(), ShouldBeTrue)
			So(tc.IsPublic(), ShouldBeFalse)
			So(tc.IsReservedBitValid(), ShouldBeTrue)
			So(tc.IsSafeToCopy(), ShouldBeTrue)
			So(tc.IsValid(), ShouldBeTrue)

			So(MustParseTypeCode("ruSt").IsCritical(), ShouldBeFalse)
			So(MustParseTypeCode("RUSt").IsPublic(), ShouldBeTrue)
			So(MustParseTypeCode("Rust").IsReservedBitValid(), ShouldBeFalse)
			So(MustParseTypeCode("Rust").IsValid(), ShouldBeFalse)
			So(MustParseTypeCode("RuST").IsSafeToCopy(), ShouldBeFalse)
		})

		Convey("reserved bit agrees with uppercase range", func() {
			for _, c := range []byte("ABCXYZabcxyz") {
				tc := TypeCode{'R', 'u', c, 't'}
				So(tc.IsReservedBitValid(), ShouldEqual, c >= 'A' && c <= 'Z')
				So(tc.IsValid(), ShouldEqual, tc.IsReservedBitValid())
			}
		})

		Convey("zero value is not valid", func() {
			So(TypeCode{}.IsValid(), ShouldBeFalse)
		})
	})
}
