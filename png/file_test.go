// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package png

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"go.chromium.org/luci/common/errors"

	. "github.com/smartystreets/goconvey/convey"
	. "go.chromium.org/luci/common/testing/assertions"

	"github.com/Rishabh672003/pngme/png/pngdata"
)

func TestFile(t *testing.T) {
	t.Parallel()

	Convey("File", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		path := filepath.Join(dir, "image.png")

		Convey("write then read", func() {
			c := New(testChunks()...)
			So(c.WriteFile(ctx, path), ShouldBeNil)

			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(data, ShouldResemble, c.Encode())

			back, err := ReadFile(ctx, path)
			So(err, ShouldBeNil)
			So(back.Encode(), ShouldResemble, c.Encode())

			Convey("no temp files left behind", func() {
				entries, err := os.ReadDir(dir)
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 1)
			})

			Convey("overwrite keeps mode", func() {
				if runtime.GOOS == "windows" {
					return
				}
				So(os.Chmod(path, 0600), ShouldBeNil)
				back.AppendChunk(chunk("RuSt", secretMessage))
				So(back.WriteFile(ctx, path), ShouldBeNil)

				st, err := os.Stat(path)
				So(err, ShouldBeNil)
				So(st.Mode().Perm(), ShouldEqual, os.FileMode(0600))

				again, err := ReadFile(ctx, path)
				So(err, ShouldBeNil)
				So(again.Types(), ShouldResemble, []string{"FrSt", "miDl", "LASt", "RuSt"})
			})
		})

		Convey("read errors", func() {
			Convey("missing", func() {
				_, err := ReadFile(ctx, filepath.Join(dir, "nope.png"))
				So(err, ShouldErrLike, "statting")
				So(errors.Is(err, os.ErrNotExist), ShouldBeTrue)
			})

			Convey("directory", func() {
				_, err := ReadFile(ctx, dir)
				So(err, ShouldErrLike, "is a directory")
			})

			Convey("not a png", func() {
				So(os.WriteFile(path, []byte("GIF89a, honest"), 0644), ShouldBeNil)
				_, err := ReadFile(ctx, path)
				So(err, ShouldErrLike, "decoding")
				So(errors.Is(err, pngdata.ErrHeader), ShouldBeTrue)
			})

			Convey("options are applied", func() {
				So(os.WriteFile(path, minimalPNG(), 0644), ShouldBeNil)
				_, err := ReadFile(ctx, path, WithMaxChunkLength(1))
				So(errors.Is(err, pngdata.ErrLength), ShouldBeTrue)
			})
		})

		Convey("write to a directory", func() {
			err := New().WriteFile(ctx, dir)
			So(err, ShouldErrLike, "is a directory")
		})

		Convey("write into a missing directory", func() {
			err := New().WriteFile(ctx, filepath.Join(dir, "missing", "out.png"))
			So(err, ShouldErrLike, "creating temp file")
		})
	})
}
