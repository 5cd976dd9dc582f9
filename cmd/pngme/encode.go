// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"io"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"

	"github.com/Rishabh672003/pngme/png"
	"github.com/Rishabh672003/pngme/png/pngdata"
)

var cmdEncode = &subcommands.Command{
	UsageLine: "encode [-v] <file> <type> <message> [output]",
	ShortDesc: "appends a message chunk to a PNG file",
	LongDesc: `Appends a chunk of the given four letter type holding message.

The chunk is added after every existing chunk. The result is written to output,
or back over file if output is omitted.`,
	CommandRun: func() subcommands.CommandRun {
		c := &encodeRun{}
		c.registerFlags()
		return c
	},
}

type encodeRun struct {
	commandBase
}

func (c *encodeRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.execute(a, c, env, c, args)
}

func (c *encodeRun) run(ctx context.Context, out io.Writer, args []string) error {
	if len(args) != 3 && len(args) != 4 {
		return badArgs("encode takes <file> <type> <message> [output], got %d arguments", len(args))
	}
	path, typ, message := args[0], args[1], args[2]
	outPath := path
	if len(args) == 4 {
		outPath = args[3]
	}

	tc, err := pngdata.ParseTypeCode(typ)
	if err != nil {
		return badArgs("bad chunk type: %s", err)
	}
	if !tc.IsValid() {
		logging.Warningf(ctx, "chunk type %s has the reserved bit set", tc)
	}

	container, err := png.ReadFile(ctx, path)
	if err != nil {
		return err
	}
	container.AppendChunk(pngdata.NewChunk(tc, []byte(message)))
	if err := container.WriteFile(ctx, outPath); err != nil {
		return errors.Annotate(err, "saving").Err()
	}
	logging.Infof(ctx, "encoded %d byte message as %s in %q", len(message), tc, outPath)
	return nil
}
