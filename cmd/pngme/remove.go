// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/errors"

	"github.com/Rishabh672003/pngme/png"
)

var cmdRemove = &subcommands.Command{
	UsageLine: "remove [-v] <file> <type>",
	ShortDesc: "removes a message chunk from a PNG file",
	LongDesc:  "Removes the first chunk of the given type and rewrites the file in place.",
	CommandRun: func() subcommands.CommandRun {
		c := &removeRun{}
		c.registerFlags()
		return c
	},
}

type removeRun struct {
	commandBase
}

func (c *removeRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.execute(a, c, env, c, args)
}

func (c *removeRun) run(ctx context.Context, out io.Writer, args []string) error {
	if len(args) != 2 {
		return badArgs("remove takes <file> <type>, got %d arguments", len(args))
	}
	path, typ := args[0], args[1]

	container, err := png.ReadFile(ctx, path)
	if err != nil {
		return err
	}
	if container.RemoveFirstChunk(typ) == nil {
		return errNotFound(typ, path)
	}
	if err := container.WriteFile(ctx, path); err != nil {
		return errors.Annotate(err, "saving").Err()
	}
	_, err = fmt.Fprintf(out, "%s is removed\n", typ)
	return err
}
