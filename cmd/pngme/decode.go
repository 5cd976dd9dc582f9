// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/maruel/subcommands"

	"github.com/Rishabh672003/pngme/png"
)

var cmdDecode = &subcommands.Command{
	UsageLine: "decode [-v] <file> <type>",
	ShortDesc: "prints the message hidden in a PNG file",
	LongDesc:  "Prints the payload of the first chunk of the given type as text.",
	CommandRun: func() subcommands.CommandRun {
		c := &decodeRun{}
		c.registerFlags()
		return c
	},
}

type decodeRun struct {
	commandBase
}

func (c *decodeRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.execute(a, c, env, c, args)
}

func (c *decodeRun) run(ctx context.Context, out io.Writer, args []string) error {
	if len(args) != 2 {
		return badArgs("decode takes <file> <type>, got %d arguments", len(args))
	}
	path, typ := args[0], args[1]

	container, err := png.ReadFile(ctx, path)
	if err != nil {
		return err
	}
	ch := container.ChunkByType(typ)
	if ch == nil {
		return errNotFound(typ, path)
	}
	msg, err := ch.PayloadString()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, msg)
	return err
}
