// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"
	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// usageError is tagged onto errors caused by bad command line arguments.
var usageError = errors.BoolTag{Key: errors.NewTagKey("bad command line")}

func badArgs(format string, args ...any) error {
	return errors.Reason(format, args...).Tag(usageError).Err()
}

// runner is implemented by every pngme subcommand.
type runner interface {
	run(ctx context.Context, out io.Writer, args []string) error
}

type commandBase struct {
	subcommands.CommandRunBase

	verbose bool
}

func (c *commandBase) registerFlags() {
	c.Flags.BoolVar(&c.verbose, "v", false, "Enable debug logging.")
}

// execute runs r and maps its error to an exit code.
func (c *commandBase) execute(a subcommands.Application, self subcommands.CommandRun, env subcommands.Env, r runner, args []string) int {
	ctx := cli.GetContext(a, self, env)
	if c.verbose {
		ctx = logging.SetLevel(ctx, logging.Debug)
	}

	err := r.run(ctx, a.GetOut(), args)
	switch {
	case err == nil:
		return exitOK
	case usageError.In(err):
		fmt.Fprintf(a.GetErr(), "%s: %s\n", a.GetName(), err)
		return exitUsage
	default:
		logging.Errorf(ctx, "%s", err)
		return exitFail
	}
}

// errNotFound is returned when the requested chunk type isn't present.
func errNotFound(typ, path string) error {
	return errors.Reason("no %s chunk in %q", typ, path).Err()
}
