// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/maruel/subcommands"
	"gopkg.in/yaml.v3"

	"github.com/Rishabh672003/pngme/png"
	"github.com/Rishabh672003/pngme/png/pngdata"
)

var cmdPrint = &subcommands.Command{
	UsageLine: "print [-v] [-format text|json|yaml] <file>",
	ShortDesc: "lists the chunks of a PNG file",
	LongDesc:  "Lists every chunk of a PNG file in order.",
	CommandRun: func() subcommands.CommandRun {
		c := &printRun{}
		c.registerFlags()
		c.Flags.StringVar(&c.format, "format", "text", "Output format: text, json or yaml.")
		return c
	},
}

type printRun struct {
	commandBase

	format string
}

// chunkInfo is the json/yaml form of one chunk.
type chunkInfo struct {
	Index      int    `json:"index" yaml:"index"`
	Type       string `json:"type" yaml:"type"`
	Length     uint32 `json:"length" yaml:"length"`
	CRC        uint32 `json:"crc" yaml:"crc"`
	Critical   bool   `json:"critical" yaml:"critical"`
	Public     bool   `json:"public" yaml:"public"`
	SafeToCopy bool   `json:"safe_to_copy" yaml:"safe_to_copy"`
	Text       string `json:"text,omitempty" yaml:"text,omitempty"`
}

func describe(i int, ch *pngdata.Chunk) chunkInfo {
	t := ch.Type()
	ret := chunkInfo{
		Index:      i,
		Type:       t.String(),
		Length:     ch.Length(),
		CRC:        ch.CRC(),
		Critical:   t.IsCritical(),
		Public:     t.IsPublic(),
		SafeToCopy: t.IsSafeToCopy(),
	}
	// Only ancillary chunks are likely to carry text.
	if !t.IsCritical() {
		if s, err := ch.PayloadString(); err == nil {
			ret.Text = s
		}
	}
	return ret
}

func (c *printRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.execute(a, c, env, c, args)
}

func (c *printRun) run(ctx context.Context, out io.Writer, args []string) error {
	if len(args) != 1 {
		return badArgs("print takes <file>, got %d arguments", len(args))
	}
	switch c.format {
	case "text", "json", "yaml":
	default:
		return badArgs("unknown -format %q", c.format)
	}

	container, err := png.ReadFile(ctx, args[0])
	if err != nil {
		return err
	}

	if c.format == "text" {
		_, err := io.WriteString(out, container.String())
		return err
	}

	infos := make([]chunkInfo, 0, container.Len())
	for i, ch := range container.Chunks() {
		infos = append(infos, describe(i, ch))
	}
	if c.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(infos); err != nil {
		return err
	}
	return enc.Close()
}
