package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"

	"github.com/livescene/scene"
)

type parseCmd struct {
	Trace bool   `help:"Trace parser productions to stderr."`
	Repr  bool   `help:"Print the Go representation of the tree instead of the compact form."`
	File  string `arg:"" default:"-" help:"Scene file (read from stdin if omitted)."`
}

func (c *parseCmd) Run(g *globals) error {
	options := []scene.Option{}
	if c.Trace {
		options = append(options, scene.Trace(os.Stderr))
	}
	// Whatever parsed is printed even when the input is only partially valid.
	program, err := g.parse(c.File, options...)
	if c.Repr {
		fmt.Fprintln(g.Stdout, repr.String(program, repr.Indent("  ")))
	} else {
		for _, cmd := range program {
			fmt.Fprintln(g.Stdout, scene.Dump(cmd))
		}
	}
	return err
}
