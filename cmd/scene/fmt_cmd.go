package main

import (
	"fmt"

	"github.com/livescene/scene"
)

type fmtCmd struct {
	Write bool   `short:"w" help:"Write the result back to the source file instead of stdout."`
	File  string `arg:"" default:"-" help:"Scene file (read from stdin if omitted)."`
}

func (c *fmtCmd) Run(g *globals) error {
	program, err := g.parse(c.File)
	if err != nil {
		return err
	}
	out := scene.Format(program)
	if c.Write && c.File != "-" {
		return writeFile(c.File, []byte(out))
	}
	_, err = fmt.Fprint(g.Stdout, out)
	return err
}
