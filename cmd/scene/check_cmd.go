package main

import (
	"fmt"

	"github.com/livescene/scene"
)

type checkCmd struct {
	File string `arg:"" default:"-" help:"Scene file (read from stdin if omitted)."`
}

func (c *checkCmd) Run(g *globals) error {
	program, err := g.parse(c.File)
	if err != nil {
		return err
	}
	errs := scene.Check(program)
	for _, err := range errs {
		fmt.Fprintf(g.Stdout, "%s: %s\n", c.File, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d problem(s) found", len(errs))
	}
	return nil
}
