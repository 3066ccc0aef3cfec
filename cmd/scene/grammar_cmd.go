package main

import (
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"

	"github.com/livescene/scene"
)

type grammarCmd struct {
	Verify bool `help:"Check the grammar for undefined or unreachable productions."`
	HTML   bool `name:"html" help:"Print railroad diagrams as HTML instead of EBNF."`
}

func (c *grammarCmd) Help() string {
	return `
The HTML output expects railroad-diagrams.{css,js} from
https://github.com/tabatkins/railroad-diagrams alongside it.
`
}

func (c *grammarCmd) Run(g *globals) error {
	if c.Verify {
		if err := scene.VerifyGrammar(); err != nil {
			return err
		}
	}
	if !c.HTML {
		_, err := fmt.Fprintln(g.Stdout, strings.TrimSpace(scene.Grammar))
		return err
	}
	grammar, err := ebnf.Parse("scene.ebnf", strings.NewReader(scene.Grammar))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(g.Stdout, railroad(grammar))
	return err
}
