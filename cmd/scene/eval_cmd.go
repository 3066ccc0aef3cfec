package main

import (
	"fmt"

	"github.com/alecthomas/repr"

	"github.com/livescene/scene"
	"github.com/livescene/scene/lexer"
)

type evalFlags struct {
	Time      float32            `short:"t" default:"0" help:"Animation time in seconds."`
	Define    map[string]float32 `short:"D" placeholder:"NAME=VALUE" help:"Bind a variable before evaluation."`
	MaxLeaves int                `default:"0" help:"Fail if a pass produces more leaf commands than this (0 for no limit)."`
	MaxSteps  int                `default:"0" help:"Fail if a pass executes more statements and loop iterations than this (0 for no limit)."`
}

func (f *evalFlags) evaluate(g *globals, program []scene.Command) (*scene.Result, error) {
	env := scene.NewEnvironment()
	for name, value := range f.Define {
		if err := checkVariableName(name); err != nil {
			return nil, err
		}
		env.Set(name, value)
	}
	defer g.Log.Step("evaluate")()
	return scene.Evaluate(program, f.Time,
		scene.WithEnvironment(env),
		scene.MaxLeaves(f.MaxLeaves),
		scene.MaxSteps(f.MaxSteps))
}

// checkVariableName rejects -D names that no program could reference.
func checkVariableName(name string) error {
	if lexer.IsKeyword(name) {
		return fmt.Errorf("-D %s: %q is a reserved word", name, name)
	}
	tokens, err := lexer.Lex("", name)
	if err != nil || len(tokens) != 2 || tokens[0].Type != lexer.Ident {
		return fmt.Errorf("-D %s: %q is not a variable name", name, name)
	}
	return nil
}

type evalCmd struct {
	Eval evalFlags `embed:""`
	Repr bool      `help:"Print the Go representation of the leaves."`
	Env  bool      `help:"Print the final variable bindings after the leaves."`
	File string    `arg:"" default:"-" help:"Scene file (read from stdin if omitted)."`
}

func (c *evalCmd) Run(g *globals) error {
	program, err := g.parse(c.File)
	if err != nil {
		return err
	}
	result, err := c.Eval.evaluate(g, program)
	if err != nil {
		return err
	}
	if c.Repr {
		fmt.Fprintln(g.Stdout, repr.String(result.Leaves, repr.Indent("  ")))
	} else {
		for _, leaf := range result.Leaves {
			fmt.Fprintln(g.Stdout, leaf)
		}
	}
	if c.Env {
		fmt.Fprintln(g.Stdout, result.Env)
	}
	return nil
}
