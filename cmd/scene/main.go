// Package main is the scene command line tool.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/livescene/scene"
	"github.com/livescene/scene/host"
	"github.com/livescene/scene/internal/logger"
)

var version string = "dev"

// CLI is the command line grammar.
type CLI struct {
	Version kong.VersionFlag
	Debug   bool `help:"Enable debug logging." env:"SCENE_DEBUG"`

	Parse   parseCmd   `cmd:"" help:"Parse a scene and print its syntax tree."`
	Eval    evalCmd    `cmd:"" help:"Evaluate a scene and print the resulting leaf commands."`
	Render  renderCmd  `cmd:"" help:"Evaluate a scene and render it as SVG."`
	Fmt     fmtCmd     `cmd:"" help:"Reformat a scene in canonical style."`
	Check   checkCmd   `cmd:"" help:"Report variables used before they are declared."`
	Grammar grammarCmd `cmd:"" help:"Print the scene grammar as EBNF."`
	Watch   watchCmd   `cmd:"" help:"Re-render a scene file to SVG every frame, reloading it on change."`
}

// Shared state bound into every command's Run method.
type globals struct {
	Stdin  io.Reader
	Stdout io.Writer
	Log    *logger.Logger
	Config host.Config
}

// read a file, or stdin if path is "-".
func (g *globals) read(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(g.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func (g *globals) parse(path string, options ...scene.Option) ([]scene.Command, error) {
	src, err := g.read(path)
	if err != nil {
		return nil, err
	}
	parser, err := scene.NewParser(append([]scene.Option{scene.Filename(path)}, options...)...)
	if err != nil {
		return nil, err
	}
	defer g.Log.Step("parse " + path)()
	return parser.ParseString(src)
}

func main() {
	cli := CLI{}
	kctx := kong.Parse(&cli,
		kong.Description(`Parse, evaluate and render live-coded scenes.`),
		kong.Vars{"version": version},
	)
	cfg, err := host.LoadConfig()
	kctx.FatalIfErrorf(err)
	level := cfg.LogLevel
	if cli.Debug {
		level = logger.LevelDebug
	}
	err = kctx.Run(&globals{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Log:    logger.New(os.Stderr, level, "scene"),
		Config: cfg,
	})
	kctx.FatalIfErrorf(err)
}
