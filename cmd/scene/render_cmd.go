package main

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/livescene/scene/render"
)

type canvasFlags struct {
	Width  int     `default:"400" help:"Canvas width in pixels."`
	Height int     `default:"400" help:"Canvas height in pixels."`
	Scale  float32 `default:"20" help:"Pixels per scene unit."`
}

func (c canvasFlags) canvas() render.Canvas {
	canvas := render.DefaultCanvas()
	canvas.Width = c.Width
	canvas.Height = c.Height
	canvas.Scale = c.Scale
	return canvas
}

type renderCmd struct {
	Eval   evalFlags   `embed:""`
	Canvas canvasFlags `embed:""`
	Output string      `short:"o" help:"Output file (stdout if omitted)."`
	File   string      `arg:"" default:"-" help:"Scene file (read from stdin if omitted)."`
}

func (c *renderCmd) Run(g *globals) error {
	program, err := g.parse(c.File)
	if err != nil {
		return err
	}
	result, err := c.Eval.evaluate(g, program)
	if err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	if err := render.WriteSVG(buf, render.Replay(result.Leaves), c.Canvas.canvas()); err != nil {
		return err
	}
	if c.Output == "" {
		_, err = g.Stdout.Write(buf.Bytes())
		return err
	}
	return writeFile(c.Output, buf.Bytes())
}

// writeFile replaces path atomically so viewers never see a partial file.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".scene-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
