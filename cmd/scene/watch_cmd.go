package main

import (
	"bytes"
	"context"
	"os"
	"os/signal"

	"github.com/livescene/scene"
	"github.com/livescene/scene/host"
	"github.com/livescene/scene/render"
)

type watchCmd struct {
	Canvas canvasFlags `embed:""`
	Output string      `short:"o" required:"" help:"SVG file to rewrite whenever the frame changes."`
	File   string      `arg:"" help:"Scene file to watch."`
}

func (c *watchCmd) Help() string {
	return `
Reloads the scene whenever it is saved. Text that does not parse completely is
reported and the previous program keeps running. Tuning is read from the
SCENE_DEBOUNCE_MS, SCENE_POLL_MS, SCENE_FPS, SCENE_TIME_SCALE and
SCENE_MAX_LEAVES environment variables.
`
}

func (c *watchCmd) Run(g *globals) error {
	h, err := host.New(c.File, g.Config, g.Log)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	var last []byte
	return h.Run(ctx, func(_ float32, result *scene.Result) error {
		buf := &bytes.Buffer{}
		if err := render.WriteSVG(buf, render.Replay(result.Leaves), c.Canvas.canvas()); err != nil {
			return err
		}
		if bytes.Equal(buf.Bytes(), last) {
			return nil
		}
		last = buf.Bytes()
		return writeFile(c.Output, last)
	})
}
