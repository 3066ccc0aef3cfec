// Package host drives a scene file live: it reloads the file when it changes, keeps the last program
// that parsed, and evaluates it against a running clock once per frame.
package host

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/livescene/scene"
	"github.com/livescene/scene/internal/logger"
)

// FrameFunc receives each evaluated frame. An error stops Run.
type FrameFunc func(time float32, result *scene.Result) error

// Host ties a scene file to a Session and a Clock.
type Host struct {
	path    string
	cfg     Config
	log     *logger.Logger
	session *Session
	clock   *Clock
}

// New creates a Host for the scene file at path.
func New(path string, cfg Config, log *logger.Logger) (*Host, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	parser, err := scene.NewParser(scene.Filename(path))
	if err != nil {
		return nil, err
	}
	return &Host{
		path:    path,
		cfg:     cfg,
		log:     log.WithPrefix("host"),
		session: NewSession(parser, scene.MaxLeaves(cfg.MaxLeaves), scene.MaxSteps(cfg.MaxSteps)),
		clock:   NewClock(cfg.TimeScale),
	}, nil
}

// Session being driven.
func (h *Host) Session() *Session { return h.session }

// Clock driving frames.
func (h *Host) Clock() *Clock { return h.clock }

// Load reads the scene file and offers it to the Session.
//
// A read failure is returned. A parse failure is logged and returned, and the previous program is
// kept.
func (h *Host) Load() error {
	defer h.log.Step("load " + h.path)()
	data, err := os.ReadFile(h.path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	err = h.session.Update(string(data))
	h.log.Reload(h.path, len(h.session.Program()), err)
	return err
}

// Run loads the file, then evaluates the accepted program once per frame until ctx is cancelled.
//
// The file is reloaded whenever it changes. Evaluation errors are logged once per distinct message
// and the frame is skipped.
func (h *Host) Run(ctx context.Context, frame FrameFunc) error {
	if err := h.Load(); err != nil && !scene.IsSyntaxError(err) {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	watcher, err := NewWatcher(h.path, h.cfg, func() {
		if err := h.Load(); err != nil && !scene.IsSyntaxError(err) {
			h.log.Error("%s", err)
		}
	})
	if err != nil {
		return err
	}
	defer watcher.Close()
	watchErr := make(chan error, 1)
	go func() { watchErr <- watcher.Watch(ctx) }()

	ticker := time.NewTicker(h.cfg.FrameInterval())
	defer ticker.Stop()
	lastErr := ""
	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-watchErr:
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("watch %s: %w", h.path, err)

		case <-ticker.C:
			t := h.clock.Elapsed()
			result, err := h.session.Frame(t)
			if err != nil {
				if msg := err.Error(); msg != lastErr {
					h.log.Warn("frame at %.2fs: %s", t, msg)
					lastErr = msg
				}
				continue
			}
			lastErr = ""
			if err := frame(t, result); err != nil {
				return err
			}
		}
	}
}
