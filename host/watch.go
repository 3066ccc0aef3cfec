package host

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// A FileWatcher calls its change callback after a watched file has been written and then left alone
// for the debounce period.
type FileWatcher interface {
	// Watch blocks until ctx is cancelled or watching fails.
	Watch(ctx context.Context) error
	Close() error
}

type debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func()
}

func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// PollingWatcher detects changes by comparing modification time and size at a fixed interval.
type PollingWatcher struct {
	path     string
	interval time.Duration
	changes  *debouncer
	last     fileStamp
}

type fileStamp struct {
	modTime time.Time
	size    int64
	exists  bool
}

func (f fileStamp) same(other fileStamp) bool {
	return f.exists == other.exists && f.size == other.size && f.modTime.Equal(other.modTime)
}

func stat(path string) fileStamp {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}
	}
	return fileStamp{modTime: info.ModTime(), size: info.Size(), exists: true}
}

// NewPollingWatcher watches path every cfg.Poll.
func NewPollingWatcher(path string, cfg Config, onChange func()) (*PollingWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return &PollingWatcher{
		path:     abs,
		interval: cfg.Poll,
		changes:  &debouncer{delay: cfg.Debounce, fn: onChange},
		last:     stat(abs),
	}, nil
}

func (p *PollingWatcher) Watch(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			current := stat(p.path)
			if !current.same(p.last) {
				p.last = current
				if current.exists {
					p.changes.trigger()
				}
			}
		case <-ctx.Done():
			p.changes.stop()
			return ctx.Err()
		}
	}
}

func (p *PollingWatcher) Close() error {
	p.changes.stop()
	return nil
}
