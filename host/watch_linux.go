//go:build linux

package host

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Editors often save by writing a temporary file and renaming it over the original, so the
// directory is watched and events are filtered by name.
const watchMask = unix.IN_MODIFY | unix.IN_CLOSE_WRITE | unix.IN_MOVED_TO | unix.IN_CREATE

type inotifyWatcher struct {
	fd       int
	name     string
	interval time.Duration
	changes  *debouncer
}

// NewWatcher watches path with inotify.
func NewWatcher(path string, cfg Config, onChange func()) (FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("inotify_init: %w", err)
	}
	dir := filepath.Dir(abs)
	if _, err := unix.InotifyAddWatch(fd, dir, watchMask); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &inotifyWatcher{
		fd:       fd,
		name:     filepath.Base(abs),
		interval: cfg.Poll,
		changes:  &debouncer{delay: cfg.Debounce, fn: onChange},
	}, nil
}

func (w *inotifyWatcher) Watch(ctx context.Context) error {
	buf := make([]byte, (unix.SizeofInotifyEvent+unix.NAME_MAX+1)*16)
	for {
		if err := ctx.Err(); err != nil {
			w.changes.stop()
			return err
		}
		n, err := unix.Read(w.fd, buf)
		if err != nil {
			if !errors.Is(err, unix.EAGAIN) && !errors.Is(err, unix.EINTR) {
				return fmt.Errorf("read inotify events: %w", err)
			}
			select {
			case <-ctx.Done():
			case <-time.After(w.interval):
			}
			continue
		}
		w.dispatch(buf[:n])
	}
}

func (w *inotifyWatcher) dispatch(buf []byte) {
	for offset := 0; offset+unix.SizeofInotifyEvent <= len(buf); {
		event := (*unix.InotifyEvent)(unsafe.Pointer(&buf[offset]))
		start := offset + unix.SizeofInotifyEvent
		end := start + int(event.Len)
		if end > len(buf) {
			return
		}
		offset = end
		name := strings.TrimRight(string(buf[start:end]), "\x00")
		if name == w.name && event.Mask&watchMask != 0 {
			w.changes.trigger()
		}
	}
}

func (w *inotifyWatcher) Close() error {
	w.changes.stop()
	return unix.Close(w.fd)
}
