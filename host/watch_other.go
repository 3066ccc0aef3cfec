//go:build !linux

package host

// NewWatcher watches path by polling.
func NewWatcher(path string, cfg Config, onChange func()) (FileWatcher, error) {
	return NewPollingWatcher(path, cfg, onChange)
}
