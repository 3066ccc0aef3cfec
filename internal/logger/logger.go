// Package logger writes the host's and the command line tool's diagnostics as timestamped lines
// with a severity and an optional component path, eg.
//
//	15:04:05.000 WARN [host/watch] kept previous program, scene.scn: 2:3: unexpected ...
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level of a message. Messages below a Logger's threshold are dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel accepts a level name in any case. An empty name is LevelInfo.
func ParseLevel(name string) (Level, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	switch upper {
	case "":
		return LevelInfo, nil
	case "WARNING":
		return LevelWarn, nil
	}
	for i, candidate := range levelNames {
		if candidate == upper {
			return Level(i), nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// Logger for one component. Loggers derived with WithPrefix share the writer and its lock.
type Logger struct {
	mu        *sync.Mutex
	w         io.Writer
	threshold Level
	component string
	now       func() time.Time
}

// New Logger writing to w, or stderr if w is nil.
func New(w io.Writer, threshold Level, component string) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{mu: &sync.Mutex{}, w: w, threshold: threshold, component: component, now: time.Now}
}

// Default is an info level Logger on stderr.
func Default() *Logger { return New(os.Stderr, LevelInfo, "") }

// Discard drops everything.
func Discard() *Logger { return New(io.Discard, LevelError+1, "") }

// WithPrefix returns a Logger for a sub-component, eg. "host" becomes "host/watch".
func (l *Logger) WithPrefix(component string) *Logger {
	child := *l
	if l.component != "" {
		component = l.component + "/" + component
	}
	child.component = component
	return &child
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.threshold
}

func (l *Logger) write(level Level, format string, args []any) {
	if !l.Enabled(level) {
		return
	}
	var line strings.Builder
	line.WriteString(l.now().Format("15:04:05.000"))
	line.WriteByte(' ')
	line.WriteString(level.String())
	line.WriteByte(' ')
	if l.component != "" {
		fmt.Fprintf(&line, "[%s] ", l.component)
	}
	fmt.Fprintf(&line, format, args...)
	line.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, line.String()) // nolint: errcheck
}

func (l *Logger) Debug(format string, args ...any) { l.write(LevelDebug, format, args) }
func (l *Logger) Info(format string, args ...any)  { l.write(LevelInfo, format, args) }
func (l *Logger) Warn(format string, args ...any)  { l.write(LevelWarn, format, args) }
func (l *Logger) Error(format string, args ...any) { l.write(LevelError, format, args) }

// Step writes a debug line when a phase starts. Call the returned function to record how long it
// took.
func (l *Logger) Step(name string) func() {
	start := l.now()
	l.Debug("start: %s", name)
	return func() {
		l.Debug("done: %s (took %v)", name, l.now().Sub(start).Round(time.Microsecond))
	}
}

// Reload records the outcome of re-reading a scene file.
func (l *Logger) Reload(path string, commands int, err error) {
	if err != nil {
		l.Warn("kept previous program, %s: %s", path, err)
		return
	}
	l.Info("loaded %s (%d commands)", path, commands)
}
