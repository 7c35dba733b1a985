// Package logger provides the verbose diagnostic output used while
// compiling and inspecting patterns.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/lestrrat-go/strftime"
)

const prefix = "[bspregexp] "

// Logger prints compile-time diagnostics when enabled.
// A nil *Logger is valid and discards everything.
type Logger struct {
	enabled bool

	mu    sync.Mutex
	out   io.Writer
	stamp *strftime.Strftime
	now   func() time.Time
}

// New creates a logger writing to stderr.
func New(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
		now:     time.Now,
	}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	l.out = w
	l.mu.Unlock()
}

// SetTimestamp prefixes every line with the current time rendered by the
// strftime pattern. An empty pattern removes the timestamp.
func (l *Logger) SetTimestamp(pattern string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if pattern == "" {
		l.stamp = nil
		return nil
	}
	f, err := strftime.New(pattern)
	if err != nil {
		return fmt.Errorf("logger: bad timestamp pattern %q: %w", pattern, err)
	}
	l.stamp = f
	return nil
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...any) {
	if !l.Enabled() {
		return
	}
	l.write(prefix + fmt.Sprintf(format, args...) + "\n")
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if !l.Enabled() {
		return
	}
	l.write(prefix + "=== " + name + " ===\n")
}

// Block prints a multi-line body, one log line per input line.
func (l *Logger) Block(body string) {
	if !l.Enabled() {
		return
	}
	start := 0
	for i := 0; i < len(body); i++ {
		if body[i] == '\n' {
			l.write(prefix + body[start:i] + "\n")
			start = i + 1
		}
	}
	if start < len(body) {
		l.write(prefix + body[start:] + "\n")
	}
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

func (l *Logger) write(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stamp != nil {
		line = l.stamp.FormatString(l.now()) + " " + line
	}
	_, _ = io.WriteString(l.out, line)
}
