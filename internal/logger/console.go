// Package logger provides the leveled console logger behind --verbose.
//
// Trace output goes to stderr so it never interleaves with listing output,
// whose byte-exact formatting must not be disturbed. Messages are prefixed
// with [HH:MM:SS] timestamps and colorized per level when the writer is a
// terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// Console logs to a writer with timestamps, level filtering and thread
// safety. Color output is enabled automatically for terminal writers.
type Console struct {
	writer  io.Writer
	level   int
	mutex   sync.Mutex
	colored bool
}

// NewConsole creates a Console writing to w. If w is nil, messages are
// silently discarded. level is the minimum level to emit: trace, debug,
// info, warn or error (case-insensitive); empty or unknown values default
// to "info".
func NewConsole(w io.Writer, level string) *Console {
	return &Console{
		writer:  w,
		level:   levelToInt(level),
		colored: isTerminal(w),
	}
}

// isTerminal reports whether w is a TTY that should receive colors.
// Respects NO_COLOR via the color package's global switch.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) && !color.NoColor
}

func levelToInt(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// Tracef logs at trace level (most verbose).
func (c *Console) Tracef(format string, args ...any) {
	c.logf(levelTrace, "TRACE", format, args...)
}

// Debugf logs at debug level.
func (c *Console) Debugf(format string, args ...any) {
	c.logf(levelDebug, "DEBUG", format, args...)
}

// Infof logs at info level.
func (c *Console) Infof(format string, args ...any) {
	c.logf(levelInfo, "INFO", format, args...)
}

// Warnf logs at warn level.
func (c *Console) Warnf(format string, args ...any) {
	c.logf(levelWarn, "WARN", format, args...)
}

// Errorf logs at error level.
func (c *Console) Errorf(format string, args ...any) {
	c.logf(levelError, "ERROR", format, args...)
}

// logf emits one "[HH:MM:SS] [LEVEL] message" line if the level passes the
// configured filter. A nil Console is valid and discards everything, so
// callers do not need to guard trace calls.
func (c *Console) logf(level int, tag, format string, args ...any) {
	if c == nil || c.writer == nil {
		return
	}
	if level < c.level {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	ts := time.Now().Format("15:04:05")
	if c.colored {
		tag = colorize(tag)
	}
	fmt.Fprintf(c.writer, "[%s] [%s] %s\n", ts, tag, fmt.Sprintf(format, args...))
}

func colorize(tag string) string {
	switch tag {
	case "TRACE":
		return color.New(color.FgHiBlack).Sprint(tag)
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(tag)
	case "INFO":
		return color.New(color.FgBlue).Sprint(tag)
	case "WARN":
		return color.New(color.FgYellow).Sprint(tag)
	case "ERROR":
		return color.New(color.FgRed).Sprint(tag)
	default:
		return tag
	}
}
