// Package debug provides trace logging for the shared library. A DLL
// loaded by LabVIEW has no console, so diagnostics go to a file named
// by the LVXLSX_DEBUG environment variable. When the variable is unset
// logging is disabled and calls are near-free.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level is the severity of a log message.
type Level int

const (
	LevelTrace Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

// String returns the level's tag as written to the log file.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes timestamped, leveled lines to a single output.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	level   Level
	enabled bool
}

var defaultLogger = &Logger{level: LevelOff}

func init() {
	path := os.Getenv("LVXLSX_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defaultLogger = &Logger{out: f, level: LevelTrace, enabled: true}
}

// New creates a logger writing to w at the given minimum level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{out: w, level: level, enabled: true}
}

// Enabled reports whether the logger writes anything at all.
func (l *Logger) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// SetLevel sets the minimum level that gets written.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || level < l.level || l.out == nil {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05.000")
	fmt.Fprintf(l.out, "%s [%s] %s\n", ts, level, fmt.Sprintf(format, args...))
}

// Tracef logs at trace level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logf(LevelTrace, format, args...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

// Warnf logs at warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

// Enabled reports whether the default logger is active.
func Enabled() bool { return defaultLogger.Enabled() }

// Tracef logs to the default logger.
func Tracef(format string, args ...interface{}) { defaultLogger.Tracef(format, args...) }

// Infof logs to the default logger.
func Infof(format string, args ...interface{}) { defaultLogger.Infof(format, args...) }

// Warnf logs to the default logger.
func Warnf(format string, args ...interface{}) { defaultLogger.Warnf(format, args...) }

// Errorf logs to the default logger.
func Errorf(format string, args ...interface{}) { defaultLogger.Errorf(format, args...) }
