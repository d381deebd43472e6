// Package tuilog provides file-based logging for the terminal UI.
// While the alternate screen is active stdout and stderr belong to the
// renderer, so diagnostics go to a file instead.
package tuilog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables logging when no
// --log flag is given.
const EnvVar = "CLAUDE_SESSIONS_LOG"

// Logger writes timestamped key-value lines to a log file.
type Logger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
}

// Log is the process-wide logger. Disabled until Init is called with a path.
var (
	Log     = &Logger{}
	logOnce sync.Once
)

// ResolvePath picks the log destination: the flag value wins, then the
// CLAUDE_SESSIONS_LOG environment variable. Empty means logging stays off.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvVar)
}

// Init opens the log file and enables the global logger.
// An empty path leaves logging disabled.
func Init(path string) error {
	if path == "" {
		Log.enabled = false
		return nil
	}

	var initErr error
	logOnce.Do(func() {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			initErr = err
			return
		}
		Log.file = f
		Log.enabled = true
		Log.Info("logging started", "path", path)
	})
	return initErr
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Enabled reports whether log lines are being written.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Writer exposes the log file as an io.Writer, or io.Discard when disabled.
func (l *Logger) Writer() io.Writer {
	if !l.enabled || l.file == nil {
		return io.Discard
	}
	return l.file
}

func (l *Logger) log(level string, msg string, keyvals ...any) {
	if !l.enabled || l.file == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	line := fmt.Sprintf("%s [%s] %s", time.Now().Format("15:04:05.000"), level, msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		line += fmt.Sprintf(" %v=%v", keyvals[i], keyvals[i+1])
	}

	fmt.Fprintln(l.file, line)
	l.file.Sync()
}

// Debug logs a debug message with optional key-value pairs.
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.log("DEBUG", msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func (l *Logger) Info(msg string, keyvals ...any) {
	l.log("INFO", msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.log("WARN", msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func (l *Logger) Error(msg string, keyvals ...any) {
	l.log("ERROR", msg, keyvals...)
}

// Timed logs the duration of an operation. Usage:
//
//	defer tuilog.Log.Timed("refresh")()
func (l *Logger) Timed(operation string) func() {
	if !l.enabled {
		return func() {}
	}
	start := time.Now()
	l.Debug(operation, "status", "started")
	return func() {
		l.Debug(operation, "status", "completed", "duration", time.Since(start))
	}
}
