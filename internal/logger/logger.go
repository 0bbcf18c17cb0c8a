// Package logger holds the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() to enable logging.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

const prefix = "iniregfmt"

// Options configures the logger initialization.
type Options struct {
	Enabled bool      // If false, all logging is discarded
	Verbose bool      // Log debug events
	JSON    bool      // Emit JSON records instead of styled text
	Writer  io.Writer // Destination. Default: os.Stderr
	File    string    // Append JSON records to this file instead of Writer
}

// Init configures logging. Call from main() before any log calls.
// If opts.Enabled is false, all log output is discarded.
// The returned function closes the log file, if one was opened.
func Init(opts Options) (func() error, error) {
	noop := func() error { return nil }
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return noop, nil
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return noop, fmt.Errorf("logger: open %s: %w", opts.File, err)
		}
		L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		return f.Close, nil
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if opts.JSON {
		L = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
		return noop, nil
	}

	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Prefix: prefix,
		Level:  charmlog.Level(level),
	})
	L = slog.New(handler)
	return noop, nil
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
