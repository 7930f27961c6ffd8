// Package logx is the CLI-facing structured logging wrapper shared by
// cmd/hntriectl and the library packages that accept a caller-supplied
// *slog.Logger (trie.WithLogger, store.WithStoreLogger).
package logx

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger. It discards all output until Init is called.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures Init.
type Options struct {
	Enabled bool       // if false, all logging is discarded
	JSON    bool       // emit JSON records instead of text, for machine consumption
	Level   slog.Level // minimum level; defaults to LevelInfo when Enabled
}

// Init configures the global logger. Call once from main() before any
// other package logs through logx.L.
func Init(opts Options) {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	if opts.JSON {
		L = slog.New(slog.NewJSONHandler(os.Stderr, handlerOpts))
		return
	}
	L = slog.New(slog.NewTextHandler(os.Stderr, handlerOpts))
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
