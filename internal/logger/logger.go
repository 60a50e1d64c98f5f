// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// TODO: Consider log rotation

// Until InitLogger runs, log records are dropped. Library code and tests can
// log freely without creating files under the user's state directory.
var defaultLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Options controls where log records go.
type Options struct {
	// Level is one of debug, info, warn or error. Empty means info.
	Level string
	// Stderr mirrors log records to stderr in addition to the log file.
	Stderr bool
	// Dir overrides the log directory. Empty means the XDG state directory.
	Dir string
}

// getLogFilePath determines the path for the application log file based on XDG spec.
func getLogFilePath(dir string) (string, error) {
	if dir != "" {
		return filepath.Join(dir, "app.log"), nil
	}

	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	return filepath.Join(stateDir, "ir-verbs", "app.log"), nil
}

// ParseLevel maps a level name to a slog.Level. Unknown names are an error.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// openLogFile creates the log directory and opens the log file for appending.
func openLogFile(dir string) (*os.File, string, error) {
	logFilePath, err := getLogFilePath(dir)
	if err != nil {
		return nil, "", fmt.Errorf("error determining log file path: %w", err)
	}

	logDir := filepath.Dir(logFilePath)
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return nil, logFilePath, fmt.Errorf("error creating log directory %s: %w", logDir, err)
	}

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, logFilePath, fmt.Errorf("error opening log file %s: %w", logFilePath, err)
	}
	return file, logFilePath, nil
}

// InitLogger configures the package logger. It should be called once at
// startup. If the log file cannot be opened, file logging is skipped.
func InitLogger(opts Options) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info.\n", err)
	}

	var writers []io.Writer

	file, logFilePath, err := openLogFile(opts.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v. File logging disabled.\n", err)
	} else {
		writers = append(writers, file)
	}

	if opts.Stderr {
		writers = append(writers, os.Stderr)
	}

	var finalWriter io.Writer
	switch len(writers) {
	case 0:
		finalWriter = io.Discard
	case 1:
		finalWriter = writers[0]
	default:
		finalWriter = io.MultiWriter(writers...)
	}

	handler := slog.NewJSONHandler(finalWriter, &slog.HandlerOptions{Level: level})
	defaultLogger = slog.New(handler)

	// The file handle is left for the OS to close on exit.
	Debug("Logging configured.", "file", logFilePath, "stderr", opts.Stderr, "level", level.String())
}

// SetLogger replaces the package logger, e.g. to capture records in tests.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	defaultLogger = l
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Infof logs a formatted informational message.
func Infof(format string, v ...interface{}) {
	defaultLogger.Info(fmt.Sprintf(format, v...))
}

// Error logs an error message.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...interface{}) {
	defaultLogger.Error(fmt.Sprintf(format, v...))
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}
