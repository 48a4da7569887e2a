// Package log provides functionality for logging commands, errors and
// informational events to separate files.
package log

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"taskmanager/local-app/internal/config"
)

// Fields carries structured attributes attached to a log entry.
type Fields map[string]interface{}

// Logger writes commands, errors and info events to their own JSON log files.
type Logger struct {
	commandLogger *slog.Logger
	errorLogger   *slog.Logger
	infoLogger    *slog.Logger
	files         []*os.File
	mu            sync.Mutex
}

// NewLogger creates a Logger writing under cfg.LogFolder. Info and debug
// entries below level are dropped.
func NewLogger(cfg *config.Config, level LogLevel) (*Logger, error) {
	if err := os.MkdirAll(cfg.LogFolder, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	l := &Logger{}
	open := func(name string) (*os.File, error) {
		f, err := os.OpenFile(filepath.Join(cfg.LogFolder, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			l.closeFiles()
			return nil, fmt.Errorf("failed to open log file %s: %w", name, err)
		}
		l.files = append(l.files, f)
		return f, nil
	}

	commandFile, err := open(cfg.CommandLog)
	if err != nil {
		return nil, err
	}
	errorFile, err := open(cfg.ErrorLog)
	if err != nil {
		return nil, err
	}
	infoFile, err := open(cfg.InfoLog)
	if err != nil {
		return nil, err
	}

	l.commandLogger = slog.New(slog.NewJSONHandler(commandFile, &slog.HandlerOptions{Level: slog.LevelInfo}))
	l.errorLogger = slog.New(slog.NewJSONHandler(errorFile, &slog.HandlerOptions{Level: slog.LevelError}))
	l.infoLogger = slog.New(slog.NewJSONHandler(infoFile, &slog.HandlerOptions{Level: level.toSlogLevel()}))

	return l, nil
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() *Logger {
	discard := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return &Logger{
		commandLogger: discard,
		errorLogger:   discard,
		infoLogger:    discard,
	}
}

// Command records a command entered by user.
func (l *Logger) Command(ctx context.Context, user, command string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.commandLogger.InfoContext(ctx, command, slog.String("user", user))
}

// Error records a failure.
func (l *Logger) Error(ctx context.Context, message string, fields Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errorLogger.ErrorContext(ctx, message, fields.attrs()...)
}

// Info records an informational event.
func (l *Logger) Info(ctx context.Context, message string, fields Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infoLogger.InfoContext(ctx, message, fields.attrs()...)
}

// Debug records a diagnostic event, written only when the logger level allows it.
func (l *Logger) Debug(ctx context.Context, message string, fields Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infoLogger.DebugContext(ctx, message, fields.attrs()...)
}

// Close closes all log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closeFiles()
}

func (l *Logger) closeFiles() error {
	var errs []error
	for _, f := range l.files {
		if err := f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close log file %s: %w", f.Name(), err))
		}
	}
	l.files = nil
	return errors.Join(errs...)
}

func (f Fields) attrs() []any {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		v := f[k]
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		attrs = append(attrs, slog.Any(k, v))
	}
	return attrs
}
