// Package log provides the structured logging interface used across spamham.
//
// The interface is slog-compatible in shape; the process-wide implementation
// is backed by zerolog (see NewZerologLogger and SetupLogger). Fields are
// passed as alternating key/value pairs using the keys in attributes.go:
//
//	logger := log.GetLogger().With(
//	    log.ModelNameKey, "DummyClassifier",
//	    log.EstimatorIDKey, id,
//	)
//	logger.Info("training started",
//	    log.OperationKey, log.OperationTrain,
//	    log.SamplesKey, len(trainset),
//	)
package log

import (
	"context"
	"strings"

	"github.com/kpuputti/spamham/pkg/errors"
)

// Logger is a structured logger with key/value fields.
type Logger interface {
	// Debug logs detailed diagnostic information.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs conditions that do not stop the run.
	Warn(msg string, fields ...any)

	// Error logs an error condition. If the first field is an error value it
	// is recorded under ErrorKey together with its stack trace.
	//
	//   logger.Error("training failed", err, log.OperationKey, log.OperationTrain)
	Error(msg string, fields ...any)

	// With returns a Logger that adds fields to every record.
	With(fields ...any) Logger

	// Enabled reports whether records at level are emitted.
	Enabled(ctx context.Context, level Level) bool
}

// Level is a logging level; values match slog.Level.
type Level int

// Standard logging levels.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the upper-case level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
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

// ParseLevel converts a level name such as "info" into a Level.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, errors.NewValidationError("log_level", "must be one of debug, info, warn, error", level)
	}
}
