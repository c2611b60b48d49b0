// Package log provides structured logging for treelearn.
//
// The package defines a small slog-compatible Logger interface so that
// library code is not coupled to one backend, plus a zerolog-backed
// default provider and slog integration helpers for binaries. Domain
// attribute keys (model name, operation, data shape, tree statistics)
// live in attributes.go.
//
// Example:
//
//	logger := log.GetLoggerWithName("tree.grower").With(
//	    log.ModelNameKey, "DecisionTreeClassifier",
//	)
//	logger.Info("Training started",
//	    log.OperationKey, log.OperationFit,
//	    log.SamplesKey, 1000,
//	    log.FeaturesKey, 5,
//	)

package log

import (
	"context"
)

// Logger is the structured logging interface used throughout the
// library. Fields are alternating key/value pairs as in log/slog.
// Implementations must be safe for concurrent use.
type Logger interface {
	// Debug logs detailed diagnostic information, such as per-split
	// decisions during tree induction. Usually disabled outside
	// development.
	Debug(msg string, fields ...any)

	// Info logs general operational information, such as a completed
	// training run with its sample and feature counts.
	Info(msg string, fields ...any)

	// Warn logs conditions that do not stop the operation, such as a
	// data conversion warning.
	Warn(msg string, fields ...any)

	// Error logs failures. If the first field is an error value the
	// implementation may extract stack trace information from it.
	Error(msg string, fields ...any)

	// With returns a new Logger carrying the given fields on every
	// subsequent record. The receiver is unchanged.
	With(fields ...any) Logger

	// Enabled reports whether a record at the given level would be
	// emitted, so callers can skip expensive field construction:
	//
	//	if logger.Enabled(ctx, log.LevelDebug) {
	//	    logger.Debug("gain table", "gains", computeGainTable(ds))
	//	}
	Enabled(ctx context.Context, level Level) bool
}

// Level is a logging level. Values match slog.Level so the two systems
// interoperate without translation tables.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the conventional upper-case name of the level.
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

// LoggerProvider creates and configures loggers. The package-level
// functions delegate to a swappable provider so tests can capture log
// output.
type LoggerProvider interface {
	// GetLogger returns the provider's default logger.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component name,
	// e.g. "tree.grower".
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum level for loggers from this provider.
	SetLevel(level Level)
}
