// Package log provides the default zerolog-backed logger provider.
//
// This file contains the provider used by the library itself: model code calls
// GetLogger / GetLoggerWithName and receives a Logger backed by zerolog with
// structured JSON output. The provider stays quiet by default (warn level) so
// that importing the library never spams an application's output; applications
// opt in to more detail with SetLogLevel.

package log

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	treelearnErrors "github.com/YuminosukeSato/treelearn/pkg/errors"
)

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	logger zerolog.Logger
}

// Debug implements Logger.Debug.
func (z *zerologLogger) Debug(msg string, fields ...any) {
	appendFields(z.logger.Debug(), fields).Msg(msg)
}

// Info implements Logger.Info.
func (z *zerologLogger) Info(msg string, fields ...any) {
	appendFields(z.logger.Info(), fields).Msg(msg)
}

// Warn implements Logger.Warn.
func (z *zerologLogger) Warn(msg string, fields ...any) {
	appendFields(z.logger.Warn(), fields).Msg(msg)
}

// Error implements Logger.Error.
// If the first field is an error value it is attached through zerolog's
// error support so the ErrFmtHandler-style stacktrace extraction applies.
func (z *zerologLogger) Error(msg string, fields ...any) {
	event := z.logger.Error()
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			event = event.Err(err)
			fields = fields[1:]
		}
	}
	appendFields(event, fields).Msg(msg)
}

// With implements Logger.With.
func (z *zerologLogger) With(fields ...any) Logger {
	ctx := z.logger.With()
	if len(fields) > 0 {
		ctx = ctx.Fields([]interface{}(fields))
	}
	return &zerologLogger{logger: ctx.Logger()}
}

// Enabled implements Logger.Enabled.
func (z *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= z.logger.GetLevel()
}

// appendFields attaches alternating key/value fields to a zerolog event.
func appendFields(event *zerolog.Event, fields []any) *zerolog.Event {
	if len(fields) == 0 {
		return event
	}
	return event.Fields([]interface{}(fields))
}

// toZerologLevel converts a slog-compatible Level to the zerolog equivalent.
func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// ZerologProvider implements LoggerProvider on top of a shared zerolog root.
type ZerologProvider struct {
	mu   sync.RWMutex
	root zerolog.Logger
}

// NewZerologProvider creates a provider writing JSON log lines to w.
// It is primarily useful in tests and applications that manage their
// own output destination; library code uses the package-level provider.
func NewZerologProvider(w io.Writer, level Level) *ZerologProvider {
	root := zerolog.New(w).With().Timestamp().Logger().Level(toZerologLevel(level))
	return &ZerologProvider{root: root}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *ZerologProvider) GetLogger() Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &zerologLogger{logger: p.root}
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
// The name is attached to every record under the ml.component key.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &zerologLogger{logger: p.root.With().Str(ComponentKey, name).Logger()}
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *ZerologProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.root = p.root.Level(toZerologLevel(level))
}

var (
	defaultProvider *ZerologProvider
	providerOnce    sync.Once
)

// getDefaultProvider lazily builds the package-level provider and routes the
// errors package's warning stream into it (registered here rather than in
// pkg/errors to avoid a circular import).
func getDefaultProvider() *ZerologProvider {
	providerOnce.Do(func() {
		defaultProvider = NewZerologProvider(os.Stderr, LevelWarn)
		treelearnErrors.SetZerologWarnFunc(func(warning error) {
			logger := defaultProvider.GetLogger()
			logger.Warn(warning.Error(), ErrorTypeKey, typeName(warning))
		})
	})
	return defaultProvider
}

// typeName reports a short type label for structured warning records.
func typeName(v any) string {
	switch v.(type) {
	case *treelearnErrors.DataConversionWarning:
		return "DataConversionWarning"
	case *treelearnErrors.UndefinedMetricWarning:
		return "UndefinedMetricWarning"
	default:
		return "Warning"
	}
}

// GetLogger returns the default logger.
func GetLogger() Logger {
	return getDefaultProvider().GetLogger()
}

// GetLoggerWithName returns a named logger from the default provider.
//
// Example:
//
//	logger := log.GetLoggerWithName("tree.grower")
//	logger.Debug("split chosen", log.AttributeKey, "no-surfacing")
func GetLoggerWithName(name string) Logger {
	return getDefaultProvider().GetLoggerWithName(name)
}

// SetLogLevel adjusts the minimum level of the default provider.
func SetLogLevel(level Level) {
	getDefaultProvider().SetLevel(level)
}
