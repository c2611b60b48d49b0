package log

import (
	"log/slog"
	"os"
)

// SetupLogger installs a JSON slog default handler for applications built on
// this library, such as the treelearn command. Attribute keys are renamed to
// the CloudLogging vocabulary so log lines drop straight into structured log
// collectors, and errors logged through ErrAttr get their cockroachdb stack
// traces attached by the wrapping handler.
func SetupLogger(loglevel string) {
	renames := map[string]string{
		slog.LevelKey:   "severity",
		slog.MessageKey: "message",
		slog.SourceKey:  "logging.googleapis.com/sourceLocation",
	}
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if key, ok := renames[attr.Key]; ok {
				attr.Key = key
			}
			return attr
		},
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	slog.SetDefault(slog.New(WrapByErrFmtHandler(handler)))
}

// ToLogLevel converts a level name to its slog level. Unknown names fall
// back to info rather than failing, so a misconfigured deployment still
// produces logs.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

const (
	// ErrAttrKey is the slog key errors are logged under.
	ErrAttrKey = "error"
	// StacktraceAttrKey carries the stack trace extracted from an error.
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
