package runtime

import (
	"io"
	"log/slog"
	"os"
)

func NewLogger(app string) *slog.Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	})
	return slog.New(h).With("app", app)
}

// NewTextLogger is used by the CLI so log lines stay readable next to
// rendered tables.
func NewTextLogger(app string, w io.Writer) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel(),
	})
	return slog.New(h).With("app", app)
}

func logLevel() slog.Level {
	switch os.Getenv("BOOKDESK_LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
