package logging

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// New creates a configured application logger.
// It writes to Stderr (to separate from Stdout frames/machine text).
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level) *slog.Logger {
	return slog.New(textHandler(level))
}

// NewWithFile fans the logger out to Stderr text plus a JSON stream,
// typically a log file.
func NewWithFile(level slog.Level, file io.Writer) *slog.Logger {
	return slog.New(slogmulti.Fanout(
		textHandler(level),
		slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}),
	))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func textHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	})
}
