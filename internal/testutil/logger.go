package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output.
// Tests use it to keep output quiet.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
