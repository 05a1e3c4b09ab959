package logger

import (
	"log/slog"
	"os"
)

// L is the process-wide logger shared by the server and CLI.
var L = slog.New(slog.NewTextHandler(os.Stdout, nil))

// Set replaces the default logger with l.
func Set(l *slog.Logger) {
	if l != nil {
		L = l
	}
}
