package logger

import (
	"os"
)

// ConsoleLogger writes human-readable records to stdout.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	return &ConsoleLogger{slogLogger: newTextLogger(os.Stdout, level)}
}
