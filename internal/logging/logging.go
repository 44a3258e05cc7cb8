// Package logging provides structured logging for the agent.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a console logger writing to stderr at info level.
// Stdout stays clean for command output and the MCP stdio transport.
func NewLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(writer).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}
