package logging

import (
	"fmt"
	"io"

	clog "github.com/charmbracelet/log"

	"github.com/ochairo/saclient/internal/domain/interfaces"
)

// ConsoleLogger writes human-readable, timestamped lines
type ConsoleLogger struct {
	logger *clog.Logger
}

// NewConsoleLogger creates a text logger writing to w
func NewConsoleLogger(w io.Writer, level string) (*ConsoleLogger, error) {
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	return &ConsoleLogger{
		logger: clog.NewWithOptions(w, clog.Options{
			ReportTimestamp: true,
			Level:           lvl,
		}),
	}, nil
}

func (l *ConsoleLogger) Debug(msg string, fields ...interfaces.Field) {
	l.logger.Debug(msg, keyvals(fields)...)
}

func (l *ConsoleLogger) Info(msg string, fields ...interfaces.Field) {
	l.logger.Info(msg, keyvals(fields)...)
}

func (l *ConsoleLogger) Warn(msg string, fields ...interfaces.Field) {
	l.logger.Warn(msg, keyvals(fields)...)
}

func (l *ConsoleLogger) Error(msg string, fields ...interfaces.Field) {
	l.logger.Error(msg, keyvals(fields)...)
}

// With returns a child logger carrying fields
func (l *ConsoleLogger) With(fields ...interfaces.Field) interfaces.Logger {
	return &ConsoleLogger{logger: l.logger.With(keyvals(fields)...)}
}
