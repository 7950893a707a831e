// Package progress provides Progress sinks for the client runner.
package progress

import (
	"errors"

	"github.com/ochairo/saclient/internal/domain/entities"
	"github.com/ochairo/saclient/internal/domain/interfaces"
)

// LoggerProgress forwards progress to a structured logger
type LoggerProgress struct {
	logger interfaces.Logger
}

// NewLoggerProgress creates a progress sink on top of logger
func NewLoggerProgress(logger interfaces.Logger) *LoggerProgress {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &LoggerProgress{logger: logger}
}

// SetStatus logs msg at its level
func (p *LoggerProgress) SetStatus(msg entities.Message) {
	switch msg.Level {
	case entities.LevelError:
		p.logger.Error(msg.Text)
	case entities.LevelWarn:
		p.logger.Warn(msg.Text)
	default:
		p.logger.Info(msg.Text)
	}
}

// SetError logs err, using the user-facing message of scanner errors
func (p *LoggerProgress) SetError(err error) {
	if err == nil {
		return
	}

	var scannerErr *entities.ScannerError
	if errors.As(err, &scannerErr) {
		p.logger.Error(scannerErr.Message, interfaces.Err(scannerErr.Err))
		return
	}
	p.logger.Error(err.Error())
}
