package logging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/ochairo/saclient/internal/domain/interfaces"
)

// JSONLogger writes one JSON object per entry
type JSONLogger struct {
	logger zerolog.Logger
}

// NewJSONLogger creates a zerolog-backed logger writing to w
func NewJSONLogger(w io.Writer, level string) (*JSONLogger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	return &JSONLogger{
		logger: zerolog.New(w).Level(lvl).With().Timestamp().Logger(),
	}, nil
}

func (l *JSONLogger) Debug(msg string, fields ...interfaces.Field) {
	withFields(l.logger.Debug(), fields).Msg(msg)
}

func (l *JSONLogger) Info(msg string, fields ...interfaces.Field) {
	withFields(l.logger.Info(), fields).Msg(msg)
}

func (l *JSONLogger) Warn(msg string, fields ...interfaces.Field) {
	withFields(l.logger.Warn(), fields).Msg(msg)
}

func (l *JSONLogger) Error(msg string, fields ...interfaces.Field) {
	withFields(l.logger.Error(), fields).Msg(msg)
}

// With returns a child logger carrying fields
func (l *JSONLogger) With(fields ...interfaces.Field) interfaces.Logger {
	ctx := l.logger.With()
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			ctx = ctx.AnErr(f.Key, err)
			continue
		}
		ctx = ctx.Interface(f.Key, f.Value)
	}
	return &JSONLogger{logger: ctx.Logger()}
}

// withFields adds fields to a pending event; nil events are disabled levels
func withFields(e *zerolog.Event, fields []interfaces.Field) *zerolog.Event {
	if e == nil {
		return nil
	}
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			e = e.AnErr(f.Key, err)
			continue
		}
		e = e.Interface(f.Key, f.Value)
	}
	return e
}
