package progress

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ochairo/saclient/internal/domain/entities"
	"github.com/ochairo/saclient/internal/domain/interfaces"
)

type entry struct {
	level  string
	msg    string
	fields []interfaces.Field
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []entry
}

func (l *recordingLogger) add(level, msg string, fields []interfaces.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Debug(msg string, fields ...interfaces.Field) { l.add("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields ...interfaces.Field)  { l.add("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields ...interfaces.Field)  { l.add("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields ...interfaces.Field) { l.add("error", msg, fields) }
func (l *recordingLogger) With(_ ...interfaces.Field) interfaces.Logger { return l }

func TestLoggerProgress_SetStatus(t *testing.T) {
	logger := &recordingLogger{}
	p := NewLoggerProgress(logger)

	p.SetStatus(entities.Info("downloading"))
	p.SetStatus(entities.Warn("two installs"))
	p.SetStatus(entities.Error("bad version"))

	assert.Equal(t, []entry{
		{level: "info", msg: "downloading"},
		{level: "warn", msg: "two installs"},
		{level: "error", msg: "bad version"},
	}, logger.entries)
}

func TestLoggerProgress_SetError(t *testing.T) {
	logger := &recordingLogger{}
	p := NewLoggerProgress(logger)

	cause := errors.New("package exceeds 10 bytes")
	p.SetError(entities.NewScannerError("out of memory", cause))
	p.SetError(errors.New("plain failure"))
	p.SetError(nil)

	if assert.Len(t, logger.entries, 2) {
		assert.Equal(t, "out of memory", logger.entries[0].msg)
		assert.Equal(t, []interfaces.Field{interfaces.Err(cause)}, logger.entries[0].fields)
		assert.Equal(t, "plain failure", logger.entries[1].msg)
	}
}

func TestNewLoggerProgress_NilLogger(t *testing.T) {
	p := NewLoggerProgress(nil)
	// must not panic
	p.SetStatus(entities.Info("x"))
	p.SetError(errors.New("y"))
}
