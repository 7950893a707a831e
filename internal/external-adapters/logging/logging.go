// Package logging provides Logger implementations for the CLI.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/ochairo/saclient/internal/domain/interfaces"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options selects the logger implementation and its sinks
type Options struct {
	Level  string    // debug, info, warn or error
	Format string    // text (default) or json
	File   string    // optional rotating log file, written in addition to Out
	Out    io.Writer // console sink, usually os.Stderr
}

// New builds a Logger from opts. The returned closer releases the log file
// and is never nil.
func New(opts Options) (interfaces.Logger, io.Closer, error) {
	level := strings.ToLower(strings.TrimSpace(opts.Level))
	if level == "" {
		level = "info"
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		file := NewFileWriter(opts.File)
		out = io.MultiWriter(out, file)
		closer = file
	}

	var (
		logger interfaces.Logger
		err    error
	)
	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		logger, err = NewConsoleLogger(out, level)
	case FormatJSON:
		logger, err = NewJSONLogger(out, level)
	default:
		err = fmt.Errorf("unknown log format %q", opts.Format)
	}
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}

	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// keyvals flattens fields into alternating key/value pairs
func keyvals(fields []interfaces.Field) []interface{} {
	kv := make([]interface{}, 0, len(fields)*2)
	for _, f := range fields {
		kv = append(kv, f.Key, f.Value)
	}
	return kv
}
