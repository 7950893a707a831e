package logging

import "gopkg.in/natefinch/lumberjack.v2"

// NewFileWriter returns a size-rotated log file writer
func NewFileWriter(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    25,
		MaxBackups: 10,
		MaxAge:     14,
		Compress:   true,
	}
}
