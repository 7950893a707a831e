package config

import "errors"

// Validation errors returned when the merged configuration is unusable
var (
	ErrInvalidInstallDir = errors.New("invalid install directory")
	ErrInvalidService    = errors.New("invalid service configuration")
	ErrInvalidVerify     = errors.New("invalid verify configuration")
	ErrInvalidLog        = errors.New("invalid log configuration")
	ErrInvalidArgs       = errors.New("invalid default_args")
)
