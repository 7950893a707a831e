package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ochairo/saclient/internal/domain/entities"
)

// Built-in defaults
const (
	DefaultServiceURL   = "https://cloud.appscan.com"
	DefaultTimeout      = 10 * time.Minute
	DefaultRetryCount   = 2
	DefaultMaxPackageMB = 1024
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// DefaultInstallDir returns <user home>/.appscan
func DefaultInstallDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, entities.DefaultInstallDirName), nil
}

func defaults() (*Config, error) {
	installDir, err := DefaultInstallDir()
	if err != nil {
		return nil, err
	}

	return &Config{
		InstallDir: installDir,
		Service: Service{
			URL:          DefaultServiceURL,
			Timeout:      DefaultTimeout,
			RetryCount:   DefaultRetryCount,
			MaxPackageMB: DefaultMaxPackageMB,
		},
		Log: Log{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}, nil
}
