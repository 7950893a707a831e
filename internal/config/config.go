// Package config loads saclient settings from flags, the environment, a
// .env file and an optional YAML settings file.
package config

import (
	"fmt"
	"time"

	"github.com/kballard/go-shellquote"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "APPSCAN_"

// DefaultConfigFileName is looked up inside the install directory when no
// settings file is given explicitly
const DefaultConfigFileName = "saclient.yaml"

// Config is the merged runner configuration.
//
// Sources are merged in priority order: command-line flags, environment
// variables (APPSCAN_*), the YAML settings file, then built-in defaults.
// A higher-priority source only wins for fields it actually sets.
type Config struct {
	// InstallDir holds client installs and the downloaded package.
	// Env: APPSCAN_INSTALL_DIR
	InstallDir string `env:"INSTALL_DIR"`

	// ConfigFile is the YAML settings file path.
	// Env: APPSCAN_CONFIG
	ConfigFile string `env:"CONFIG"`

	// SkipUpdateCheck runs an existing install without asking the service
	// for a newer version.
	// Env: APPSCAN_SKIP_UPDATE_CHECK
	SkipUpdateCheck bool `env:"SKIP_UPDATE_CHECK"`

	// DefaultArgs is a shell-quoted argument string prepended to every run.
	// Env: APPSCAN_DEFAULT_ARGS
	DefaultArgs string `env:"DEFAULT_ARGS"`

	Service Service `envPrefix:"SERVICE_"`
	Verify  Verify  `envPrefix:"VERIFY_"`
	Log     Log     `envPrefix:"LOG_"`
}

// Service configures the analysis service the package is fetched from
type Service struct {
	// Env: APPSCAN_SERVICE_URL
	URL string `env:"URL"`
	// Env: APPSCAN_SERVICE_TOKEN
	Token string `env:"TOKEN"`
	// Env: APPSCAN_SERVICE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
	// Env: APPSCAN_SERVICE_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
	// MaxPackageMB caps the package download size in MiB.
	// Env: APPSCAN_SERVICE_MAX_PACKAGE_MB
	MaxPackageMB int64 `env:"MAX_PACKAGE_MB"`
}

// Verify configures optional integrity checks on the downloaded package
type Verify struct {
	// SHA256 is the expected hex digest of the package.
	// Env: APPSCAN_VERIFY_SHA256
	SHA256 string `env:"SHA256"`
	// KeyFile is an armored or binary OpenPGP public key.
	// Env: APPSCAN_VERIFY_KEY_FILE
	KeyFile string `env:"KEY_FILE"`
	// SignatureURL locates the detached signature of the package, either an
	// http(s) URL or a local path.
	// Env: APPSCAN_VERIFY_SIGNATURE_URL
	SignatureURL string `env:"SIGNATURE_URL"`
}

// Log configures logging output
type Log struct {
	// Env: APPSCAN_LOG_LEVEL
	Level string `env:"LEVEL"`
	// Format is text or json.
	// Env: APPSCAN_LOG_FORMAT
	Format string `env:"FORMAT"`
	// File adds a rotating log file next to console output.
	// Env: APPSCAN_LOG_FILE
	File string `env:"FILE"`
}

// FileParser reads a settings file into a Config
type FileParser func(path string) (*Config, error)

// Sources lists the inputs Load merges
type Sources struct {
	// Flags holds values set on the command line; may be nil
	Flags *Config
	// DotEnv is the .env file loaded into the environment first; empty
	// means ".env" in the working directory
	DotEnv string
	// ParseFile reads the YAML settings file; nil skips the file source
	ParseFile FileParser
	// SkipUpdateCheck is set when the flag was given explicitly. It wins over
	// every other source, including an explicit false.
	SkipUpdateCheck *bool
}

// Load builds the final configuration from src
func Load(src Sources) (*Config, error) {
	return newConfigBuilder().
		withDotEnv(src.DotEnv).
		withFlags(src.Flags).
		withEnv().
		withFile(src.ParseFile).
		withDefaults().
		withSkipUpdateCheck(src.SkipUpdateCheck).
		build()
}

// DefaultArguments splits DefaultArgs the way a POSIX shell would
func (c *Config) DefaultArguments() ([]string, error) {
	if c.DefaultArgs == "" {
		return nil, nil
	}
	args, err := shellquote.Split(c.DefaultArgs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse default_args: %w", err)
	}
	return args, nil
}

// MaxPackageBytes returns the download cap in bytes
func (c *Config) MaxPackageBytes() int64 {
	return c.Service.MaxPackageMB << 20
}
