// Package yaml provides the YAML settings-file parser.
package yaml

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"

	"github.com/ochairo/saclient/internal/config"
)

// yamlConfig represents the raw YAML structure
type yamlConfig struct {
	InstallDir      string      `yaml:"install_dir"`
	SkipUpdateCheck bool        `yaml:"skip_update_check"`
	DefaultArgs     yamlArgs    `yaml:"default_args"`
	Service         yamlService `yaml:"service"`
	Verify          yamlVerify  `yaml:"verify"`
	Log             yamlLog     `yaml:"log"`
}

type yamlService struct {
	URL          string `yaml:"url"`
	Token        string `yaml:"token"`
	Timeout      string `yaml:"timeout"`
	RetryCount   int    `yaml:"retry_count"`
	MaxPackageMB int64  `yaml:"max_package_mb"`
}

type yamlVerify struct {
	SHA256       string `yaml:"sha256"`
	KeyFile      string `yaml:"key_file"`
	SignatureURL string `yaml:"signature_url"`
}

type yamlLog struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// yamlArgs accepts either a shell-quoted string or a list of arguments
type yamlArgs string

func (a *yamlArgs) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*a = yamlArgs(value.Value)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*a = yamlArgs(shellquote.Join(list...))
		return nil
	default:
		return fmt.Errorf("line %d: default_args must be a string or a list", value.Line)
	}
}

// ConfigParser parses YAML settings files
type ConfigParser struct{}

// NewConfigParser creates a new YAML parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// ParseFile parses a YAML settings file into a Config
func (p *ConfigParser) ParseFile(filePath string) (*config.Config, error) {
	//nolint:gosec // G304: filePath is the user-selected settings file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	cfg, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return cfg, nil
}

// Parse parses YAML bytes into a Config
func (p *ConfigParser) Parse(data []byte) (*config.Config, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	var timeout time.Duration
	if s := strings.TrimSpace(raw.Service.Timeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid service.timeout %q: %w", s, err)
		}
		timeout = d
	}

	return &config.Config{
		InstallDir:      expandHome(raw.InstallDir),
		SkipUpdateCheck: raw.SkipUpdateCheck,
		DefaultArgs:     string(raw.DefaultArgs),
		Service: config.Service{
			URL:          raw.Service.URL,
			Token:        raw.Service.Token,
			Timeout:      timeout,
			RetryCount:   raw.Service.RetryCount,
			MaxPackageMB: raw.Service.MaxPackageMB,
		},
		Verify: config.Verify{
			SHA256:       raw.Verify.SHA256,
			KeyFile:      expandHome(raw.Verify.KeyFile),
			SignatureURL: raw.Verify.SignatureURL,
		},
		Log: config.Log{
			Level:  raw.Log.Level,
			Format: raw.Log.Format,
			File:   expandHome(raw.Log.File),
		},
	}, nil
}

// expandHome replaces a leading "~/" with the user's home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}
