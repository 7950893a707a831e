package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
)

// configBuilder collects configs in priority order; earlier entries win
type configBuilder struct {
	configs    []*Config
	skipUpdate *bool
	err        error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 4),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	// mergo only fills zero values, so an explicit false is applied here
	if b.skipUpdate != nil {
		config.SkipUpdateCheck = *b.skipUpdate
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withDotEnv(path string) *configBuilder {
	if path == "" {
		path = ".env"
	}
	if err := loadDotEnv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withFlags(flags *Config) *configBuilder {
	if flags != nil {
		b.configs = append(b.configs, flags)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withFile merges the settings file named by an earlier source, or
// saclient.yaml in the install directory when that file exists
func (b *configBuilder) withFile(parse FileParser) *configBuilder {
	if parse == nil {
		return b
	}

	path, explicit := b.configFilePath()
	if path == "" {
		return b
	}
	if !explicit {
		if _, err := os.Stat(path); err != nil {
			return b
		}
	}

	fileCfg, err := parse(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	fileCfg.ConfigFile = path

	b.configs = append(b.configs, fileCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	cfg, err := defaults()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder) withSkipUpdateCheck(skip *bool) *configBuilder {
	b.skipUpdate = skip
	return b
}

func (b *configBuilder) configFilePath() (string, bool) {
	for _, cfg := range b.configs {
		if cfg.ConfigFile != "" {
			return cfg.ConfigFile, true
		}
	}

	for _, cfg := range b.configs {
		if cfg.InstallDir != "" {
			return filepath.Join(cfg.InstallDir, DefaultConfigFileName), false
		}
	}

	dir, err := DefaultInstallDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, DefaultConfigFileName), false
}
