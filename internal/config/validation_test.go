package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		InstallDir: "/tmp/appscan",
		Service:    Service{URL: DefaultServiceURL, RetryCount: 1, MaxPackageMB: 10},
		Log:        Log{Level: "info", Format: "text"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty install dir", mutate: func(c *Config) { c.InstallDir = " " }, wantErr: ErrInvalidInstallDir},
		{name: "bad url scheme", mutate: func(c *Config) { c.Service.URL = "ftp://example.com" }, wantErr: ErrInvalidService},
		{name: "url without host", mutate: func(c *Config) { c.Service.URL = "https://" }, wantErr: ErrInvalidService},
		{name: "negative retries", mutate: func(c *Config) { c.Service.RetryCount = -1 }, wantErr: ErrInvalidService},
		{name: "key without signature", mutate: func(c *Config) { c.Verify.KeyFile = "key.asc" }, wantErr: ErrInvalidVerify},
		{name: "key and signature", mutate: func(c *Config) {
			c.Verify.KeyFile = "key.asc"
			c.Verify.SignatureURL = "https://example.com/SAClientUtil.zip.sig"
		}},
		{name: "unknown log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: ErrInvalidLog},
		{name: "unterminated quote", mutate: func(c *Config) { c.DefaultArgs = `-o "out` }, wantErr: ErrInvalidArgs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfig_DefaultArguments(t *testing.T) {
	tests := []struct {
		name string
		args string
		want []string
	}{
		{name: "empty", args: "", want: nil},
		{name: "simple", args: "-v --oso", want: []string{"-v", "--oso"}},
		{name: "quoted", args: `-n "my app" -x 'a b'`, want: []string{"-n", "my app", "-x", "a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{DefaultArgs: tt.args}
			got, err := cfg.DefaultArguments()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
