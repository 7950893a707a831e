package yaml

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigParser_Parse_Valid(t *testing.T) {
	parser := NewConfigParser()
	yamlData := []byte(`install_dir: /opt/appscan
skip_update_check: true
default_args: -v --name "my app"
service:
  url: https://eu.cloud.appscan.com
  token: abc123
  timeout: 90s
  retry_count: 4
  max_package_mb: 512
verify:
  sha256: DEADBEEF
  key_file: /etc/appscan/key.asc
  signature_url: https://example.com/SAClientUtil.zip.asc
log:
  level: debug
  format: json
  file: /var/log/saclient.log
`)

	cfg, err := parser.Parse(yamlData)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.InstallDir != "/opt/appscan" {
		t.Errorf("InstallDir = %v, want /opt/appscan", cfg.InstallDir)
	}
	if !cfg.SkipUpdateCheck {
		t.Error("SkipUpdateCheck should be true")
	}
	if cfg.DefaultArgs != `-v --name "my app"` {
		t.Errorf("DefaultArgs = %v", cfg.DefaultArgs)
	}
	if cfg.Service.URL != "https://eu.cloud.appscan.com" {
		t.Errorf("Service.URL = %v", cfg.Service.URL)
	}
	if cfg.Service.Timeout != 90*time.Second {
		t.Errorf("Service.Timeout = %v, want 90s", cfg.Service.Timeout)
	}
	if cfg.Service.RetryCount != 4 || cfg.Service.MaxPackageMB != 512 {
		t.Errorf("Service limits = %d/%d, want 4/512", cfg.Service.RetryCount, cfg.Service.MaxPackageMB)
	}
	if cfg.Verify.KeyFile != "/etc/appscan/key.asc" {
		t.Errorf("Verify.KeyFile = %v", cfg.Verify.KeyFile)
	}
	if cfg.Log.Format != "json" || cfg.Log.Level != "debug" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestConfigParser_Parse_ArgsList(t *testing.T) {
	parser := NewConfigParser()
	cfg, err := parser.Parse([]byte("default_args:\n  - -n\n  - my app\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	args, err := cfg.DefaultArguments()
	if err != nil {
		t.Fatalf("DefaultArguments() error = %v", err)
	}
	if len(args) != 2 || args[0] != "-n" || args[1] != "my app" {
		t.Errorf("DefaultArguments() = %q, want [-n \"my app\"]", args)
	}
}

func TestConfigParser_Parse_Empty(t *testing.T) {
	parser := NewConfigParser()
	cfg, err := parser.Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.InstallDir != "" || cfg.Service.Timeout != 0 {
		t.Errorf("Parse() of empty file = %+v, want zero config", cfg)
	}
}

func TestConfigParser_Parse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "bad yaml", data: "install_dir: [unclosed"},
		{name: "bad timeout", data: "service:\n  timeout: soon\n"},
		{name: "args mapping", data: "default_args:\n  a: b\n"},
		{name: "retry not a number", data: "service:\n  retry_count: many\n"},
	}

	parser := NewConfigParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parser.Parse([]byte(tt.data)); err == nil {
				t.Errorf("Parse(%q) should return error", tt.data)
			}
		})
	}
}

func TestConfigParser_Parse_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cfg, err := NewConfigParser().Parse([]byte("install_dir: ~/tools/appscan\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if want := home + "/tools/appscan"; cfg.InstallDir != want {
		t.Errorf("InstallDir = %v, want %v", cfg.InstallDir, want)
	}
}

func TestConfigParser_ParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saclient.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0600); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	cfg, err := NewConfigParser().ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %v, want warn", cfg.Log.Level)
	}
}

func TestConfigParser_ParseFile_NotFound(t *testing.T) {
	parser := NewConfigParser()
	_, err := parser.ParseFile("/nonexistent/path/saclient.yaml")
	if err == nil {
		t.Error("ParseFile() should return error for nonexistent file")
	}
}
