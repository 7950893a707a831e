package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ochairo/saclient/internal/config"
	"github.com/ochairo/saclient/internal/testutil"
)

// isolate keeps the test away from the user's home, environment and .env
func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, config.EnvPrefix) {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
	t.Chdir(t.TempDir())
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
}

func TestExecute_RunPassesExitCode(t *testing.T) {
	skipOnWindows(t)
	isolate(t)
	installDir := t.TempDir()
	workDir := t.TempDir()
	testutil.WriteInstall(t, installDir, "SAClientUtil.8.0", "8.0.1", "#!/bin/sh\necho \"got $*\"\nexit 7\n")

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{
		"--install-dir", installDir,
		"--skip-update-check",
		"--log-format", "json",
		"run", "--dir", workDir, "--", "prepare", "-n", "app",
	}, &stdout, &stderr)

	assert.Equal(t, 7, code)
	assert.Contains(t, stderr.String(), `"message":"got prepare -n app"`)
	assert.Contains(t, stderr.String(), `"run_id":`)
}

func TestExecute_RunPrependsDefaultArgs(t *testing.T) {
	skipOnWindows(t)
	isolate(t)
	installDir := t.TempDir()
	testutil.WriteInstall(t, installDir, "SAClientUtil", "8.0.1", "#!/bin/sh\necho \"got $*\"\n")
	t.Setenv("APPSCAN_DEFAULT_ARGS", `-v "-x y"`)

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{
		"--install-dir", installDir, "--skip-update-check", "run", "--", "analyze",
	}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "got -v -x y analyze")
}

func TestExecute_Prepare(t *testing.T) {
	skipOnWindows(t)
	isolate(t)
	installDir := t.TempDir()
	workDir := t.TempDir()
	testutil.WriteInstall(t, installDir, "SAClientUtil", "8.0.1", "#!/bin/sh\ntouch \"$3.irx\"\n")

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{
		"--install-dir", installDir, "--skip-update-check", "prepare", "--dir", workDir, "myapp",
	}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, filepath.Join(workDir, "myapp.irx")+"\n", stdout.String())
}

func TestExecute_VersionQueriesService(t *testing.T) {
	isolate(t)
	installDir := t.TempDir()
	testutil.WriteInstall(t, installDir, "SAClientUtil.1.2.3", "1.2.3", "#!/bin/sh\n")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v4/Tools/SAClientUtil/Version" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"Version":"1.3.0"}`))
	}))
	defer server.Close()
	t.Setenv("APPSCAN_SERVICE_URL", server.URL)

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{"--install-dir", installDir, "version"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	assert.Regexp(t, `Local version:\s+1\.2\.3`, out)
	assert.Regexp(t, `Latest version:\s+1\.3\.0`, out)
	assert.Regexp(t, `Update available:\s+true`, out)
}

func TestExecute_InstallDownloadsPackage(t *testing.T) {
	isolate(t)
	installDir := t.TempDir()
	pkg := filepath.Join(t.TempDir(), "pkg.zip")
	testutil.WriteZip(t, pkg, map[string]string{
		"SAClientUtil.8.0/version.info":    "8.0\n",
		"SAClientUtil.8.0/bin/appscan.sh":  "#!/bin/sh\n",
		"SAClientUtil.8.0/bin/appscan.bat": "@echo off\n",
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v4/Tools/SAClientUtil" {
			http.ServeFile(w, r, pkg)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()
	t.Setenv("APPSCAN_SERVICE_URL", server.URL)

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{"--install-dir", installDir, "install"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), filepath.Join(installDir, "SAClientUtil.8.0", "bin"))
	assert.FileExists(t, filepath.Join(installDir, "SAClientUtil.8.0", "version.info"))
}

func TestExecute_ConfigErrors(t *testing.T) {
	isolate(t)

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{"--log-format", "xml", "version"}, &stdout, &stderr)

	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), "Error:")
}

func TestClientExitCode(t *testing.T) {
	tests := []struct {
		code int
		want int
	}{
		{code: 0, want: 0},
		{code: 3, want: 3},
		{code: -1, want: exitInterrupted},
	}

	for _, tt := range tests {
		if got := clientExitCode(tt.code); got != tt.want {
			t.Errorf("clientExitCode(%d) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestExecute_SkipUpdateCheckFalseOverridesEnv(t *testing.T) {
	skipOnWindows(t)
	isolate(t)
	installDir := t.TempDir()
	testutil.WriteInstall(t, installDir, "SAClientUtil", "1.0.0", "#!/bin/sh\necho ran\n")
	t.Setenv("APPSCAN_SKIP_UPDATE_CHECK", "true")

	var queried atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v4/Tools/SAClientUtil/Version" {
			queried.Store(true)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()
	t.Setenv("APPSCAN_SERVICE_URL", server.URL)

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{
		"--install-dir", installDir, "--skip-update-check=false", "run",
	}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.True(t, queried.Load(), "version should be checked when the flag turns the skip off")
}
