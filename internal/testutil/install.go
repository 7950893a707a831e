package testutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ochairo/saclient/internal/domain/entities"
)

// WriteInstall creates <installDir>/<name> with a version.info and a
// bin/appscan.sh holding script. Empty version or script skips that file.
func WriteInstall(t *testing.T, installDir, name, version, script string) string {
	t.Helper()

	dir := filepath.Join(installDir, name)
	if err := os.MkdirAll(filepath.Join(dir, entities.ScriptDir), 0750); err != nil {
		t.Fatalf("Failed to create install: %v", err)
	}
	if version != "" {
		if err := os.WriteFile(filepath.Join(dir, entities.VersionInfoFile), []byte(version+"\n"), 0600); err != nil {
			t.Fatalf("Failed to write version.info: %v", err)
		}
	}
	if script != "" {
		//nolint:gosec // G306: test script must be executable
		if err := os.WriteFile(filepath.Join(dir, entities.ScriptDir, entities.UnixScript), []byte(script), 0755); err != nil {
			t.Fatalf("Failed to write script: %v", err)
		}
	}

	return dir
}

// WriteZip creates a zip archive at path from name -> content entries.
// Names ending in "/" become directories.
func WriteZip(t *testing.T, path string, files map[string]string) {
	t.Helper()

	//nolint:gosec // G304: test fixture path
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create zip: %v", err)
	}
	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Failed to add %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to finish zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
}
