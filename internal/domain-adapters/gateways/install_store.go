package gateways

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/ochairo/saclient/internal/domain/entities"
)

// InstallStore manages client installs under a single install directory.
// It assumes one runner at a time; concurrent runners are not coordinated.
type InstallStore struct {
	dir         string
	removeBase  time.Duration
	removeTries uint64
	removeAll   func(string) error
}

// NewInstallStore creates a store rooted at dir
func NewInstallStore(dir string) *InstallStore {
	return &InstallStore{
		dir:         dir,
		removeBase:  200 * time.Millisecond,
		removeTries: 4,
		removeAll:   os.RemoveAll,
	}
}

// EnsureDir creates the install directory if needed
func (s *InstallStore) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("failed to create install directory: %w", err)
	}
	return nil
}

// FindInstall returns the lexicographically first SAClientUtil* directory.
// Additional matches are returned by name so callers can warn about them.
func (s *InstallStore) FindInstall() (*entities.ClientInstall, []string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to read install directory: %w", err)
	}

	var found *entities.ClientInstall
	var others []string
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), entities.InstallDirPrefix) || !isDirectory(filepath.Join(s.dir, entry.Name())) {
			continue
		}
		if found != nil {
			others = append(others, entry.Name())
			continue
		}

		path, err := filepath.Abs(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve install path: %w", err)
		}
		found = &entities.ClientInstall{Name: entry.Name(), Path: path}
	}

	return found, others, nil
}

// LocalVersion reads the first line of version.info in the install
func (s *InstallStore) LocalVersion(install *entities.ClientInstall) (string, error) {
	if install == nil {
		return "", entities.ErrClientNotInstalled
	}

	//nolint:gosec // G304: version.info lives inside the discovered install
	f, err := os.Open(install.VersionInfoPath())
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", entities.VersionInfoFile, err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read %s: %w", entities.VersionInfoFile, err)
		}
		return "", nil
	}

	return strings.TrimSpace(scanner.Text()), nil
}

// IsFile reports whether path is an existing regular file
func (s *InstallStore) IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// RemoveInstall deletes an install tree, children before parents. Failures
// such as files held open by another process are retried with backoff.
func (s *InstallStore) RemoveInstall(ctx context.Context, install *entities.ClientInstall) error {
	if install == nil {
		return nil
	}

	backoff := retry.WithMaxRetries(s.removeTries, retry.NewExponential(s.removeBase))
	err := retry.Do(ctx, backoff, func(_ context.Context) error {
		if err := s.removeAll(install.Path); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", install.Name, err)
	}

	return nil
}

// PackagePath returns where the downloaded package is stored
func (s *InstallStore) PackagePath() string {
	return filepath.Join(s.dir, entities.PackageFileName)
}

// RemovePackage deletes a stale downloaded package, if any
func (s *InstallStore) RemovePackage() error {
	if err := os.Remove(s.PackagePath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove stale package: %w", err)
	}
	return nil
}

// isDirectory checks if a path is a directory
func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
