// Package gateways defines interfaces for external service adapters.
package gateways

//go:generate mockgen -source=client.go -destination=../../../mock/client_gateways_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/ochairo/saclient/internal/domain/entities"
)

// PackageFetcher downloads the current client package
type PackageFetcher interface {
	// FetchPackage writes the package archive to dest. Running out of memory
	// or disk is reported as entities.ErrResourceExhausted.
	FetchPackage(ctx context.Context, dest string) error
}

// VersionQuery asks the service for the published client version
type VersionQuery interface {
	// LatestVersion returns the published version, or "" when the service has none
	LatestVersion(ctx context.Context) (string, error)
}

// Extractor unpacks a package archive
type Extractor interface {
	Extract(ctx context.Context, archivePath, destDir string) error
}

// PlatformDetector reports facts about the host operating system
type PlatformDetector interface {
	IsWindows() bool
}

// InstallStore owns the install directory on disk
type InstallStore interface {
	// EnsureDir creates the install directory if needed
	EnsureDir() error

	// FindInstall returns the first client install in lexicographic order,
	// nil when none exists, plus the names of any further matches.
	FindInstall() (*entities.ClientInstall, []string, error)

	// LocalVersion reads the first line of the install's version.info
	LocalVersion(install *entities.ClientInstall) (string, error)

	// IsFile reports whether path is an existing regular file
	IsFile(path string) bool

	// RemoveInstall deletes an install tree, retrying transient failures
	RemoveInstall(ctx context.Context, install *entities.ClientInstall) error

	// PackagePath returns where the downloaded package is stored
	PackagePath() string

	// RemovePackage deletes a stale downloaded package, if any
	RemovePackage() error
}

// PackageVerifier checks a downloaded package before it is extracted
type PackageVerifier interface {
	Verify(ctx context.Context, packagePath string) error
}

// ProcessLauncher starts the client script as a subprocess
type ProcessLauncher interface {
	Start(inv entities.Invocation) (Process, error)
}

// Process is a running client subprocess with merged stdout/stderr
type Process interface {
	// Output streams the merged console output; it reaches EOF after exit
	Output() io.Reader

	// Done is closed once the process has exited and its output is drained
	Done() <-chan struct{}

	// Result returns the exit code and any wait error; valid after Done
	Result() (int, error)

	// Kill terminates the process and unblocks Output
	Kill() error
}
