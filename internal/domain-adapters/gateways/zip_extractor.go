package gateways

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ochairo/saclient/internal/domain/entities"
)

// maxEntryBytes bounds a single extracted file (decompression bomb guard)
const maxEntryBytes = 1 << 30

// ZipExtractor unpacks client packages
type ZipExtractor struct {
	maxEntry int64
}

// NewZipExtractor creates a new zip extractor
func NewZipExtractor() *ZipExtractor {
	return &ZipExtractor{maxEntry: maxEntryBytes}
}

// Extract unpacks archivePath into destDir
func (e *ZipExtractor) Extract(ctx context.Context, archivePath, destDir string) error {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open zip: %w", err)
	}
	//nolint:errcheck // Defer close on read-only archive
	defer zr.Close()

	if err := os.MkdirAll(destDir, 0750); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}
	cleanDest := filepath.Clean(destDir)

	for _, f := range zr.File {
		if err := ctx.Err(); err != nil {
			return err
		}

		//nolint:gosec // G305: Path traversal validated below
		target := filepath.Join(destDir, f.Name)

		// Ensure target is within destDir (security check)
		if target != cleanDest && !strings.HasPrefix(target, cleanDest+string(os.PathSeparator)) {
			return fmt.Errorf("invalid file path in archive: %s", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0750); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
			continue
		}

		if err := e.extractFile(f, target); err != nil {
			return err
		}
	}

	return nil
}

func (e *ZipExtractor) extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open %s in archive: %w", f.Name, err)
	}
	//nolint:errcheck // Defer close on archive entry
	defer rc.Close()

	//nolint:gosec // G304: target validated against destDir by the caller
	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, entryMode(f))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	// Read one byte past the limit so oversized entries are rejected, not truncated
	written, err := io.Copy(out, io.LimitReader(rc, e.maxEntry+1))
	if err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if written > e.maxEntry {
		_ = os.Remove(target)
		return fmt.Errorf("%w: %s exceeds %d bytes", entities.ErrResourceExhausted, f.Name, e.maxEntry)
	}

	return nil
}

// entryMode keeps archived permissions. Archives built on Windows carry no
// unix mode, so shell scripts are made executable explicitly.
func entryMode(f *zip.File) os.FileMode {
	mode := f.Mode().Perm()
	if mode == 0 {
		mode = 0644
	}
	if strings.HasSuffix(f.Name, ".sh") {
		mode |= 0111
	}
	return mode
}
