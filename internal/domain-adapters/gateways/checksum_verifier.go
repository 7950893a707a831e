package gateways

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// ChecksumVerifier checks a downloaded package against a pinned SHA-256 digest
type ChecksumVerifier struct {
	expected string
}

// NewChecksumVerifier creates a verifier for the expected hex digest
func NewChecksumVerifier(expected string) *ChecksumVerifier {
	return &ChecksumVerifier{expected: strings.ToLower(strings.TrimSpace(expected))}
}

// Verify verifies the package's SHA256 checksum
func (v *ChecksumVerifier) Verify(_ context.Context, packagePath string) error {
	actual, err := CalculateChecksum(packagePath)
	if err != nil {
		return err
	}

	if actual != v.expected {
		return fmt.Errorf("checksum mismatch: expected %s, got %s", v.expected, actual)
	}

	return nil
}

// CalculateChecksum calculates the SHA256 checksum of a file
func CalculateChecksum(filePath string) (string, error) {
	//nolint:gosec // G304: File path is the downloaded package
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
