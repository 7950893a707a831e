// Package gpg provides GPG signature verification capabilities.
package gpg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/go-resty/resty/v2"
)

// maxSignatureBytes bounds a detached signature (they are typically < 1KB)
const maxSignatureBytes = 10 * 1024

const armoredSignaturePrefix = "-----BEGIN PGP SIGNATURE---"

// Verifier checks a detached OpenPGP signature over the downloaded package.
// It uses ProtonMail's go-crypto, a maintained fork of x/crypto/openpgp.
type Verifier struct {
	keyring   openpgp.EntityList
	signature string // http(s) URL or local path
	client    *resty.Client
}

// NewVerifier creates a verifier for the signature at signature
func NewVerifier(signature string) *Verifier {
	return &Verifier{
		keyring:   make(openpgp.EntityList, 0),
		signature: signature,
		client:    resty.New().SetTimeout(30 * time.Second),
	}
}

// ImportKeyFromFile imports a GPG key from a file
func (v *Verifier) ImportKeyFromFile(keyPath string) error {
	//nolint:gosec // G304: keyPath is user-provided for GPG key import
	f, err := os.Open(keyPath)
	if err != nil {
		return fmt.Errorf("failed to open key file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer f.Close()

	entities, err := openpgp.ReadArmoredKeyRing(f)
	if err != nil {
		// Try reading as binary
		if _, seekErr := f.Seek(0, io.SeekStart); seekErr != nil {
			return fmt.Errorf("failed to reset file: %w", seekErr)
		}
		entities, err = openpgp.ReadKeyRing(f)
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
	}

	if len(entities) == 0 {
		return fmt.Errorf("no keys found in file")
	}

	v.keyring = append(v.keyring, entities...)
	return nil
}

// Verify checks the package at packagePath against the detached signature
func (v *Verifier) Verify(ctx context.Context, packagePath string) error {
	if len(v.keyring) == 0 {
		return fmt.Errorf("no GPG keys imported, call ImportKeyFromFile first")
	}

	sigData, err := v.loadSignature(ctx)
	if err != nil {
		return err
	}

	// Security: Basic format validation
	if len(sigData) < 10 {
		return fmt.Errorf("signature file too small to be valid GPG signature")
	}

	//nolint:gosec // G304: packagePath is the downloaded package under the install directory
	f, err := os.Open(packagePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer f.Close()

	if bytes.HasPrefix(sigData, []byte(armoredSignaturePrefix)) {
		_, err = openpgp.CheckArmoredDetachedSignature(v.keyring, f, bytes.NewReader(sigData), nil)
	} else {
		_, err = openpgp.CheckDetachedSignature(v.keyring, f, bytes.NewReader(sigData), nil)
	}
	if err != nil {
		return fmt.Errorf("signature verification failed: %w", err)
	}

	return nil
}

// KeyringSize returns the number of keys in the keyring
func (v *Verifier) KeyringSize() int {
	return len(v.keyring)
}

func (v *Verifier) loadSignature(ctx context.Context) ([]byte, error) {
	if !strings.HasPrefix(v.signature, "http://") && !strings.HasPrefix(v.signature, "https://") {
		//nolint:gosec // G304: signature path is user-provided for GPG verification
		f, err := os.Open(v.signature)
		if err != nil {
			return nil, fmt.Errorf("failed to open signature file: %w", err)
		}
		//nolint:errcheck // Defer close
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, maxSignatureBytes))
		if err != nil {
			return nil, fmt.Errorf("failed to read signature: %w", err)
		}
		return data, nil
	}

	resp, err := v.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(v.signature)
	if err != nil {
		return nil, fmt.Errorf("failed to download signature: %w", err)
	}
	body := resp.RawBody()
	//nolint:errcheck // Defer close
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("signature download failed with status %d", resp.StatusCode())
	}

	// Security: Limit signature size to prevent DoS via large signature files
	data, err := io.ReadAll(io.LimitReader(body, maxSignatureBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read signature: %w", err)
	}
	return data, nil
}
