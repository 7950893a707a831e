package entities

import "errors"

// Sentinel errors shared by the runner and its gateways
var (
	// ErrResourceExhausted is returned by fetchers when a download runs out of
	// memory or disk, or exceeds the configured package size.
	ErrResourceExhausted = errors.New("resource exhausted")
	// ErrDownloadOutOfMemory marks a ScannerError raised for ErrResourceExhausted.
	ErrDownloadOutOfMemory = errors.New("out of memory downloading the static analysis client")
	// ErrClientNotInstalled means no client install exists after extraction.
	ErrClientNotInstalled = errors.New("static analysis client is not installed")
	// ErrUnparsableVersion means a version component is not an integer.
	ErrUnparsableVersion = errors.New("unparsable version")
	// ErrInterrupted means the wait for the client was cancelled.
	ErrInterrupted = errors.New("interrupted while waiting for the static analysis client")
	// ErrGeneratingIRX means the client exited non-zero while preparing an IRX file.
	ErrGeneratingIRX = errors.New("error generating IRX file")
	// ErrIRXMissing means the client finished but no IRX file was produced.
	ErrIRXMissing = errors.New("IRX file not found")
)

// ScannerError is a tool-specific failure carrying a user-facing message
type ScannerError struct {
	Message string
	Err     error
}

// NewScannerError wraps err with a user-facing message
func NewScannerError(message string, err error) *ScannerError {
	return &ScannerError{Message: message, Err: err}
}

func (e *ScannerError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ScannerError) Unwrap() error {
	return e.Err
}
