package gateways

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ochairo/saclient/internal/domain/entities"
)

// Service paths, relative to the configured base URL
const (
	packagePath = "/api/v4/Tools/SAClientUtil"
	versionPath = "/api/v4/Tools/SAClientUtil/Version"
)

// DefaultMaxPackageBytes caps a package download when no limit is configured
const DefaultMaxPackageBytes int64 = 1 << 30

// ServiceClientConfig configures the analysis service client
type ServiceClientConfig struct {
	BaseURL         string
	Token           string
	OS              string // service platform key: win, mac or linux
	Timeout         time.Duration
	RetryCount      int
	MaxPackageBytes int64
}

// ServiceClient fetches the client package and its published version
type ServiceClient struct {
	client   *resty.Client
	os       string
	maxBytes int64
}

// NewServiceClient creates a service client
func NewServiceClient(cfg ServiceClientConfig) *ServiceClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("User-Agent", "saclient/1.0").
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(time.Second).
		SetRetryMaxWaitTime(10 * time.Second)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}

	maxBytes := cfg.MaxPackageBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxPackageBytes
	}

	return &ServiceClient{
		client:   client,
		os:       cfg.OS,
		maxBytes: maxBytes,
	}
}

// FetchPackage streams the client package for this platform to dest
func (c *ServiceClient) FetchPackage(ctx context.Context, dest string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("os", c.os).
		SetDoNotParseResponse(true).
		Get(packagePath)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	body := resp.RawBody()
	//nolint:errcheck // Defer close on HTTP response body
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode(), resp.Status())
	}

	//nolint:gosec // G304: dest is the package path under the install directory
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	// Read one byte past the limit to detect oversized packages
	written, copyErr := io.Copy(out, io.LimitReader(body, c.maxBytes+1))
	closeErr := out.Close()

	switch {
	case copyErr != nil:
		_ = os.Remove(dest)
		if errors.Is(copyErr, syscall.ENOSPC) {
			return fmt.Errorf("%w: %v", entities.ErrResourceExhausted, copyErr)
		}
		return fmt.Errorf("failed to write file: %w", copyErr)
	case written > c.maxBytes:
		_ = os.Remove(dest)
		return fmt.Errorf("%w: package exceeds %d bytes", entities.ErrResourceExhausted, c.maxBytes)
	case closeErr != nil:
		_ = os.Remove(dest)
		if errors.Is(closeErr, syscall.ENOSPC) {
			return fmt.Errorf("%w: %v", entities.ErrResourceExhausted, closeErr)
		}
		return fmt.Errorf("failed to close file: %w", closeErr)
	}

	return nil
}

// LatestVersion returns the published client version, or "" if none is published
func (c *ServiceClient) LatestVersion(ctx context.Context) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json, text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusNoContent, http.StatusNotFound:
		return "", nil
	default:
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode(), resp.Status())
	}

	return parseVersionBody(resp.Body()), nil
}

// parseVersionBody accepts {"Version":"x.y.z"}, a bare JSON string or plain text
func parseVersionBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return ""
	}

	var obj struct {
		Version string `json:"Version"`
	}
	if json.Unmarshal([]byte(s), &obj) == nil && obj.Version != "" {
		return strings.TrimSpace(obj.Version)
	}

	var str string
	if json.Unmarshal([]byte(s), &str) == nil {
		return strings.TrimSpace(str)
	}

	return strings.TrimSpace(strings.SplitN(s, "\n", 2)[0])
}
