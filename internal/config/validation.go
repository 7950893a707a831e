package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kballard/go-shellquote"
)

func (c *Config) validate() error {
	if strings.TrimSpace(c.InstallDir) == "" {
		return ErrInvalidInstallDir
	}

	u, err := url.Parse(c.Service.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: service url %q", ErrInvalidService, c.Service.URL)
	}
	if c.Service.RetryCount < 0 || c.Service.MaxPackageMB < 0 || c.Service.Timeout < 0 {
		return fmt.Errorf("%w: negative limits", ErrInvalidService)
	}

	if (c.Verify.KeyFile == "") != (c.Verify.SignatureURL == "") {
		return fmt.Errorf("%w: key_file and signature_url must be set together", ErrInvalidVerify)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidLog, c.Log.Format)
	}

	if _, err := shellquote.Split(c.DefaultArgs); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	return nil
}
