package main

import (
	"fmt"

	"github.com/ochairo/saclient/internal/domain-adapters/gateways"
	"github.com/ochairo/saclient/internal/domain-adapters/progress"
	orchestrators "github.com/ochairo/saclient/internal/domain-orchestrators"
	gatewayifaces "github.com/ochairo/saclient/internal/domain/interfaces/gateways"
	"github.com/ochairo/saclient/internal/external-adapters/gpg"
)

// newClientRunner wires the runner to the host, the filesystem and the service
func (a *app) newClientRunner() (*orchestrators.ClientRunner, error) {
	cfg := a.cfg
	platform := gateways.NewHostPlatform()

	service := gateways.NewServiceClient(gateways.ServiceClientConfig{
		BaseURL:         cfg.Service.URL,
		Token:           cfg.Service.Token,
		OS:              platform.ServiceOS(),
		Timeout:         cfg.Service.Timeout,
		RetryCount:      cfg.Service.RetryCount,
		MaxPackageBytes: cfg.MaxPackageBytes(),
	})

	var verifiers []gatewayifaces.PackageVerifier
	if cfg.Verify.SHA256 != "" {
		verifiers = append(verifiers, gateways.NewChecksumVerifier(cfg.Verify.SHA256))
	}
	if cfg.Verify.KeyFile != "" {
		verifier := gpg.NewVerifier(cfg.Verify.SignatureURL)
		if err := verifier.ImportKeyFromFile(cfg.Verify.KeyFile); err != nil {
			return nil, fmt.Errorf("failed to load verification key: %w", err)
		}
		verifiers = append(verifiers, verifier)
	}

	return orchestrators.NewClientRunner(orchestrators.ClientRunnerDeps{
		Store:     gateways.NewInstallStore(cfg.InstallDir),
		Fetcher:   service,
		Versions:  service,
		Extractor: gateways.NewZipExtractor(),
		Platform:  platform,
		Launcher:  gateways.NewProcessLauncher(nil),
		Progress:  progress.NewLoggerProgress(a.logger),
		Logger:    a.logger,
	}, orchestrators.ClientRunnerConfig{
		InstallDir:      cfg.InstallDir,
		SkipUpdateCheck: cfg.SkipUpdateCheck,
		Verifiers:       verifiers,
	})
}
