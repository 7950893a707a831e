package orchestrators

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/ochairo/saclient/internal/domain/entities"
	"github.com/ochairo/saclient/internal/domain/interfaces"
	"github.com/ochairo/saclient/internal/domain/interfaces/gateways"
	"github.com/ochairo/saclient/internal/domain/services"
)

// exitNotStarted is returned with an error when the client never ran
const exitNotStarted = -1

// defaultReaderJoinTimeout bounds the wait for the output reader after a kill
const defaultReaderJoinTimeout = 5 * time.Second

// maxLineBytes is the longest client output line forwarded as one message
const maxLineBytes = 1 << 20

// ClientRunnerDeps holds the collaborators of a ClientRunner
type ClientRunnerDeps struct {
	Store     gateways.InstallStore
	Fetcher   gateways.PackageFetcher
	Versions  gateways.VersionQuery
	Extractor gateways.Extractor
	Platform  gateways.PlatformDetector
	Launcher  gateways.ProcessLauncher
	Progress  interfaces.Progress
	Logger    interfaces.Logger
}

// ClientRunnerConfig holds configuration for the runner
type ClientRunnerConfig struct {
	// InstallDir is where packages are downloaded and extracted
	InstallDir string
	// SkipUpdateCheck uses any runnable install without querying the service
	SkipUpdateCheck bool
	// Verifiers check the downloaded package before extraction, in order
	Verifiers []gateways.PackageVerifier
	// ReaderJoinTimeout bounds the output reader join after cancellation
	ReaderJoinTimeout time.Duration
}

// ClientRunner installs, updates and launches the static analysis client
type ClientRunner struct {
	store       gateways.InstallStore
	fetcher     gateways.PackageFetcher
	versions    gateways.VersionQuery
	extractor   gateways.Extractor
	platform    gateways.PlatformDetector
	launcher    gateways.ProcessLauncher
	progress    interfaces.Progress
	logger      interfaces.Logger
	installDir  string
	skipUpdate  bool
	verifiers   []gateways.PackageVerifier
	joinTimeout time.Duration
}

// NewClientRunner creates a client runner
func NewClientRunner(deps ClientRunnerDeps, cfg ClientRunnerConfig) (*ClientRunner, error) {
	if strings.TrimSpace(cfg.InstallDir) == "" {
		return nil, fmt.Errorf("install directory is required")
	}
	if deps.Store == nil || deps.Fetcher == nil || deps.Versions == nil ||
		deps.Extractor == nil || deps.Platform == nil || deps.Launcher == nil || deps.Progress == nil {
		return nil, fmt.Errorf("client runner is missing a collaborator")
	}

	logger := deps.Logger
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	joinTimeout := cfg.ReaderJoinTimeout
	if joinTimeout <= 0 {
		joinTimeout = defaultReaderJoinTimeout
	}

	return &ClientRunner{
		store:       deps.Store,
		fetcher:     deps.Fetcher,
		versions:    deps.Versions,
		extractor:   deps.Extractor,
		platform:    deps.Platform,
		launcher:    deps.Launcher,
		progress:    deps.Progress,
		logger:      logger,
		installDir:  cfg.InstallDir,
		skipUpdate:  cfg.SkipUpdateCheck,
		verifiers:   cfg.Verifiers,
		joinTimeout: joinTimeout,
	}, nil
}

// Run launches the client script with args in workingDir, forwards each
// output line to the progress sink and returns the client's exit code.
//
// Cancelling ctx kills the client and returns entities.ExitInterrupted with
// a nil error. If the client cannot be resolved or started, Run returns -1
// and the error.
func (r *ClientRunner) Run(ctx context.Context, workingDir string, args []string) (int, error) {
	script, install, err := r.resolve(ctx)
	if err != nil {
		return exitNotStarted, err
	}

	inv := entities.Invocation{Script: script, WorkingDir: workingDir, Args: args}
	r.progress.SetStatus(entities.Info(fmt.Sprintf(msgPreparing, r.localVersion(install))))
	r.logger.Debug("Launching static analysis client",
		interfaces.F("command", shellquote.Join(inv.Argv()...)),
		interfaces.F("dir", workingDir),
	)

	proc, err := r.launcher.Start(inv)
	if err != nil {
		r.progress.SetError(err)
		return exitNotStarted, err
	}

	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		r.forwardOutput(proc.Output())
	}()

	select {
	case <-ctx.Done():
		r.progress.SetStatus(entities.Error(msgInterrupted))
		if err := proc.Kill(); err != nil {
			r.logger.Warn("Failed to stop static analysis client", interfaces.Err(err))
		}
		r.joinReader(readerDone)
		return entities.ExitInterrupted, nil

	case <-proc.Done():
		<-readerDone
	}

	code, err := proc.Result()
	if err != nil {
		err = fmt.Errorf("failed waiting for static analysis client: %w", err)
		r.progress.SetError(err)
		return code, err
	}

	r.logger.Debug("Static analysis client exited", interfaces.F("exit_code", code))
	return code, nil
}

// ClientScript returns the absolute path of the client entry script,
// downloading and extracting the client first when it is missing or outdated
func (r *ClientRunner) ClientScript(ctx context.Context) (string, error) {
	script, _, err := r.resolve(ctx)
	return script, err
}

// ShouldUpdate reports whether the published client is newer than install.
// Missing or unreadable versions never force an update.
func (r *ClientRunner) ShouldUpdate(ctx context.Context, install *entities.ClientInstall) bool {
	if r.skipUpdate || install == nil {
		return false
	}

	local := r.localVersion(install)
	if local == "" {
		return false
	}

	remote, err := r.versions.LatestVersion(ctx)
	if err != nil {
		r.progress.SetStatus(entities.Error(fmt.Sprintf(msgRemoteVersionError, err)))
		return false
	}

	update, err := services.NeedsUpdate(local, remote)
	if err != nil {
		r.progress.SetStatus(entities.Error(fmt.Sprintf(msgVersionCompare, err)))
		return false
	}
	if update {
		r.progress.SetStatus(entities.Info(fmt.Sprintf(msgOutdated, local, remote)))
	}
	return update
}

// Status describes the local install and the published client without
// downloading anything
func (r *ClientRunner) Status(ctx context.Context) (*entities.ClientStatus, error) {
	status := &entities.ClientStatus{InstallDir: r.installDir}

	install, err := r.findInstall()
	if err != nil {
		return nil, err
	}
	status.Install = install

	if install != nil {
		if script := install.ScriptPath(r.scriptRelPath()); r.store.IsFile(script) {
			status.ScriptPath = script
		}
		status.LocalVersion = r.localVersion(install)
	}

	if r.skipUpdate {
		return status, nil
	}

	remote, err := r.versions.LatestVersion(ctx)
	if err != nil {
		r.progress.SetStatus(entities.Error(fmt.Sprintf(msgRemoteVersionError, err)))
		return status, nil
	}
	status.RemoteVersion = remote

	if status.Installed() {
		update, err := services.NeedsUpdate(status.LocalVersion, remote)
		if err != nil {
			r.progress.SetStatus(entities.Error(fmt.Sprintf(msgVersionCompare, err)))
		}
		status.UpdateAvailable = update
	}

	return status, nil
}

// Prepare runs "prepare -n name" in workingDir and returns the path of the
// generated <name>.irx file
func (r *ClientRunner) Prepare(ctx context.Context, workingDir, name string, extra []string) (string, error) {
	args := append([]string{"prepare", "-n", name}, extra...)

	code, err := r.Run(ctx, workingDir, args)
	if err != nil {
		return "", err
	}
	if ctx.Err() != nil && code == entities.ExitInterrupted {
		return "", fmt.Errorf("%w: %w", entities.ErrInterrupted, ctx.Err())
	}
	if code != 0 {
		serr := entities.NewScannerError(msgGeneratingIRX, fmt.Errorf("%w: exit code %d", entities.ErrGeneratingIRX, code))
		r.progress.SetError(serr)
		return "", serr
	}

	irx := filepath.Join(workingDir, name+entities.IRXExtension)
	if !r.store.IsFile(irx) {
		serr := entities.NewScannerError(fmt.Sprintf(msgIRXMissing, irx), entities.ErrIRXMissing)
		r.progress.SetError(serr)
		return "", serr
	}

	r.progress.SetStatus(entities.Info(fmt.Sprintf(msgIRXGenerated, irx)))
	return irx, nil
}

// resolve returns the entry script of a current install, replacing the
// install first when it is missing, has no script, or is outdated
func (r *ClientRunner) resolve(ctx context.Context) (string, *entities.ClientInstall, error) {
	scriptRel := r.scriptRelPath()

	install, err := r.findInstall()
	if err != nil {
		return "", nil, err
	}
	if install != nil && r.store.IsFile(install.ScriptPath(scriptRel)) && !r.ShouldUpdate(ctx, install) {
		return install.ScriptPath(scriptRel), install, nil
	}

	if err := r.install(ctx, install); err != nil {
		return "", nil, err
	}

	install, _, err = r.store.FindInstall()
	if err != nil {
		err = fmt.Errorf("failed to locate static analysis client: %w", err)
		r.progress.SetError(err)
		return "", nil, err
	}
	if install == nil {
		r.progress.SetError(entities.ErrClientNotInstalled)
		return "", nil, entities.ErrClientNotInstalled
	}

	return install.ScriptPath(scriptRel), install, nil
}

// install replaces stale with a freshly downloaded client package
func (r *ClientRunner) install(ctx context.Context, stale *entities.ClientInstall) error {
	r.progress.SetStatus(entities.Info(msgDownloading))

	if err := r.store.EnsureDir(); err != nil {
		r.progress.SetError(err)
		return err
	}

	if stale != nil {
		if err := r.store.RemoveInstall(ctx, stale); err != nil {
			r.progress.SetStatus(entities.Warn(fmt.Sprintf(msgRemoveFailed, err)))
		}
	}
	if err := r.store.RemovePackage(); err != nil {
		r.progress.SetStatus(entities.Warn(fmt.Sprintf(msgRemoveFailed, err)))
	}

	pkg := r.store.PackagePath()
	start := time.Now()
	if err := r.fetcher.FetchPackage(ctx, pkg); err != nil {
		if errors.Is(err, entities.ErrResourceExhausted) {
			serr := entities.NewScannerError(msgOutOfMemory, fmt.Errorf("%w: %w", entities.ErrDownloadOutOfMemory, err))
			r.progress.SetError(serr)
			return serr
		}
		err = fmt.Errorf("failed to download static analysis client: %w", err)
		r.progress.SetError(err)
		return err
	}

	if !r.store.IsFile(pkg) {
		return nil
	}

	r.logger.Debug("Downloaded static analysis client", interfaces.F("duration", time.Since(start).String()))
	r.progress.SetStatus(entities.Info(msgDownloadComplete))

	for _, v := range r.verifiers {
		if err := v.Verify(ctx, pkg); err != nil {
			err = fmt.Errorf("failed to verify static analysis client package: %w", err)
			r.progress.SetError(err)
			return err
		}
	}

	r.progress.SetStatus(entities.Info(msgExtracting))
	if err := r.extractor.Extract(ctx, pkg, r.installDir); err != nil {
		err = fmt.Errorf("failed to extract static analysis client: %w", err)
		r.progress.SetError(err)
		return err
	}
	r.progress.SetStatus(entities.Info(msgDone))

	return nil
}

// findInstall looks up the current install and warns about extra matches
func (r *ClientRunner) findInstall() (*entities.ClientInstall, error) {
	install, others, err := r.store.FindInstall()
	if err != nil {
		err = fmt.Errorf("failed to locate static analysis client: %w", err)
		r.progress.SetError(err)
		return nil, err
	}
	if install != nil && len(others) > 0 {
		r.progress.SetStatus(entities.Warn(fmt.Sprintf(msgMultipleInstalls, install.Name, strings.Join(others, ", "))))
	}
	return install, nil
}

// localVersion reads the install's version, reporting failures as errors
func (r *ClientRunner) localVersion(install *entities.ClientInstall) string {
	version, err := r.store.LocalVersion(install)
	if err != nil {
		r.progress.SetStatus(entities.Error(fmt.Sprintf(msgLocalVersionError, err)))
		return ""
	}
	return version
}

func (r *ClientRunner) scriptRelPath() string {
	return entities.ScriptRelPath(r.platform.IsWindows())
}

// forwardOutput sends each output line to the progress sink in order. The
// stream is always drained so the client never blocks on a full pipe.
func (r *ClientRunner) forwardOutput(out io.Reader) {
	scanner := bufio.NewScanner(out)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		r.progress.SetStatus(entities.Info(scanner.Text()))
	}

	err := scanner.Err()
	if err == nil || errors.Is(err, io.ErrClosedPipe) {
		return
	}
	r.progress.SetError(fmt.Errorf("failed to read static analysis client output: %w", err))
	_, _ = io.Copy(io.Discard, out)
}

func (r *ClientRunner) joinReader(done <-chan struct{}) {
	timer := time.NewTimer(r.joinTimeout)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		r.logger.Warn("Output reader did not stop in time")
	}
}
