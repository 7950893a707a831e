package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ochairo/saclient/internal/config"
	"github.com/ochairo/saclient/internal/domain/entities"
	"github.com/ochairo/saclient/internal/domain/interfaces"
	"github.com/ochairo/saclient/internal/external-adapters/logging"
	"github.com/ochairo/saclient/internal/external-adapters/yaml"
)

// Process exit codes besides the client's own
const (
	exitError       = 1
	exitInterrupted = 130
)

// app carries state shared by the subcommands of one invocation
type app struct {
	flags    config.Config
	cfg      *config.Config
	logger   interfaces.Logger
	logClose io.Closer
	stdout   io.Writer
	stderr   io.Writer
	exitCode int
}

// execute runs the CLI with args and returns the process exit code
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if a.logClose != nil {
		_ = a.logClose.Close()
	}
	if err != nil {
		var scannerErr *entities.ScannerError
		if errors.As(err, &scannerErr) {
			fmt.Fprintf(stderr, "Error: %s\n", scannerErr.Message)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		if a.exitCode == 0 {
			return exitError
		}
	}
	return a.exitCode
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "saclient",
		Short: "saclient - static analysis client bootstrapper",
		Long: `saclient installs, updates and runs the SAClientUtil static analysis client.

The client is downloaded into the install directory on first use and replaced
whenever the analysis service publishes a newer version.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.flags.ConfigFile, "config", "", "YAML settings file (default <install-dir>/saclient.yaml)")
	flags.StringVar(&a.flags.InstallDir, "install-dir", "", "Client install directory (default ~/.appscan)")
	flags.StringVar(&a.flags.Log.Level, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&a.flags.Log.Format, "log-format", "", "Log format: text or json")
	flags.StringVar(&a.flags.Log.File, "log-file", "", "Also write logs to this rotating file")
	flags.BoolVar(&a.flags.SkipUpdateCheck, "skip-update-check", false, "Use an existing install without checking for updates")

	root.AddCommand(
		a.runCommand(),
		a.installCommand(),
		a.versionCommand(),
		a.prepareCommand(),
	)
	return root
}

// setup loads configuration and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	src := config.Sources{
		Flags:     &a.flags,
		ParseFile: yaml.NewConfigParser().ParseFile,
	}
	if cmd.Flags().Changed("skip-update-check") {
		skip := a.flags.SkipUpdateCheck
		src.SkipUpdateCheck = &skip
	}

	cfg, err := config.Load(src)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Out:    a.stderr,
	})
	if err != nil {
		return err
	}
	a.logger = logger.With(interfaces.F("run_id", uuid.NewString()))
	a.logClose = closer

	a.logger.Debug("Configuration loaded",
		interfaces.F("install_dir", cfg.InstallDir),
		interfaces.F("service_url", cfg.Service.URL),
		interfaces.F("config_file", cfg.ConfigFile),
	)
	return nil
}

// clientExitCode maps a runner result onto a process exit code
func clientExitCode(code int) int {
	if code == entities.ExitInterrupted {
		return exitInterrupted
	}
	return code
}
