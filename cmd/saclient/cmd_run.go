package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func (a *app) runCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "run [-- client arguments...]",
		Short: "Run the static analysis client",
		Long: `Run the static analysis client with the given arguments, installing or
updating it first. default_args from the configuration are prepended.
saclient exits with the client's exit code.`,
		Example: `  saclient run -- prepare -n myapp
  saclient run --dir ./service -- analyze -o results.irx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("failed to resolve working directory: %w", err)
			}

			defaults, err := a.cfg.DefaultArguments()
			if err != nil {
				return err
			}

			runner, err := a.newClientRunner()
			if err != nil {
				return err
			}

			code, err := runner.Run(cmd.Context(), workDir, append(defaults, args...))
			if err != nil {
				return err
			}
			a.exitCode = clientExitCode(code)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&dir, "dir", ".", "Working directory for the client")

	return cmd
}
