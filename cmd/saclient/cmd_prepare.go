package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func (a *app) prepareCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "prepare <name> [-- extra client arguments...]",
		Short: "Generate an IRX file with the static analysis client",
		Long: `Run "prepare -n <name>" with the static analysis client and print the path
of the generated <name>.irx file.`,
		Args: cobra.MinimumNArgs(1),
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

			irx, err := runner.Prepare(cmd.Context(), workDir, args[0], append(defaults, args[1:]...))
			if err != nil {
				if cmd.Context().Err() != nil {
					a.exitCode = exitInterrupted
				}
				return err
			}

			fmt.Fprintln(a.stdout, irx)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&dir, "dir", ".", "Working directory for the client")

	return cmd
}
