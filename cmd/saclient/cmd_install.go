package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) installCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install or update the static analysis client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := a.newClientRunner()
			if err != nil {
				return err
			}

			script, err := runner.ClientScript(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(a.stdout, script)
			return nil
		},
	}
}
