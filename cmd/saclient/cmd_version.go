package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show installed and latest static analysis client versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := a.newClientRunner()
			if err != nil {
				return err
			}

			status, err := runner.Status(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Install directory:\t%s\n", status.InstallDir)
			if status.Install == nil {
				fmt.Fprintf(w, "Installed:\tno\n")
			} else {
				fmt.Fprintf(w, "Installed:\t%s\n", status.Install.Path)
				fmt.Fprintf(w, "Script:\t%s\n", orNone(status.ScriptPath))
				fmt.Fprintf(w, "Local version:\t%s\n", orNone(status.LocalVersion))
			}
			fmt.Fprintf(w, "Latest version:\t%s\n", orNone(status.RemoteVersion))
			fmt.Fprintf(w, "Update available:\t%t\n", status.UpdateAvailable)
			return w.Flush()
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
