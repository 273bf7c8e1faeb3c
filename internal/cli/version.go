package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// version must work without a readable config
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "edgedraw %s\n", a.build.Version)
			fmt.Fprintf(out, "  Build time: %s\n", a.build.BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", a.build.GitCommit)
		},
	}
}
