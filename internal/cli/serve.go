package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ironsheep/edgedraw/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Long: `Run edgedraw as an MCP (Model Context Protocol) server. Requests are read
from stdin, responses written to stdout, logs go to stderr. Configure it in
your MCP client as a stdio server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := a.cfg.EdgeOptions()
			if err != nil {
				return err
			}

			if a.cfg.Debug() {
				log.Printf("edgedraw MCP server %s (built %s, commit %s)",
					a.build.Version, a.build.BuildTime, a.build.GitCommit)
			}

			srv := server.New(server.Options{
				Defaults: defaults,
				Version:  a.build.Version,
				Debug:    a.cfg.Debug(),
			})
			return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
