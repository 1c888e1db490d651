package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"realmctl/internal/config"
	"realmctl/internal/mcpserver"
	"realmctl/pkg/logging"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve realm status as MCP tools over stdio",
		Long: `Runs a Model Context Protocol server on stdin/stdout, exposing
list_regions and realm_status tools. Intended to be launched by an MCP
client (e.g. an AI assistant integration), not interactively.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Stdout belongs to the MCP transport; log to stderr only.
			logging.InitForCLI(logging.LevelWarn, os.Stderr)

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			srv := mcpserver.New(cfg, config.ResolveToken(tokenFlag), rootCmd.Version)
			return srv.Serve()
		},
	}
}
