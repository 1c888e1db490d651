package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string // --config
	tokenFlag string // --token
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "realmctl",
	Short: "Watch connected-realm status from your terminal",
	Long: `realmctl fetches connected-realm ("server cluster") status from the
game-data API and presents one sortable row per realm, either in an
interactive TUI (one tab per region) or as a one-shot table.

The API credential is read from --token, the BNET_TOKEN environment
variable, or a .env file in the working directory.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid arguments, failed fetches)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "realmctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/realmctl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "API bearer token (overrides BNET_TOKEN)")

	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
