package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"realmctl/internal/config"
	"realmctl/internal/tui"
	"realmctl/pkg/logging"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [region...]",
		Short: "Watch realm status in an interactive TUI",
		Long: `Opens a terminal UI with one tab per region. Each tab runs its own
fetch pipeline; column keys re-sort the already-fetched rows without
touching the network. Editing the config file while the TUI is running
reloads it and restarts every region's pipeline.`,
		RunE: runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	configPath := cfgFile
	if configPath == "" {
		// Watch the default location even before the file exists.
		if p, err := config.UserConfigPath(); err == nil {
			configPath = p
		}
	}

	logChan := logging.InitForTUI(logging.LevelInfo)
	defer logging.CloseTUIChannel()

	m, err := tui.NewModel(tui.Options{
		Config:     cfg,
		Token:      config.ResolveToken(tokenFlag),
		ConfigPath: configPath,
		Regions:    args,
		LogChan:    logChan,
	})
	if err != nil {
		return err
	}

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
