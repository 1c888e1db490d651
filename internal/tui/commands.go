package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"realmctl/internal/config"
	"realmctl/internal/realm"
	"realmctl/pkg/logging"
)

// fetchRegionCmd returns a tea.Cmd running the full pipeline for one region.
// The generation token travels with the result so the update loop can drop
// anything superseded by a newer reload.
func fetchRegionCmd(region string, generation int, p realm.Params, interval time.Duration) tea.Cmd {
	return func() tea.Msg {
		rows, skipped, err := realm.FetchRows(context.Background(), p, interval)
		return pipelineResultMsg{
			region:     region,
			generation: generation,
			rows:       rows,
			skipped:    skipped,
			err:        err,
		}
	}
}

// readLogCmd waits for the next entry on the logging channel.
func readLogCmd(ch <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return logChannelClosedMsg{}
		}
		return logEntryMsg(entry)
	}
}

// watchConfigCmd waits for the next write to the config file. Events for
// other files in the watched directory are ignored.
func watchConfigCmd(w *fsnotify.Watcher, configPath string) tea.Cmd {
	if w == nil {
		return nil
	}
	base := filepath.Base(configPath)
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					return configChangedMsg{}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				logging.Warn("tui", "config watcher error: %v", err)
			}
		}
	}
}

// loadConfigCmd re-reads the config file.
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.Load(path)
		return configLoadedMsg{cfg: cfg, err: err}
	}
}

// copyRowCmd copies one realm row to the system clipboard.
func copyRowCmd(row realm.RealmRow) tea.Cmd {
	return func() tea.Msg {
		text := fmt.Sprintf("%s\t%s\t%s\t%s\tqueue=%v",
			row.Realm, row.RealmType, row.StatusName, row.PopulationName, row.HasQueue)
		err := clipboard.WriteAll(text)
		return rowCopiedMsg{realmName: row.Realm, err: err}
	}
}

// clearStatusCmd clears the status bar after the message TTL.
func clearStatusCmd() tea.Cmd {
	return tea.Tick(statusMessageTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
