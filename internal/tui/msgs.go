package tui

import (
	"realmctl/internal/config"
	"realmctl/internal/realm"
	"realmctl/pkg/logging"
)

// pipelineResultMsg carries one region's completed pipeline run back into
// the update loop. The generation token is matched against the panel's
// controller; stale results are dropped there.
type pipelineResultMsg struct {
	region     string
	generation int
	rows       []realm.RealmRow
	skipped    int
	err        error
}

// logEntryMsg delivers one entry from the logging channel.
type logEntryMsg logging.LogEntry

// logChannelClosedMsg signals that the logging channel was closed.
type logChannelClosedMsg struct{}

// configChangedMsg signals that the watched config file was modified.
type configChangedMsg struct{}

// configLoadedMsg carries the result of re-reading the config file.
type configLoadedMsg struct {
	cfg config.Config
	err error
}

// rowCopiedMsg reports the outcome of copying a row to the clipboard.
type rowCopiedMsg struct {
	realmName string
	err       error
}

// clearStatusMsg clears the transient status bar message.
type clearStatusMsg struct{}
