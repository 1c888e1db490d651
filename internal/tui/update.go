package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"realmctl/internal/panel"
	"realmctl/internal/realm"
	"realmctl/pkg/logging"
)

// Update is the heart of the Bubbletea program, handling all incoming messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pipelineResultMsg:
		return m.handlePipelineResult(msg)

	case logEntryMsg:
		line := fmt.Sprintf("[%s] %s: %s", msg.Level, msg.Subsystem, msg.Message)
		if msg.Err != nil {
			line += fmt.Sprintf(" (%v)", msg.Err)
		}
		m.logLines = append(m.logLines, line)
		if len(m.logLines) > maxLogLines {
			m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
		}
		return m, readLogCmd(m.logChan)

	case logChannelClosedMsg:
		return m, nil

	case configChangedMsg:
		logging.Info("tui", "config file changed, reloading")
		return m, tea.Batch(
			loadConfigCmd(m.configPath),
			watchConfigCmd(m.watcher, m.configPath),
		)

	case configLoadedMsg:
		return m.handleConfigLoaded(msg)

	case rowCopiedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("copy failed: %v", msg.err)
			m.statusMessageType = StatusBarError
		} else {
			m.statusMessage = fmt.Sprintf("copied %s", msg.realmName)
			m.statusMessageType = StatusBarSuccess
		}
		return m, clearStatusCmd()

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeHelpOverlay {
		switch {
		case key.Matches(msg, m.keys.Help), msg.String() == "esc":
			m.mode = ModeDashboard
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelpOverlay
		return m, nil

	case key.Matches(msg, m.keys.NextRegion):
		m.active = (m.active + 1) % len(m.regions)
		return m, nil

	case key.Matches(msg, m.keys.PrevRegion):
		m.active = (m.active - 1 + len(m.regions)) % len(m.regions)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		p := m.activePanel()
		if p.focusRow > 0 {
			p.focusRow--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		p := m.activePanel()
		if p.focusRow < len(p.ctrl.Rows())-1 {
			p.focusRow++
		}
		return m, nil

	case key.Matches(msg, m.keys.SortName):
		return m.requestSort(realm.ColumnRealm)
	case key.Matches(msg, m.keys.SortType):
		return m.requestSort(realm.ColumnRealmType)
	case key.Matches(msg, m.keys.SortStatus):
		return m.requestSort(realm.ColumnStatus)
	case key.Matches(msg, m.keys.SortPopulation):
		return m.requestSort(realm.ColumnPopulation)

	case key.Matches(msg, m.keys.Reload):
		return m, m.reloadRegion(m.regions[m.active])

	case key.Matches(msg, m.keys.ReloadAll):
		return m, m.reloadAll()

	case key.Matches(msg, m.keys.CopyRow):
		p := m.activePanel()
		rows := p.ctrl.Rows()
		if p.focusRow < len(rows) {
			return m, copyRowCmd(rows[p.focusRow])
		}
		return m, nil
	}

	return m, nil
}

// requestSort reorders the active panel's held rows. It never re-fetches.
func (m model) requestSort(col realm.Column) (tea.Model, tea.Cmd) {
	p := m.activePanel()
	p.ctrl.RequestSort(col)
	p.focusRow = 0
	return m, nil
}

func (m model) handlePipelineResult(msg pipelineResultMsg) (tea.Model, tea.Cmd) {
	p, ok := m.panels[msg.region]
	if !ok {
		// Region removed by a config reload while its fetch was in flight.
		return m, nil
	}
	if msg.err != nil {
		if p.ctrl.ApplyError(msg.generation, msg.err) {
			logging.Error("tui", msg.err, "pipeline failed for %s", msg.region)
		}
		return m, nil
	}
	if !p.ctrl.ApplyRows(msg.generation, msg.rows, msg.skipped) {
		logging.Debug("tui", "dropping stale result for %s (generation %d)", msg.region, msg.generation)
		return m, nil
	}
	if msg.skipped > 0 {
		logging.Warn("tui", "%s: %d clusters skipped", msg.region, msg.skipped)
	}
	return m, nil
}

func (m model) handleConfigLoaded(msg configLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.statusMessage = fmt.Sprintf("config reload failed: %v", msg.err)
		m.statusMessageType = StatusBarError
		return m, clearStatusCmd()
	}

	m.cfg = msg.cfg
	m.regions = msg.cfg.RegionNames()
	if m.active >= len(m.regions) {
		m.active = 0
	}

	// A parameter change restarts every pipeline; controllers survive so
	// generation tokens keep invalidating in-flight fetches.
	panels := make(map[string]*regionPanel, len(m.regions))
	for _, region := range m.regions {
		if existing, ok := m.panels[region]; ok {
			panels[region] = existing
		} else {
			panels[region] = &regionPanel{ctrl: panel.NewController(region)}
		}
	}
	m.panels = panels

	m.statusMessage = "configuration reloaded"
	m.statusMessageType = StatusBarInfo
	return m, tea.Batch(m.reloadAll(), clearStatusCmd())
}

func (m model) quit() (tea.Model, tea.Cmd) {
	m.mode = ModeQuitting
	if m.watcher != nil {
		m.watcher.Close()
	}
	return m, tea.Quit
}
