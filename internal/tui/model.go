package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"realmctl/internal/config"
	"realmctl/internal/panel"
	"realmctl/internal/realm"
	"realmctl/pkg/logging"
)

// Options configures a new TUI model.
type Options struct {
	Config     config.Config
	Token      string
	ConfigPath string // watched for hot reload; empty disables watching
	Regions    []string // subset of configured regions; empty means all
	LogChan    <-chan logging.LogEntry
}

// NewModel assembles the initial TUI model. Pipelines start from Init.
func NewModel(opts Options) (tea.Model, error) {
	regions := opts.Regions
	if len(regions) == 0 {
		regions = opts.Config.RegionNames()
	}
	for _, region := range regions {
		if _, ok := opts.Config.Regions[region]; !ok {
			return nil, fmt.Errorf("unknown region %q", region)
		}
	}

	panels := make(map[string]*regionPanel, len(regions))
	for _, region := range regions {
		panels[region] = &regionPanel{ctrl: panel.NewController(region)}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	m := model{
		cfg:        opts.Config,
		token:      opts.Token,
		configPath: opts.ConfigPath,
		regions:    regions,
		panels:     panels,
		spinner:    sp,
		help:       help.New(),
		keys:       DefaultKeyMap(),
		logChan:    opts.LogChan,
	}

	if opts.ConfigPath != "" {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			logging.Warn("tui", "config watching unavailable: %v", err)
		} else if err := watcher.Add(filepath.Dir(opts.ConfigPath)); err != nil {
			logging.Warn("tui", "cannot watch %s: %v", filepath.Dir(opts.ConfigPath), err)
			watcher.Close()
		} else {
			m.watcher = watcher
		}
	}

	return m, nil
}

// requestInterval returns the configured throttle interval.
func (m model) requestInterval() time.Duration {
	if m.cfg.RequestInterval > 0 {
		return time.Duration(m.cfg.RequestInterval)
	}
	return realm.DefaultRequestInterval
}

// regionParams builds the pipeline parameters for one region.
func (m model) regionParams(region string) realm.Params {
	rc := m.cfg.Regions[region]
	return realm.Params{
		APIURL:    rc.APIURL,
		Namespace: rc.Namespace,
		Locale:    rc.Locale,
		Token:     m.token,
	}
}

// reloadRegion restarts one region's pipeline and returns the fetch command
// carrying the fresh generation token.
func (m model) reloadRegion(region string) tea.Cmd {
	p := m.panels[region]
	p.focusRow = 0
	gen := p.ctrl.Reload()
	return fetchRegionCmd(region, gen, m.regionParams(region), m.requestInterval())
}

// reloadAll restarts every region's pipeline.
func (m model) reloadAll() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.regions))
	for _, region := range m.regions {
		cmds = append(cmds, m.reloadRegion(region))
	}
	return tea.Batch(cmds...)
}

// activePanel returns the panel for the currently selected region tab.
func (m model) activePanel() *regionPanel {
	return m.panels[m.regions[m.active]]
}

// Init starts the spinner, kicks off every region's pipeline, and arms the
// log reader and config watcher.
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.reloadAll()}
	if m.logChan != nil {
		cmds = append(cmds, readLogCmd(m.logChan))
	}
	if m.watcher != nil {
		cmds = append(cmds, watchConfigCmd(m.watcher, m.configPath))
	}
	return tea.Batch(cmds...)
}
