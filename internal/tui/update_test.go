package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"realmctl/internal/config"
	"realmctl/internal/panel"
	"realmctl/internal/realm"
)

// newTestModel builds a two-region dashboard model without starting any
// pipelines, mirroring what NewModel assembles.
func newTestModel() model {
	cfg := config.Config{
		DefaultRegion:   "us",
		RequestInterval: config.Duration(time.Millisecond),
		Regions: map[string]config.RegionConfig{
			"us": {APIURL: "https://us.test", Namespace: "dynamic-us"},
			"eu": {APIURL: "https://eu.test", Namespace: "dynamic-eu"},
		},
	}
	regions := cfg.RegionNames()
	panels := make(map[string]*regionPanel, len(regions))
	for _, region := range regions {
		panels[region] = &regionPanel{ctrl: panel.NewController(region)}
	}
	return model{
		cfg:     cfg,
		token:   "test-token",
		regions: regions,
		panels:  panels,
		spinner: spinner.New(),
		help:    help.New(),
		keys:    DefaultKeyMap(),
	}
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// readyModel returns a model whose active region holds rows.
func readyModel(t *testing.T, rows []realm.RealmRow) model {
	t.Helper()
	m := newTestModel()
	p := m.activePanel()
	gen := p.ctrl.Reload()
	if !p.ctrl.ApplyRows(gen, rows, 0) {
		t.Fatal("setup: ApplyRows rejected the current generation")
	}
	return m
}

func TestRegionTabSwitchingWraps(t *testing.T) {
	m := newTestModel()
	if m.regions[m.active] != "us" {
		t.Fatalf("expected default region first, got %q", m.regions[m.active])
	}

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)
	if m.regions[m.active] != "eu" {
		t.Errorf("tab: expected 'eu', got %q", m.regions[m.active])
	}

	next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)
	if m.regions[m.active] != "us" {
		t.Errorf("tab wrap: expected 'us', got %q", m.regions[m.active])
	}

	next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(model)
	if m.regions[m.active] != "eu" {
		t.Errorf("shift+tab wrap: expected 'eu', got %q", m.regions[m.active])
	}
}

func TestSortKeySetsColumnAndResetsFocus(t *testing.T) {
	rows := []realm.RealmRow{
		{Realm: "Zuluhed"}, {Realm: "Aegwynn"}, {Realm: "Malfurion"},
	}
	m := readyModel(t, rows)
	m.activePanel().focusRow = 2

	next, _ := m.handleKey(keyMsg('n'))
	m = next.(model)

	p := m.activePanel()
	if got := p.ctrl.Sort(); got.Column != realm.ColumnRealm || got.Direction != realm.Ascending {
		t.Errorf("expected realm/ascending sort, got %+v", got)
	}
	if p.focusRow != 0 {
		t.Errorf("expected focus reset to 0, got %d", p.focusRow)
	}
	if got := p.ctrl.Rows()[0].Realm; got != "Aegwynn" {
		t.Errorf("expected 'Aegwynn' first, got %q", got)
	}

	// Same key again toggles direction.
	next, _ = m.handleKey(keyMsg('n'))
	m = next.(model)
	if got := m.activePanel().ctrl.Sort().Direction; got != realm.Descending {
		t.Errorf("expected descending after toggle, got %v", got)
	}
}

func TestFocusNavigationClampsToRowBounds(t *testing.T) {
	rows := []realm.RealmRow{{Realm: "Aegwynn"}, {Realm: "Malfurion"}}
	m := readyModel(t, rows)

	// Up at the top stays put.
	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)
	if got := m.activePanel().focusRow; got != 0 {
		t.Errorf("up at top: expected 0, got %d", got)
	}

	// Down stops at the last row.
	for i := 0; i < 5; i++ {
		next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(model)
	}
	if got := m.activePanel().focusRow; got != 1 {
		t.Errorf("down past end: expected 1, got %d", got)
	}
}

func TestPipelineResultAppliesToMatchingGeneration(t *testing.T) {
	m := newTestModel()
	p := m.panels["us"]
	gen := p.ctrl.Reload()

	next, _ := m.handlePipelineResult(pipelineResultMsg{
		region:     "us",
		generation: gen,
		rows:       []realm.RealmRow{{Realm: "Aegwynn"}},
		skipped:    1,
	})
	m = next.(model)

	if got := m.panels["us"].ctrl.Phase(); got != panel.PhaseReady {
		t.Errorf("expected ready phase, got %v", got)
	}
	if got := m.panels["us"].ctrl.Skipped(); got != 1 {
		t.Errorf("expected 1 skipped, got %d", got)
	}
}

func TestPipelineResultStaleGenerationIsDropped(t *testing.T) {
	m := newTestModel()
	p := m.panels["us"]
	oldGen := p.ctrl.Reload()
	p.ctrl.Reload()

	next, _ := m.handlePipelineResult(pipelineResultMsg{
		region:     "us",
		generation: oldGen,
		rows:       []realm.RealmRow{{Realm: "Aegwynn"}},
	})
	m = next.(model)

	if got := m.panels["us"].ctrl.Phase(); got != panel.PhaseLoading {
		t.Errorf("stale result must not leave loading phase, got %v", got)
	}
	if got := len(m.panels["us"].ctrl.Rows()); got != 0 {
		t.Errorf("stale rows must be dropped, got %d", got)
	}
}

func TestPipelineResultErrorTransitionsPanel(t *testing.T) {
	m := newTestModel()
	p := m.panels["eu"]
	gen := p.ctrl.Reload()

	next, _ := m.handlePipelineResult(pipelineResultMsg{
		region:     "eu",
		generation: gen,
		err:        errors.New("boom"),
	})
	m = next.(model)

	ctrl := m.panels["eu"].ctrl
	if got := ctrl.Phase(); got != panel.PhaseError {
		t.Errorf("expected error phase, got %v", got)
	}
	// The other region is untouched.
	if got := m.panels["us"].ctrl.Phase(); got != panel.PhaseLoading {
		t.Errorf("us panel must be untouched, got %v", got)
	}
}

func TestPipelineResultForRemovedRegionIsIgnored(t *testing.T) {
	m := newTestModel()

	next, cmd := m.handlePipelineResult(pipelineResultMsg{region: "kr", generation: 1})
	m = next.(model)
	if cmd != nil {
		t.Error("expected no follow-up command for an unknown region")
	}
}

func TestHelpOverlayToggle(t *testing.T) {
	m := newTestModel()

	next, _ := m.handleKey(keyMsg('?'))
	m = next.(model)
	if m.mode != ModeHelpOverlay {
		t.Fatalf("expected help overlay, got %v", m.mode)
	}

	// While the overlay is up, dashboard keys are inert.
	next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)
	if m.active != 0 {
		t.Errorf("tab must be inert under the overlay, active=%d", m.active)
	}

	next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)
	if m.mode != ModeDashboard {
		t.Errorf("esc must close the overlay, got %v", m.mode)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel()
	next, cmd := m.handleKey(keyMsg('q'))
	m = next.(model)
	if m.mode != ModeQuitting {
		t.Errorf("expected quitting mode, got %v", m.mode)
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected command to produce tea.QuitMsg")
	}
}

func TestConfigReloadPreservesSurvivingControllers(t *testing.T) {
	m := newTestModel()
	usCtrl := m.panels["us"].ctrl
	usCtrl.Reload()
	usCtrl.Reload()

	cfg := m.cfg
	cfg.Regions = map[string]config.RegionConfig{
		"us": cfg.Regions["us"],
		"kr": {APIURL: "https://kr.test", Namespace: "dynamic-kr"},
	}

	next, cmd := m.handleConfigLoaded(configLoadedMsg{cfg: cfg})
	m = next.(model)

	if m.panels["us"].ctrl != usCtrl {
		t.Error("surviving region must keep its controller so stale fetches stay invalidated")
	}
	if _, ok := m.panels["eu"]; ok {
		t.Error("removed region must not keep a panel")
	}
	if _, ok := m.panels["kr"]; !ok {
		t.Error("added region must get a panel")
	}
	if cmd == nil {
		t.Error("expected a reload command batch")
	}
	if m.statusMessage != "configuration reloaded" {
		t.Errorf("unexpected status message %q", m.statusMessage)
	}
}

func TestConfigReloadFailureKeepsCurrentConfig(t *testing.T) {
	m := newTestModel()
	before := len(m.panels)

	next, _ := m.handleConfigLoaded(configLoadedMsg{err: errors.New("parse error")})
	m = next.(model)

	if len(m.panels) != before {
		t.Error("a failed reload must not touch the panels")
	}
	if m.statusMessageType != StatusBarError {
		t.Errorf("expected error status, got %v", m.statusMessageType)
	}
}

func TestLogLinesAreCapped(t *testing.T) {
	m := newTestModel()

	var next tea.Model = m
	for i := 0; i < maxLogLines+10; i++ {
		next, _ = next.(model).Update(logEntryMsg{Subsystem: "test", Message: "line"})
	}
	if got := len(next.(model).logLines); got != maxLogLines {
		t.Errorf("expected log capped at %d lines, got %d", maxLogLines, got)
	}
}

func TestWindowSizeIsRecorded(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(model)
	if m.width != 120 || m.height != 40 {
		t.Errorf("expected 120x40, got %dx%d", m.width, m.height)
	}
}
