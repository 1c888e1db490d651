package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"realmctl/internal/panel"
	"realmctl/internal/realm"
)

// Column layout of the realm table.
var tableColumns = []struct {
	title string
	width int
	col   realm.Column
}{
	{"REALM", 24, realm.ColumnRealm},
	{"TYPE", 12, realm.ColumnRealmType},
	{"STATUS", 12, realm.ColumnStatus},
	{"POPULATION", 14, realm.ColumnPopulation},
	{"QUEUE", 5, realm.ColumnNone},
}

// View renders the whole application.
func (m model) View() string {
	if m.mode == ModeQuitting {
		return "Shutting down...\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.mode == ModeHelpOverlay {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
		b.WriteString("\n")
		return appStyle.Render(b.String())
	}

	b.WriteString(m.renderActivePanel())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return appStyle.Render(b.String())
}

func (m model) renderHeader() string {
	title := headerStyle.Render("realmctl")
	tabs := make([]string, 0, len(m.regions))
	for i, region := range m.regions {
		label := strings.ToUpper(region)
		if i == m.active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", strings.Join(tabs, " "))
}

func (m model) renderActivePanel() string {
	p := m.activePanel()
	region := strings.ToUpper(p.ctrl.Region())

	switch p.ctrl.Phase() {
	case panel.PhaseLoading:
		return fmt.Sprintf("\n %s Fetching %s realm status...\n", m.spinner.View(), region)
	case panel.PhaseError:
		return "\n" + errorBoxStyle.Render(p.ctrl.Message()) + "\n"
	default:
		return m.renderTable(p)
	}
}

func (m model) renderTable(p *regionPanel) string {
	rows := p.ctrl.Rows()
	if len(rows) == 0 {
		return "\n No realms to display.\n"
	}

	var b strings.Builder
	b.WriteString(" " + tableHeaderStyle.Render(m.renderHeaderRow(p.ctrl.Sort())) + "\n")

	visible := m.visibleRowCount()
	offset := 0
	if p.focusRow >= visible {
		offset = p.focusRow - visible + 1
	}
	end := offset + visible
	if end > len(rows) {
		end = len(rows)
	}

	for i := offset; i < end; i++ {
		line := renderRow(rows[i])
		if i == p.focusRow {
			b.WriteString(focusedRowStyle.Render("▸" + renderRowPlain(rows[i])))
		} else {
			b.WriteString(" " + line)
		}
		b.WriteString("\n")
	}
	if end < len(rows) {
		b.WriteString(footerStyle.Render(fmt.Sprintf(" … %d more", len(rows)-end)) + "\n")
	}
	return b.String()
}

// visibleRowCount is the number of table rows that fit under the chrome.
func (m model) visibleRowCount() int {
	chrome := 6 // header, tabs, column header, footer, status bar, margin
	if m.showLogStrip() {
		chrome += 4
	}
	visible := m.height - chrome
	if visible < 5 {
		visible = 5
	}
	return visible
}

func (m model) showLogStrip() bool {
	return m.height >= minHeightForLogStrip && len(m.logLines) > 0
}

func (m model) renderHeaderRow(sort panel.SortState) string {
	cells := make([]string, 0, len(tableColumns))
	for _, c := range tableColumns {
		title := c.title
		if c.col != realm.ColumnNone && c.col == sort.Column {
			if sort.Direction == realm.Descending {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}
		cells = append(cells, pad(title, c.width))
	}
	return strings.Join(cells, "  ")
}

func renderRow(r realm.RealmRow) string {
	status := pad(displayOrType(r.StatusName, string(r.Status)), tableColumns[2].width)
	if r.Status == realm.StatusUp {
		status = statusUpStyle.Render(status)
	} else {
		status = statusDownStyle.Render(status)
	}

	pop := pad(displayOrType(r.PopulationName, string(r.Population)), tableColumns[3].width)
	pop = populationStyle(r.Population).Render(pop)

	return strings.Join([]string{
		pad(r.Realm, tableColumns[0].width),
		pad(r.RealmType, tableColumns[1].width),
		status,
		pop,
		pad(queueLabel(r.HasQueue), tableColumns[4].width),
	}, "  ")
}

// renderRowPlain renders without per-cell colors so a row background reads
// cleanly across the full line.
func renderRowPlain(r realm.RealmRow) string {
	return strings.Join([]string{
		pad(r.Realm, tableColumns[0].width),
		pad(r.RealmType, tableColumns[1].width),
		pad(displayOrType(r.StatusName, string(r.Status)), tableColumns[2].width),
		pad(displayOrType(r.PopulationName, string(r.Population)), tableColumns[3].width),
		pad(queueLabel(r.HasQueue), tableColumns[4].width),
	}, "  ")
}

func populationStyle(p realm.PopulationType) lipgloss.Style {
	switch p {
	case realm.PopulationFull:
		return popFullStyle
	case realm.PopulationHigh:
		return popHighStyle
	case realm.PopulationMedium:
		return popMediumStyle
	default:
		return popLowStyle
	}
}

func queueLabel(hasQueue bool) string {
	if hasQueue {
		return "yes"
	}
	return "-"
}

// displayOrType prefers the localized label, falling back to the raw type.
func displayOrType(name, typ string) string {
	if name != "" {
		return name
	}
	return typ
}

// pad truncates and right-pads a cell to the column width, display-width
// aware for non-ASCII realm names.
func pad(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

func (m model) renderFooter() string {
	p := m.activePanel()
	var parts []string

	if p.ctrl.Phase() == panel.PhaseReady {
		parts = append(parts, fmt.Sprintf("%d realms", len(p.ctrl.Rows())))
		if skipped := p.ctrl.Skipped(); skipped > 0 {
			parts = append(parts, fmt.Sprintf("%d clusters skipped", skipped))
		}
	}
	if m.statusMessage != "" {
		switch m.statusMessageType {
		case StatusBarError:
			parts = append(parts, statusBarErrorStyle.Render(m.statusMessage))
		case StatusBarSuccess:
			parts = append(parts, statusBarSuccessStyle.Render(m.statusMessage))
		default:
			parts = append(parts, statusBarInfoStyle.Render(m.statusMessage))
		}
	}

	var b strings.Builder
	if m.showLogStrip() {
		start := len(m.logLines) - 3
		if start < 0 {
			start = 0
		}
		for _, line := range m.logLines[start:] {
			if m.width > 2 && runewidth.StringWidth(line) > m.width-2 {
				line = runewidth.Truncate(line, m.width-2, "…")
			}
			b.WriteString(logLineStyle.Render(line) + "\n")
		}
	}

	b.WriteString(footerStyle.Render(strings.Join(parts, " · ")))
	b.WriteString("\n" + m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}
