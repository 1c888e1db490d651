package tui

import "github.com/charmbracelet/lipgloss"

// Styles for the TUI, defined using the lipgloss library.
var (
	// appStyle defines the overall margin for the application view.
	appStyle = lipgloss.NewStyle().Margin(0, 1)

	// headerStyle is for the title bar at the top of the TUI.
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			Background(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#303030"}).
			Padding(0, 2)

	// tabStyle and activeTabStyle render the region tabs.
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}).
			Padding(0, 2)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	// tableHeaderStyle renders the column header row.
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true)

	// focusedRowStyle highlights the row under the cursor.
	focusedRowStyle = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#3A3A3A"})

	// statusUpStyle / statusDownStyle color the status cell by its type so
	// localized labels stay readable.
	statusUpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusDownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	// Population bracket colors, low to full.
	popLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	popMediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
	popHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	popFullStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	errorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("196")).
			Padding(1, 2)

	statusBarInfoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"})
	statusBarSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusBarErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	logLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#777777", Dark: "#888888"})

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
)
