package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/fsnotify/fsnotify"

	"realmctl/internal/config"
	"realmctl/internal/panel"
	"realmctl/pkg/logging"
)

// AppMode defines the overall state or view of the application.
type AppMode int

const (
	// ModeDashboard is the primary view showing the active region's realm table.
	ModeDashboard AppMode = iota
	// ModeHelpOverlay is when the full help screen is visible.
	ModeHelpOverlay
	// ModeQuitting is when the application is shutting down.
	ModeQuitting
)

// String makes AppMode satisfy the fmt.Stringer interface.
func (a AppMode) String() string {
	switch a {
	case ModeDashboard:
		return "Dashboard"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType classifies the status bar message for styling.
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
)

const (
	// maxLogLines caps the in-memory activity log.
	maxLogLines = 100
	// minHeightForLogStrip is the minimum terminal height (in lines) needed
	// to show the activity log strip under the table.
	minHeightForLogStrip = 24
	// statusMessageTTL is how long transient status bar messages linger.
	statusMessageTTL = 4 * time.Second
)

// regionPanel pairs a region's view state controller with its UI-only
// state (the focused row in the sorted view).
type regionPanel struct {
	ctrl     *panel.Controller
	focusRow int
}

// model represents the state of the entire TUI application.
type model struct {
	// --- Pipeline parameters ---
	cfg        config.Config
	token      string
	configPath string

	// --- Region panels ---
	regions []string                // tab order
	panels  map[string]*regionPanel // keyed by region name
	active  int                     // index into regions

	// --- UI state ---
	width, height int
	mode          AppMode
	spinner       spinner.Model
	help          help.Model
	keys          KeyMap

	// --- Status bar ---
	statusMessage     string
	statusMessageType MessageType

	// --- Activity log ---
	logChan  <-chan logging.LogEntry
	logLines []string

	// --- Config hot reload ---
	watcher *fsnotify.Watcher
}
