// Package panel holds the per-region view state machine sitting between the
// fetch pipeline and a renderer: the loading/error/ready phases, held rows,
// the sort selection, and the staleness guard for in-flight fetches.
package panel

import (
	"fmt"
	"strings"

	"realmctl/internal/realm"
)

// Phase is the fetch state of one region panel.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseReady
)

// String makes Phase satisfy the fmt.Stringer interface.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhaseError:
		return "Error"
	case PhaseReady:
		return "Ready"
	default:
		return "Unknown"
	}
}

// SortState is the renderer-selected sort. A zero Column presents rows in
// flattening order.
type SortState struct {
	Column    realm.Column
	Direction realm.Direction
}

// Controller sequences one region's pipeline results and sort selection.
// Each Reload bumps a generation token; results carrying a stale token are
// discarded so a slow in-flight fetch can never overwrite data from a newer
// one. The controller is driven from a single goroutine (the TUI update
// loop or a one-shot command) and needs no locking.
type Controller struct {
	region     string
	generation int

	phase   Phase
	message string
	rows    []realm.RealmRow
	skipped int
	sort    SortState
}

// NewController returns a Controller for the named region, starting in the
// loading phase at generation zero (no fetch issued yet).
func NewController(region string) *Controller {
	return &Controller{region: region, phase: PhaseLoading}
}

// Region returns the region this controller serves.
func (c *Controller) Region() string { return c.region }

// Phase returns the current fetch phase.
func (c *Controller) Phase() Phase { return c.phase }

// Message returns the user-facing error message; meaningful only in the
// error phase.
func (c *Controller) Message() string { return c.message }

// Skipped returns how many clusters the last completed fetch skipped.
func (c *Controller) Skipped() int { return c.skipped }

// Generation returns the token of the most recent reload.
func (c *Controller) Generation() int { return c.generation }

// Sort returns the current sort selection.
func (c *Controller) Sort() SortState { return c.sort }

// Reload restarts the panel's pipeline: the phase returns to loading, held
// rows are dropped, and a fresh generation token is returned for the caller
// to attach to the fetch it launches. The sort selection survives reloads;
// only renderer interaction changes it.
func (c *Controller) Reload() int {
	c.generation++
	c.phase = PhaseLoading
	c.message = ""
	c.rows = nil
	c.skipped = 0
	return c.generation
}

// ApplyRows delivers a completed fetch. It reports whether the result was
// accepted; results from a superseded generation are dropped unapplied. An
// empty row set is a valid ready state, distinct from an error.
func (c *Controller) ApplyRows(generation int, rows []realm.RealmRow, skipped int) bool {
	if generation != c.generation {
		return false
	}
	c.phase = PhaseReady
	c.message = ""
	c.rows = rows
	c.skipped = skipped
	return true
}

// ApplyError delivers a failed fetch, transitioning to the error phase with
// a message naming the region and the underlying cause. Stale generations
// are dropped unapplied.
func (c *Controller) ApplyError(generation int, err error) bool {
	if generation != c.generation {
		return false
	}
	c.phase = PhaseError
	c.message = fmt.Sprintf("%s: %v", strings.ToUpper(c.region), err)
	c.rows = nil
	c.skipped = 0
	return true
}

// RequestSort selects a sort column. Selecting the active column toggles
// its direction; selecting a different column resets to ascending. Sorting
// operates on the already-held rows and never re-fetches.
func (c *Controller) RequestSort(col realm.Column) {
	if col == c.sort.Column {
		c.sort.Direction = c.sort.Direction.Toggle()
		return
	}
	c.sort = SortState{Column: col, Direction: realm.Ascending}
}

// Rows returns the held rows ordered by the current sort selection. The
// returned slice is a fresh copy; the held flattening order is preserved
// internally.
func (c *Controller) Rows() []realm.RealmRow {
	return realm.SortRows(c.rows, c.sort.Column, c.sort.Direction)
}
