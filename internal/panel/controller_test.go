package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realmctl/internal/realm"
)

func sampleRows() []realm.RealmRow {
	return []realm.RealmRow{
		{Realm: "Zuluhed", Population: realm.PopulationLow},
		{Realm: "Aegwynn", Population: realm.PopulationFull},
		{Realm: "Malfurion", Population: realm.PopulationHigh},
	}
}

func TestControllerLifecycle(t *testing.T) {
	c := NewController("eu")
	assert.Equal(t, "eu", c.Region())
	assert.Equal(t, PhaseLoading, c.Phase())

	gen := c.Reload()
	require.True(t, c.ApplyRows(gen, sampleRows(), 1))
	assert.Equal(t, PhaseReady, c.Phase())
	assert.Equal(t, 1, c.Skipped())
	assert.Len(t, c.Rows(), 3)
	assert.Empty(t, c.Message())
}

func TestControllerEmptyRowsIsReadyNotError(t *testing.T) {
	c := NewController("us")
	gen := c.Reload()
	require.True(t, c.ApplyRows(gen, []realm.RealmRow{}, 0))
	assert.Equal(t, PhaseReady, c.Phase())
	assert.Empty(t, c.Rows())
}

func TestControllerErrorMessageNamesRegion(t *testing.T) {
	c := NewController("eu")
	gen := c.Reload()
	require.True(t, c.ApplyError(gen, realm.ErrEmptyIndex))
	assert.Equal(t, PhaseError, c.Phase())
	assert.Contains(t, c.Message(), "EU")
	assert.Contains(t, c.Message(), "no connected realms found")
	assert.Empty(t, c.Rows())
}

func TestControllerDropsStaleResults(t *testing.T) {
	c := NewController("us")
	oldGen := c.Reload()
	newGen := c.Reload()
	require.NotEqual(t, oldGen, newGen)

	// A slow in-flight fetch resolving after a newer reload must be dropped.
	assert.False(t, c.ApplyRows(oldGen, sampleRows(), 0))
	assert.Equal(t, PhaseLoading, c.Phase())
	assert.Empty(t, c.Rows())

	assert.False(t, c.ApplyError(oldGen, realm.ErrEmptyIndex))
	assert.Equal(t, PhaseLoading, c.Phase())

	// The current generation still applies normally.
	assert.True(t, c.ApplyRows(newGen, sampleRows(), 0))
	assert.Equal(t, PhaseReady, c.Phase())
}

func TestControllerStaleErrorCannotOverwriteReady(t *testing.T) {
	c := NewController("us")
	oldGen := c.Reload()
	newGen := c.Reload()
	require.True(t, c.ApplyRows(newGen, sampleRows(), 0))

	assert.False(t, c.ApplyError(oldGen, realm.ErrMissingCredential))
	assert.Equal(t, PhaseReady, c.Phase())
	assert.Len(t, c.Rows(), 3)
}

func TestControllerSortToggleAndReset(t *testing.T) {
	c := NewController("us")
	gen := c.Reload()
	require.True(t, c.ApplyRows(gen, sampleRows(), 0))

	// First selection sorts ascending.
	c.RequestSort(realm.ColumnRealm)
	assert.Equal(t, SortState{Column: realm.ColumnRealm, Direction: realm.Ascending}, c.Sort())
	assert.Equal(t, "Aegwynn", c.Rows()[0].Realm)

	// Selecting the active column toggles direction.
	c.RequestSort(realm.ColumnRealm)
	assert.Equal(t, realm.Descending, c.Sort().Direction)
	assert.Equal(t, "Zuluhed", c.Rows()[0].Realm)

	// Selecting a different column resets to ascending.
	c.RequestSort(realm.ColumnPopulation)
	assert.Equal(t, SortState{Column: realm.ColumnPopulation, Direction: realm.Ascending}, c.Sort())
	assert.Equal(t, realm.PopulationLow, c.Rows()[0].Population)
}

func TestControllerSortSurvivesReload(t *testing.T) {
	c := NewController("us")
	gen := c.Reload()
	require.True(t, c.ApplyRows(gen, sampleRows(), 0))
	c.RequestSort(realm.ColumnRealm)

	gen = c.Reload()
	assert.Equal(t, realm.ColumnRealm, c.Sort().Column, "sort state is renderer-owned and survives reloads")
	require.True(t, c.ApplyRows(gen, sampleRows(), 0))
	assert.Equal(t, "Aegwynn", c.Rows()[0].Realm)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "Loading", PhaseLoading.String())
	assert.Equal(t, "Error", PhaseError.String())
	assert.Equal(t, "Ready", PhaseReady.String())
	assert.Equal(t, "Unknown", Phase(42).String())
}
