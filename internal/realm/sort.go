package realm

import (
	"sort"
	"strings"
)

// Column identifies a sortable display column.
type Column string

const (
	// ColumnNone presents rows in flattening order.
	ColumnNone       Column = ""
	ColumnRealm      Column = "realm"
	ColumnRealmType  Column = "type"
	ColumnStatus     Column = "status"
	ColumnPopulation Column = "population"
)

// Direction is the sort direction for a column.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// populationRank orders population brackets by domain meaning rather than
// label text. FULL ranking above HIGH is existing observable behavior and is
// kept as-is. Unrecognized brackets rank lowest.
func populationRank(p PopulationType) int {
	switch p {
	case PopulationLow:
		return 1
	case PopulationMedium:
		return 2
	case PopulationHigh:
		return 3
	case PopulationFull:
		return 4
	default:
		return 0
	}
}

// statusRank orders UP above DOWN regardless of the localized status label.
func statusRank(s StatusType) int {
	if s == StatusUp {
		return 1
	}
	return 0
}

// SortRows returns a new slice holding rows ordered by the given column and
// direction. The input is never modified. The sort is stable in both
// directions: equal-key rows keep their prior relative order. ColumnNone
// returns the rows in their existing (flattening) order.
func SortRows(rows []RealmRow, col Column, dir Direction) []RealmRow {
	out := make([]RealmRow, len(rows))
	copy(out, rows)
	if col == ColumnNone {
		return out
	}

	cmp := compareFunc(col)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Descending {
			return cmp(out[i], out[j]) > 0
		}
		return cmp(out[i], out[j]) < 0
	})
	return out
}

func compareFunc(col Column) func(a, b RealmRow) int {
	switch col {
	case ColumnRealmType:
		return func(a, b RealmRow) int {
			return strings.Compare(strings.ToLower(a.RealmType), strings.ToLower(b.RealmType))
		}
	case ColumnStatus:
		return func(a, b RealmRow) int {
			return statusRank(a.Status) - statusRank(b.Status)
		}
	case ColumnPopulation:
		return func(a, b RealmRow) int {
			return populationRank(a.Population) - populationRank(b.Population)
		}
	default:
		return func(a, b RealmRow) int {
			return strings.Compare(strings.ToLower(a.Realm), strings.ToLower(b.Realm))
		}
	}
}

// ParseColumn maps a user-supplied column name onto a Column. The empty
// string maps to ColumnNone; anything unrecognized reports false.
func ParseColumn(name string) (Column, bool) {
	switch Column(strings.ToLower(name)) {
	case ColumnNone, ColumnRealm, ColumnRealmType, ColumnStatus, ColumnPopulation:
		return Column(strings.ToLower(name)), true
	default:
		return ColumnNone, false
	}
}
