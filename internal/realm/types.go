package realm

import "strings"

// ClusterID identifies one connected-realm cluster. It is the trailing path
// segment of the cluster's index href and is treated as opaque.
type ClusterID string

// StatusType is the machine-readable cluster status.
type StatusType string

const (
	StatusUp   StatusType = "UP"
	StatusDown StatusType = "DOWN"
)

// PopulationType is the machine-readable cluster population bracket.
type PopulationType string

const (
	PopulationLow    PopulationType = "LOW"
	PopulationMedium PopulationType = "MEDIUM"
	PopulationHigh   PopulationType = "HIGH"
	PopulationFull   PopulationType = "FULL"
)

// RealmMember is one named realm belonging to a cluster, taken verbatim from
// the cluster payload.
type RealmMember struct {
	Name string
	Type string
}

// ClusterStatus is one successfully fetched cluster's detail. Values are
// immutable after creation.
type ClusterStatus struct {
	ID             ClusterID
	Status         StatusType
	StatusName     string
	Population     PopulationType
	PopulationName string
	HasQueue       bool
	Members        []RealmMember
}

// RealmRow is one flattened, display-ready record. Cluster-level fields are
// denormalized onto every member row; rows hold no reference back to the
// cluster they came from.
type RealmRow struct {
	ClusterID      ClusterID      `json:"clusterId"`
	Realm          string         `json:"realm"`
	RealmType      string         `json:"realmType"`
	Status         StatusType     `json:"status"`
	StatusName     string         `json:"statusName"`
	Population     PopulationType `json:"population"`
	PopulationName string         `json:"populationName"`
	HasQueue       bool           `json:"hasQueue"`
}

// ClusterIDFromHref extracts the cluster id from an index entry href by
// taking the final path segment and discarding any query suffix. A href
// yielding no usable segment returns the empty ClusterID; callers drop such
// entries instead of failing the whole index.
func ClusterIDFromHref(href string) ClusterID {
	segments := strings.Split(href, "/")
	last := segments[len(segments)-1]
	id, _, _ := strings.Cut(last, "?")
	return ClusterID(id)
}
