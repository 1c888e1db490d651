package realm

// Flatten expands each cluster into one row per member realm, copying the
// cluster's status, population, and queue fields onto every row. Clusters
// keep their input order and members their payload order. No deduplication
// is performed; overlapping clusters emit rows independently.
func Flatten(clusters []ClusterStatus) []RealmRow {
	var total int
	for _, c := range clusters {
		total += len(c.Members)
	}
	rows := make([]RealmRow, 0, total)
	for _, c := range clusters {
		for _, m := range c.Members {
			rows = append(rows, RealmRow{
				ClusterID:      c.ID,
				Realm:          m.Name,
				RealmType:      m.Type,
				Status:         c.Status,
				StatusName:     c.StatusName,
				Population:     c.Population,
				PopulationName: c.PopulationName,
				HasQueue:       c.HasQueue,
			})
		}
	}
	return rows
}
