package forecast

// PartitionByCompletion splits occurrences into pending and done by ID
// membership in the completed set. The set itself is owned and persisted by
// the completion store; this is a pure filter.
func PartitionByCompletion(occs []Occurrence, completedIDs map[string]struct{}) (pending, done []Occurrence) {
	for _, occ := range occs {
		if _, ok := completedIDs[occ.ID]; ok {
			done = append(done, occ)
			continue
		}

		pending = append(pending, occ)
	}

	return pending, done
}
