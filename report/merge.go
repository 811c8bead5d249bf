package report

import (
	"github.com/ssi-dk/bifrost-reporter/table"
)

// MergeCohorts unions each new-cohort prefix group with the complete
// original-cohort table for the same analysis type. There is no
// deduplication: the cohorts are compared side by side, not reconciled, so
// an identifier present in both appears twice. A column mismatch between
// the cohorts fails the whole analysis type (table.ErrColumnMismatch).
func MergeCohorts(groups map[string]*table.Table, original *table.Table) (map[string]*table.Table, error) {
	merged := make(map[string]*table.Table, len(groups))
	for prefix, group := range groups {
		m, err := table.Union(group, original)
		if err != nil {
			return nil, err
		}
		merged[prefix] = m
	}
	return merged, nil
}
