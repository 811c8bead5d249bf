package table

import "strconv"

// Thresholds are inclusive lower bounds for the percentage columns of gene
// and variant caller reports. A nil bound disables that check.
type Thresholds struct {
	CoverageMin *float64
	IdentityMin *float64
}

// Filter drops rows whose coverage or identity percentage falls strictly
// below the configured minimums; a value exactly equal to a bound is
// retained. Tables without the named columns pass through untouched, as do
// all rows when no bound is set.
func Filter(t *Table, coverageCol, identityCol string, th Thresholds) *Table {
	if t == nil || (th.CoverageMin == nil && th.IdentityMin == nil) {
		return t
	}
	out := New(t.Columns...)
	for _, row := range t.Rows {
		if below(t, row, coverageCol, th.CoverageMin) || below(t, row, identityCol, th.IdentityMin) {
			continue
		}
		out.Add(row.Sample, row.Cells)
	}
	return out
}

func below(t *Table, row Row, col string, min *float64) bool {
	if min == nil || col == "" || !t.HasColumn(col) {
		return false
	}
	v, err := strconv.ParseFloat(row.Cells[col], 64)
	if err != nil {
		// Unparseable or missing percentages count as zero, matching the
		// upstream reports where absent hits are filled with 0.
		v = 0
	}
	return v < *min
}
