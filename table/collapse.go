package table

import (
	"sort"
	"strings"
)

// Collapse joins multi-row samples into a single row per sample, each cell
// holding the comma-joined values in row order. Single-row samples are kept
// as they are.
func Collapse(t *Table) *Table {
	out := New(t.Columns...)
	bySample := make(map[string][]Row, len(t.Rows))
	for _, row := range t.Rows {
		bySample[row.Sample] = append(bySample[row.Sample], row)
	}
	for _, sample := range t.Samples() {
		rows := bySample[sample]
		if len(rows) == 1 {
			out.Add(sample, rows[0].Cells)
			continue
		}
		cells := make(map[string]string, len(t.Columns))
		for _, col := range t.Columns {
			values := make([]string, 0, len(rows))
			for _, row := range rows {
				values = append(values, row.Cells[col])
			}
			cells[col] = strings.Join(values, ",")
		}
		out.Add(sample, cells)
	}
	return out
}

// SortBySample orders rows by sample identifier, keeping the relative order
// of rows that share a sample.
func (t *Table) SortBySample() {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return t.Rows[i].Sample < t.Rows[j].Sample
	})
}

// Transpose flips a table: former columns become rows and former samples
// become columns. Collapse first if samples can repeat.
func Transpose(t *Table) *Table {
	out := New(t.Samples()...)
	for _, col := range t.Columns {
		cells := make(map[string]string, len(t.Rows))
		for _, row := range t.Rows {
			cells[row.Sample] = row.Cells[col]
		}
		out.Add(col, cells)
	}
	return out
}
