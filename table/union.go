package table

import (
	"errors"
	"fmt"
)

// ErrColumnMismatch reports that two tables cannot be unioned because their
// column sets differ.
var ErrColumnMismatch = errors.New("column sets differ")

// Union returns a copy of a with b's rows appended. The two tables must
// share one column set; the result keeps a's column order. Rows are never
// deduplicated, so a sample present in both inputs appears twice.
func Union(a, b *Table) (*Table, error) {
	if a == nil {
		a = New()
	}
	out := a.Clone()
	if b == nil || len(b.Rows) == 0 {
		return out, nil
	}
	if !sameColumns(a, b) {
		return nil, fmt.Errorf("union: %w: %v vs %v", ErrColumnMismatch, a.Columns, b.Columns)
	}
	for _, row := range b.Rows {
		out.Add(row.Sample, row.Cells)
	}
	return out, nil
}

func sameColumns(a, b *Table) bool {
	if len(a.Columns) != len(b.Columns) {
		return false
	}
	set := make(map[string]struct{}, len(a.Columns))
	for _, col := range a.Columns {
		set[col] = struct{}{}
	}
	for _, col := range b.Columns {
		if _, ok := set[col]; !ok {
			return false
		}
	}
	return true
}
