// Package table implements the in-memory analysis tables that the reporter
// builds from parsed Bifrost results: one table per analysis type, rows
// keyed by sample identifier, cells kept as strings the way the upstream
// reports present them.
package table

// Row is one observation for one sample. A sample may own several rows in
// the same table (e.g. one per detected resistance gene).
type Row struct {
	Sample string
	Cells  map[string]string
}

// Table is a two-dimensional table for one analysis type. Columns keeps the
// column order; cells are keyed by column name.
type Table struct {
	Columns []string
	Rows    []Row
}

func New(columns ...string) *Table {
	return &Table{Columns: append([]string{}, columns...)}
}

// Add appends one row. The cell map is copied so callers can reuse theirs.
func (t *Table) Add(sample string, cells map[string]string) {
	copied := make(map[string]string, len(cells))
	for k, v := range cells {
		copied[k] = v
	}
	t.Rows = append(t.Rows, Row{Sample: sample, Cells: copied})
}

func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column unless it is already present.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// Extend appends another table's rows, adopting any columns this table has
// not seen yet in their discovery order.
func (t *Table) Extend(other *Table) {
	if other == nil {
		return
	}
	for _, col := range other.Columns {
		t.AddColumn(col)
	}
	for _, row := range other.Rows {
		t.Add(row.Sample, row.Cells)
	}
}

// Samples returns the distinct sample identifiers in first-seen order.
func (t *Table) Samples() []string {
	seen := make(map[string]struct{}, len(t.Rows))
	out := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if _, exists := seen[row.Sample]; exists {
			continue
		}
		seen[row.Sample] = struct{}{}
		out = append(out, row.Sample)
	}
	return out
}

func (t *Table) Clone() *Table {
	out := New(t.Columns...)
	for _, row := range t.Rows {
		out.Add(row.Sample, row.Cells)
	}
	return out
}

// Rename renames columns in place. Columns absent from the mapping keep
// their names.
func (t *Table) Rename(mapping map[string]string) {
	if len(mapping) == 0 {
		return
	}
	for i, col := range t.Columns {
		if name, ok := mapping[col]; ok {
			t.Columns[i] = name
		}
	}
	for _, row := range t.Rows {
		for old, name := range mapping {
			if v, ok := row.Cells[old]; ok {
				delete(row.Cells, old)
				row.Cells[name] = v
			}
		}
	}
}

// Select returns a copy holding only the named columns, in the given order.
// Unknown names become empty columns.
func (t *Table) Select(columns []string) *Table {
	out := New(columns...)
	for _, row := range t.Rows {
		cells := make(map[string]string, len(columns))
		for _, col := range columns {
			cells[col] = row.Cells[col]
		}
		out.Add(row.Sample, cells)
	}
	return out
}
