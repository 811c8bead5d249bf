package table

import (
	"encoding/csv"
	"io"

	"github.com/carbocation/pfx"
)

// WriteCSV writes the table with the sample identifier in the first column,
// under an empty header cell. The delimiter is an explicit parameter;
// display concerns do not live on the table itself.
func WriteCSV(t *Table, w io.Writer, delim rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim

	header := append([]string{""}, t.Columns...)
	if err := cw.Write(header); err != nil {
		return pfx.Err(err)
	}

	for _, row := range t.Rows {
		record := make([]string, 0, len(t.Columns)+1)
		record = append(record, row.Sample)
		for _, col := range t.Columns {
			record = append(record, row.Cells[col])
		}
		if err := cw.Write(record); err != nil {
			return pfx.Err(err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
