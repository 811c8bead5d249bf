package bifrost

import (
	"fmt"

	"github.com/ssi-dk/bifrost-reporter/table"
)

var finderColumns = []string{"GENE", "%COVERAGE", "%IDENTITY", "SEQUENCE", "START", "END", "DATABASE", "ACCESSION"}

var finderNumeric = map[string]bool{
	"%COVERAGE": true,
	"%IDENTITY": true,
	"START":     true,
	"END":       true,
}

// finderParser builds the parser for one ariba finder tool (resfinder,
// virulencefinder, plasmidfinder). The summary key holding the hit list
// matches the analysis name; each hit becomes one row.
func finderParser(name string) ParseFunc {
	return func(doc *Document) (*table.Table, error) {
		t := table.New(finderColumns...)

		var hits []interface{}
		if doc.Success() {
			hits, _ = doc.Summary[name].([]interface{})
		}

		if len(hits) == 0 {
			// Failed runs and hit-free samples still contribute a zeroed
			// placeholder row, mirroring the upstream report shape. The
			// threshold filter removes it again downstream.
			t.Add(doc.Sample, emptyFinderRow())
			return t, nil
		}

		for i, hit := range hits {
			entry, ok := hit.(map[string]interface{})
			if !ok {
				return nil, &ParseError{Analysis: name, Sample: doc.Sample,
					Err: fmt.Errorf("hit %d is not a mapping", i)}
			}
			cells := make(map[string]string, len(finderColumns))
			for _, col := range finderColumns {
				if finderNumeric[col] {
					cells[col] = intString(entry[col])
				} else {
					cells[col] = cellString(entry[col])
				}
			}
			t.Add(doc.Sample, cells)
		}
		return t, nil
	}
}

func emptyFinderRow() map[string]string {
	cells := make(map[string]string, len(finderColumns))
	for _, col := range finderColumns {
		if finderNumeric[col] {
			cells[col] = "0"
		} else {
			cells[col] = ""
		}
	}
	return cells
}
