package bifrost

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ssi-dk/bifrost-reporter/table"
)

// ParsePointMutations flattens results.pointmutations_tsv.values into one
// row per detected mutation. Column names come from the records themselves
// (sorted for a stable order); the redundant #Sample column is dropped in
// favor of the document's sample name.
func ParsePointMutations(doc *Document) (*table.Table, error) {
	if !doc.Success() {
		return table.New(), nil
	}

	section, _ := doc.Results["pointmutations_tsv"].(map[string]interface{})
	values, _ := section["values"].([]interface{})
	if len(values) == 0 {
		return nil, &ParseError{Analysis: "kma_pointmutations", Sample: doc.Sample,
			Err: errors.New("pointmutations summary missing")}
	}

	columnSet := make(map[string]struct{})
	entries := make([]map[string]interface{}, 0, len(values))
	for i, v := range values {
		entry, ok := v.(map[string]interface{})
		if !ok {
			return nil, &ParseError{Analysis: "kma_pointmutations", Sample: doc.Sample,
				Err: fmt.Errorf("record %d is not a mapping", i)}
		}
		for k := range entry {
			if k == "#Sample" {
				continue
			}
			columnSet[k] = struct{}{}
		}
		entries = append(entries, entry)
	}

	columns := make([]string, 0, len(columnSet))
	for k := range columnSet {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	t := table.New(columns...)
	for _, entry := range entries {
		cells := make(map[string]string, len(columns))
		for _, col := range columns {
			if v, present := entry[col]; present {
				cells[col] = cellString(v)
			}
		}
		t.Add(doc.Sample, cells)
	}
	return t, nil
}
