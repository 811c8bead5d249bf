package bifrost

import (
	"errors"
	"strconv"

	"github.com/ssi-dk/bifrost-reporter/table"
)

var speciesColumns = []string{
	"name_classified_species_1", "percent_classified_species_1",
	"name_classified_species_2", "percent_classified_species_2",
	"percent_unclassified", "sum_unclassified_species1",
}

// ParseSpecies extracts the species classification summary, one row per
// sample, and derives the combined unclassified-plus-top-species
// proportion. The result file is optional; failed runs contribute nothing.
func ParseSpecies(doc *Document) (*table.Table, error) {
	t := table.New(speciesColumns...)
	if !doc.Success() {
		return t, nil
	}

	unclassified, ok1 := asFloat(doc.Summary["percent_unclassified"])
	species1, ok2 := asFloat(doc.Summary["percent_classified_species_1"])
	if !ok1 || !ok2 {
		return nil, &ParseError{Analysis: "whats_my_species", Sample: doc.Sample,
			Err: errors.New("classification percentages missing")}
	}

	cells := make(map[string]string, len(speciesColumns))
	for _, col := range speciesColumns[:5] {
		cells[col] = cellString(doc.Summary[col])
	}
	cells["sum_unclassified_species1"] = strconv.FormatFloat(unclassified+species1, 'g', -1, 64)

	t.Add(doc.Sample, cells)
	return t, nil
}
