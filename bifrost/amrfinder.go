package bifrost

import (
	"errors"
	"fmt"

	"github.com/ssi-dk/bifrost-reporter/table"
)

// amrColumns is the fixed AMRFinderPlus report schema.
var amrColumns = []string{
	"% Coverage of reference sequence", "% Identity to reference sequence",
	"Accession of closest sequence", "Alignment length", "Class", "Contig id",
	"Element subtype", "Element type", "Gene symbol", "HMM description", "HMM id",
	"Method", "Name of closest sequence", "Protein identifier",
	"Reference sequence length", "Scope", "Sequence name", "Start", "Stop",
	"Strand", "Subclass", "Target length",
}

// ParseAMRFinder extracts AMR gene hits from an amrfinderplus_fbi document,
// one row per hit. A non-successful run contributes a single empty row so
// the sample still shows up in the table.
func ParseAMRFinder(doc *Document) (*table.Table, error) {
	t := table.New(amrColumns...)

	if !doc.Success() {
		t.Add(doc.Sample, map[string]string{})
		return t, nil
	}

	rows, ok := doc.Summary["output_tsv"].([]interface{})
	if !ok {
		return nil, &ParseError{Analysis: "amrfinderplus_fbi", Sample: doc.Sample,
			Err: errors.New("summary.output_tsv missing")}
	}

	for i, r := range rows {
		entry, ok := r.(map[string]interface{})
		if !ok {
			return nil, &ParseError{Analysis: "amrfinderplus_fbi", Sample: doc.Sample,
				Err: fmt.Errorf("output_tsv row %d is not a mapping", i)}
		}
		cells := make(map[string]string, len(amrColumns))
		for _, col := range amrColumns {
			if v, present := entry[col]; present {
				cells[col] = cellString(v)
			}
		}
		t.Add(doc.Sample, cells)
	}
	return t, nil
}
