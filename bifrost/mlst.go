package bifrost

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ssi-dk/bifrost-reporter/table"
)

// mlstNoResult stands in for samples whose MLST component did not succeed:
// one N/A for the sequence type and one per locus.
const mlstNoResult = "N/A,N/A,N/A,N/A,N/A,N/A,N/A,N/A"

// ParseMLST extracts the sequence type and per-locus alleles from an
// ariba_mlst document. The mlst_report summary is a comma-separated vector
// with the sequence type first; columns are named positionally so callers
// can rename them for presentation.
func ParseMLST(doc *Document) (*table.Table, error) {
	report := mlstNoResult
	if doc.Success() {
		var ok bool
		report, ok = doc.Summary["mlst_report"].(string)
		if !ok {
			return nil, &ParseError{Analysis: "ariba_mlst", Sample: doc.Sample,
				Err: errors.New("summary.mlst_report missing")}
		}
	}

	fields := strings.Split(report, ",")
	columns := make([]string, len(fields))
	cells := make(map[string]string, len(fields))
	for i, f := range fields {
		columns[i] = strconv.Itoa(i)
		cells[columns[i]] = f
	}

	t := table.New(columns...)
	t.Add(doc.Sample, cells)
	return t, nil
}
