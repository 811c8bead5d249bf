package bifrost

import (
	"fmt"

	"github.com/ssi-dk/bifrost-reporter/table"
)

// assemblatronFields maps summary keys to their presentation columns, in
// output order.
var assemblatronFields = []struct {
	Key    string
	Column string
}{
	{"GC", "GC %"},
	{"N50", "N50"},
	{"bin_contigs_at_1x", "Number of contigs (1x cov.)"},
	{"bin_contigs_at_10x", "Number of contigs (10x cov.)"},
	{"bin_coverage_at_1x", "Average coverage (1x)"},
	{"bin_length_at_1x", "Genome size at 1x depth"},
	{"bin_length_at_10x", "Genome size at 10x depth"},
	{"bin_length_at_25x", "Genome size at 25x depth"},
	{"snp_filter_10x_10%", "Ambiguous sites"},
}

// AssemblatronColumns returns the presentation columns of the assembly
// metrics table.
func AssemblatronColumns() []string {
	out := make([]string, 0, len(assemblatronFields))
	for _, f := range assemblatronFields {
		out = append(out, f.Column)
	}
	return out
}

// ParseAssemblatron extracts assembly quality metrics (GC content, N50,
// contig counts, depth-binned genome sizes, ambiguous sites), one row per
// sample. Samples whose assembly did not succeed contribute nothing.
func ParseAssemblatron(doc *Document) (*table.Table, error) {
	t := table.New(AssemblatronColumns()...)
	if !doc.Success() {
		return t, nil
	}

	cells := make(map[string]string, len(assemblatronFields))
	for _, f := range assemblatronFields {
		v, present := doc.Summary[f.Key]
		if !present {
			return nil, &ParseError{Analysis: "assemblatron", Sample: doc.Sample,
				Err: fmt.Errorf("summary.%s missing", f.Key)}
		}
		cells[f.Column] = cellString(v)
	}
	t.Add(doc.Sample, cells)
	return t, nil
}
