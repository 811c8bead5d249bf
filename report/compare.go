package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ssi-dk/bifrost-reporter/table"
)

// Absent marks a sample with no observation for a feature.
const Absent = "no_data"

// CompareAll compares whole rows instead of a single column.
const CompareAll = "all"

// Comparison axes.
const (
	AxisRows    = "rows"    // samples on rows (default)
	AxisColumns = "columns" // samples on columns
)

// CompareOptions configure how merged tables are reshaped into comparison
// views.
type CompareOptions struct {
	// Rename maps ambiguous columns to semantic names before comparison,
	// e.g. the positional MLST column "0" to "sequence type".
	Rename map[string]string
	// Compare is the column whose content is surfaced per sample, or
	// CompareAll for whole rows.
	Compare string
	// Feature is the pivot key column; empty builds no per-feature views.
	Feature string
	// Columns restricts the retained columns; nil keeps everything.
	Columns []string
	// Axis chooses the orientation of the output tables.
	Axis string
	// Reference names the sample whose row anchors the match metrics;
	// empty disables them.
	Reference string
}

// ComparisonSet is the reshaped output for one analysis type.
type ComparisonSet struct {
	// Samples are the distinct identifiers seen across all merged tables.
	Samples []string
	// Features are the distinct pivot keys seen across all merged tables.
	Features []string
	// ByPrefix holds one collapsed view per prefix group.
	ByPrefix map[string]*table.Table
	// ByFeature holds one presence view per feature.
	ByFeature map[string]*table.Table
}

// BuildComparisons reshapes the merged tables of one analysis type into
// comparison views: per-prefix collapsed tables, and — when a feature
// column is configured — one table per distinct feature showing each
// sample's value or the explicit absence marker.
func BuildComparisons(merged map[string]*table.Table, opt CompareOptions) *ComparisonSet {
	set := &ComparisonSet{
		ByPrefix:  make(map[string]*table.Table, len(merged)),
		ByFeature: map[string]*table.Table{},
	}

	renamed := make(map[string]*table.Table, len(merged))
	sampleSet := map[string]struct{}{}
	featureSet := map[string]struct{}{}

	for _, prefix := range sortedKeys(merged) {
		t := merged[prefix].Clone()
		t.Rename(opt.Rename)
		renamed[prefix] = t

		for _, s := range t.Samples() {
			sampleSet[s] = struct{}{}
		}
		if opt.Feature != "" {
			for _, row := range t.Rows {
				if v := row.Cells[opt.Feature]; v != "" {
					featureSet[v] = struct{}{}
				}
			}
		}

		view := table.Collapse(t)
		if opt.Columns != nil {
			view = view.Select(opt.Columns)
		}
		view.SortBySample()
		if opt.Reference != "" {
			appendMatchMetrics(view, opt)
		}
		if opt.Axis == AxisColumns {
			view = table.Transpose(view)
		}
		set.ByPrefix[prefix] = view
	}

	set.Samples = sortedSet(sampleSet)
	set.Features = sortedSet(featureSet)

	for _, feature := range set.Features {
		view := featureView(renamed, feature, opt, set.Samples)
		if opt.Axis == AxisColumns {
			view = table.Transpose(view)
		}
		set.ByFeature[feature] = view
	}

	return set
}

// featureView builds the comparison table for a single feature: one row per
// sample seen anywhere, holding the comparison column's content or the
// absence marker. The baseline cohort repeats in every merged table, so
// values are collected as an ordered set rather than concatenated blindly.
func featureView(renamed map[string]*table.Table, feature string, opt CompareOptions, samples []string) *table.Table {
	values := map[string][]string{}
	seen := map[string]map[string]struct{}{}

	for _, prefix := range sortedKeys(renamed) {
		for _, row := range renamed[prefix].Rows {
			if row.Cells[opt.Feature] != feature {
				continue
			}
			v := row.Cells[opt.Compare]
			if _, dup := seen[row.Sample][v]; dup {
				continue
			}
			if seen[row.Sample] == nil {
				seen[row.Sample] = map[string]struct{}{}
			}
			seen[row.Sample][v] = struct{}{}
			values[row.Sample] = append(values[row.Sample], v)
		}
	}

	out := table.New(opt.Compare)
	for _, sample := range samples {
		cell := Absent
		if v, ok := values[sample]; ok {
			cell = strings.Join(v, ",")
		}
		out.Add(sample, map[string]string{opt.Compare: cell})
	}
	return out
}

// appendMatchMetrics adds a per-row agreement column against the reference
// sample's row: "k/n" matching cells when comparing whole rows, or the
// Jaccard index of the comma-joined vectors when comparing one column.
func appendMatchMetrics(t *table.Table, opt CompareOptions) {
	var ref *table.Row
	for i := range t.Rows {
		if t.Rows[i].Sample == opt.Reference {
			ref = &t.Rows[i]
			break
		}
	}
	if ref == nil {
		return
	}

	columns := append([]string{}, t.Columns...)

	if opt.Compare == CompareAll {
		t.AddColumn("n_match")
		for i := range t.Rows {
			n := 0
			for _, col := range columns {
				if t.Rows[i].Cells[col] == ref.Cells[col] {
					n++
				}
			}
			t.Rows[i].Cells["n_match"] = fmt.Sprintf("%d/%d", n, len(columns))
		}
		return
	}

	t.AddColumn("jaccard")
	refSet := splitSet(ref.Cells[opt.Compare])
	for i := range t.Rows {
		j := jaccard(refSet, splitSet(t.Rows[i].Cells[opt.Compare]))
		t.Rows[i].Cells["jaccard"] = strconv.FormatFloat(j, 'g', -1, 64)
	}
}

func splitSet(v string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, part := range strings.Split(v, ",") {
		out[part] = struct{}{}
	}
	return out
}

func jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for v := range a {
		if _, ok := b[v]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func sortedKeys(m map[string]*table.Table) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedSet(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
