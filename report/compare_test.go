package report

import (
	"testing"

	"github.com/ssi-dk/bifrost-reporter/table"
)

func geneMerged() map[string]*table.Table {
	merged := table.New("GENE", "%COVERAGE")
	merged.Add("A_BTP_WGS_EQA_001", map[string]string{"GENE": "blaTEM-1", "%COVERAGE": "100"})
	merged.Add("SSI_BTP_WGS_EQA_001", map[string]string{"GENE": "vanA", "%COVERAGE": "92"})
	return map[string]*table.Table{"A_BTP_WGS": merged}
}

func TestBuildComparisonsFeaturePresence(t *testing.T) {
	set := BuildComparisons(geneMerged(), CompareOptions{Feature: "GENE", Compare: "GENE"})

	if len(set.Samples) != 2 {
		t.Fatalf("sample set must be the union of both inputs: %v", set.Samples)
	}
	if len(set.Features) != 2 {
		t.Fatalf("features: %v", set.Features)
	}

	blaTEM := set.ByFeature["blaTEM-1"]
	if blaTEM == nil {
		t.Fatal("no comparison table for blaTEM-1")
	}
	bysample := map[string]string{}
	for _, row := range blaTEM.Rows {
		bysample[row.Sample] = row.Cells["GENE"]
	}
	if bysample["A_BTP_WGS_EQA_001"] != "blaTEM-1" {
		t.Errorf("detected value missing: %v", bysample)
	}
	if bysample["SSI_BTP_WGS_EQA_001"] != Absent {
		t.Errorf("undetected samples need the explicit absence marker: %v", bysample)
	}
}

func TestBuildComparisonsBaselineNotDuplicated(t *testing.T) {
	a := table.New("GENE")
	a.Add("A_BTP_WGS_EQA_001", map[string]string{"GENE": "blaTEM-1"})
	a.Add("SSI_BTP_WGS_EQA_001", map[string]string{"GENE": "blaTEM-1"})
	b := table.New("GENE")
	b.Add("B_BTP_WGS_EQA_001", map[string]string{"GENE": "vanA"})
	b.Add("SSI_BTP_WGS_EQA_001", map[string]string{"GENE": "blaTEM-1"})

	set := BuildComparisons(map[string]*table.Table{"A_BTP_WGS": a, "B_BTP_WGS": b},
		CompareOptions{Feature: "GENE", Compare: "GENE"})

	for _, row := range set.ByFeature["blaTEM-1"].Rows {
		if row.Sample == "SSI_BTP_WGS_EQA_001" && row.Cells["GENE"] != "blaTEM-1" {
			t.Errorf("baseline rows repeated across prefixes must not concatenate: %v", row.Cells)
		}
	}
}

func TestBuildComparisonsCollapsesAndRenames(t *testing.T) {
	merged := table.New("0", "1")
	merged.Add("A_BTP_WGS_EQA_001", map[string]string{"0": "13", "1": "4"})
	merged.Add("SSI_BTP_WGS_EQA_001", map[string]string{"0": "13", "1": "4"})

	set := BuildComparisons(map[string]*table.Table{"A_BTP_WGS": merged},
		CompareOptions{Rename: map[string]string{"0": "sequence type"}, Compare: CompareAll})

	view := set.ByPrefix["A_BTP_WGS"]
	if view == nil {
		t.Fatal("missing per-prefix view")
	}
	if !view.HasColumn("sequence type") {
		t.Errorf("rename not applied: %v", view.Columns)
	}
	if len(view.Rows) != 2 {
		t.Errorf("rows: %+v", view.Rows)
	}
}

func TestBuildComparisonsNMatchMetric(t *testing.T) {
	merged := table.New("0", "1")
	merged.Add("A_BTP_WGS_EQA_001", map[string]string{"0": "13", "1": "4"})
	merged.Add("SSI_BTP_WGS_EQA_001", map[string]string{"0": "13", "1": "9"})

	set := BuildComparisons(map[string]*table.Table{"A_BTP_WGS": merged},
		CompareOptions{Compare: CompareAll, Reference: "SSI_BTP_WGS_EQA_001"})

	view := set.ByPrefix["A_BTP_WGS"]
	bySample := map[string]string{}
	for _, row := range view.Rows {
		bySample[row.Sample] = row.Cells["n_match"]
	}
	if bySample["SSI_BTP_WGS_EQA_001"] != "2/2" {
		t.Errorf("reference row must fully match itself: %v", bySample)
	}
	if bySample["A_BTP_WGS_EQA_001"] != "1/2" {
		t.Errorf("one matching cell out of two expected: %v", bySample)
	}
}

func TestBuildComparisonsJaccardMetric(t *testing.T) {
	merged := table.New("GENE")
	merged.Add("A_BTP_WGS_EQA_001", map[string]string{"GENE": "blaTEM-1"})
	merged.Add("A_BTP_WGS_EQA_001", map[string]string{"GENE": "vanA"})
	merged.Add("SSI_BTP_WGS_EQA_001", map[string]string{"GENE": "blaTEM-1"})

	set := BuildComparisons(map[string]*table.Table{"A_BTP_WGS": merged},
		CompareOptions{Feature: "GENE", Compare: "GENE", Reference: "SSI_BTP_WGS_EQA_001"})

	view := set.ByPrefix["A_BTP_WGS"]
	for _, row := range view.Rows {
		if row.Sample != "A_BTP_WGS_EQA_001" {
			continue
		}
		// {blaTEM-1} vs {blaTEM-1,vanA}: intersection 1, union 2.
		if row.Cells["jaccard"] != "0.5" {
			t.Errorf("jaccard: %v", row.Cells)
		}
	}
}

func TestBuildComparisonsColumnAxis(t *testing.T) {
	set := BuildComparisons(geneMerged(),
		CompareOptions{Feature: "GENE", Compare: "GENE", Axis: AxisColumns})

	view := set.ByFeature["blaTEM-1"]
	if len(view.Columns) != 2 {
		t.Fatalf("samples must move to the columns: %v", view.Columns)
	}
	if len(view.Rows) != 1 || view.Rows[0].Sample != "GENE" {
		t.Errorf("transposed rows: %+v", view.Rows)
	}
}
