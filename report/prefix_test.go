package report

import (
	"errors"
	"testing"

	"github.com/ssi-dk/bifrost-reporter/table"
)

func TestPrefixDefaultRule(t *testing.T) {
	prefix, ok := DefaultPrefixRule.Prefix("HER_BTP_WGS_EQA_001")
	if !ok || prefix != "HER_BTP_WGS" {
		t.Errorf("got %q, %v", prefix, ok)
	}
}

func TestPrefixCustomSeparator(t *testing.T) {
	rule := PrefixRule{Separator: "-", Tokens: 1}

	prefix, ok := rule.Prefix("B123-sample01")
	if !ok || prefix != "B123" {
		t.Errorf("got %q, %v", prefix, ok)
	}

	if _, ok := rule.Prefix("sample01"); ok {
		t.Error("an identifier with no separator must not derive a prefix")
	}
}

func TestGroupByPrefix(t *testing.T) {
	tab := table.New("0")
	tab.Add("A_BTP_WGS_EQA_001", map[string]string{"0": "13"})
	tab.Add("A_BTP_WGS_EQA_002", map[string]string{"0": "13"})
	tab.Add("B_BTP_WGS_EQA_001", map[string]string{"0": "11"})
	tab.Add("oddname", map[string]string{"0": "9"})

	groups, err := GroupByPrefix(tab, DefaultPrefixRule)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %v", groups)
	}
	if len(groups["A_BTP_WGS"].Rows) != 2 {
		t.Errorf("group A_BTP_WGS: %+v", groups["A_BTP_WGS"].Rows)
	}
	for prefix, g := range groups {
		for _, row := range g.Rows {
			if row.Sample == "oddname" {
				t.Errorf("non-conforming sample filed under %q", prefix)
			}
		}
	}
}

func TestGroupByPrefixEmptyTable(t *testing.T) {
	if _, err := GroupByPrefix(table.New("0"), DefaultPrefixRule); !errors.Is(err, ErrNoGroups) {
		t.Errorf("an empty table must yield ErrNoGroups, got %v", err)
	}
}

func TestGroupByPrefixNoMatches(t *testing.T) {
	tab := table.New("0")
	tab.Add("oddname", map[string]string{"0": "9"})

	if _, err := GroupByPrefix(tab, DefaultPrefixRule); !errors.Is(err, ErrNoGroups) {
		t.Errorf("a table with no conforming rows must yield ErrNoGroups, got %v", err)
	}
}
