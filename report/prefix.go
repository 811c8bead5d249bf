package report

import (
	"errors"
	"log"
	"strings"

	"github.com/ssi-dk/bifrost-reporter/table"
)

// PrefixRule derives the batch prefix from a sample identifier: the leading
// Tokens separator-joined fields. An identifier qualifies only when it has
// more fields than the prefix itself, so a bare name never forms a group of
// its own.
type PrefixRule struct {
	Separator string `yaml:"separator"`
	Tokens    int    `yaml:"tokens"`
}

// DefaultPrefixRule matches the <site>_<dept>_WGS_<sample...> naming scheme
// used on the Illumina sample sheets.
var DefaultPrefixRule = PrefixRule{Separator: "_", Tokens: 3}

// Prefix derives the batch prefix for one sample identifier. The second
// return value is false when the identifier does not follow the naming
// convention.
func (r PrefixRule) Prefix(sample string) (string, bool) {
	parts := strings.Split(sample, r.Separator)
	if len(parts) <= r.Tokens {
		return "", false
	}
	return strings.Join(parts[:r.Tokens], r.Separator), true
}

// ErrNoGroups reports a table from which no prefix group could be derived;
// the caller skips the whole table.
var ErrNoGroups = errors.New("no prefix groups")

// GroupByPrefix partitions a table by each row's derived prefix. Rows whose
// identifier does not follow the naming convention are left out of every
// group and logged; they are never filed under a guessed prefix. An empty
// table, or one where no row matched, yields ErrNoGroups.
func GroupByPrefix(t *table.Table, rule PrefixRule) (map[string]*table.Table, error) {
	if t == nil || len(t.Rows) == 0 {
		return nil, ErrNoGroups
	}

	groups := map[string]*table.Table{}
	for _, row := range t.Rows {
		prefix, ok := rule.Prefix(row.Sample)
		if !ok {
			log.Printf("sample %q does not match the %q-separated naming convention; left out of every prefix group",
				row.Sample, rule.Separator)
			continue
		}
		g, exists := groups[prefix]
		if !exists {
			g = table.New(t.Columns...)
			groups[prefix] = g
		}
		g.Add(row.Sample, row.Cells)
	}

	if len(groups) == 0 {
		return nil, ErrNoGroups
	}
	return groups, nil
}
