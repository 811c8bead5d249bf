package report

import (
	"log"
	"os"

	"github.com/ssi-dk/bifrost-reporter/bifrost"
	"github.com/ssi-dk/bifrost-reporter/samplesheet"
	"github.com/ssi-dk/bifrost-reporter/table"
)

// Aggregate parses and threshold-filters every known analysis type for
// every sample, folding the rows into one table per analysis. A failure for
// a single sample/type is logged and skipped; it never aborts the batch.
// Samples that contribute no rows for a type are simply absent from that
// type's table, and types with no rows at all are absent from the result.
func Aggregate(cfg *Config, samples []samplesheet.Sample) map[string]*table.Table {
	out := make(map[string]*table.Table, len(bifrost.Analyses))

	for _, analysis := range bifrost.Analyses {
		acc := table.New()

		for _, s := range samples {
			path := s.ResultPath(analysis.Name)
			if _, err := os.Stat(path); err != nil {
				// No data for this sample/type.
				continue
			}

			doc, err := bifrost.Load(path)
			if err != nil {
				log.Printf("%s: sample %s: %v; dropped for this analysis", analysis.Name, s.ID, err)
				continue
			}

			rows, err := analysis.Parse(doc)
			if err != nil {
				log.Printf("%v; dropped for this analysis", err)
				continue
			}

			rows = table.Filter(rows, analysis.CoverageColumn, analysis.IdentityColumn, cfg.Threshold(analysis.Name))
			acc.Extend(rows)
		}

		if len(acc.Rows) > 0 {
			out[analysis.Name] = acc
		}
	}

	return out
}
