package report

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/ssi-dk/bifrost-reporter/bifrost"
	"github.com/ssi-dk/bifrost-reporter/samplesheet"
	"github.com/ssi-dk/bifrost-reporter/table"
)

// outlierSD is the cutoff, in standard deviations from the cohort mean,
// beyond which an assembly metric is flagged.
const outlierSD = 5.0

// defaultRenames maps positional columns to semantic names per analysis
// type before comparison.
var defaultRenames = map[string]map[string]string{
	"ariba_mlst": {"0": "sequence type"},
}

// Run executes one batch: read and validate both cohort sheets, aggregate
// every analysis type, group the new cohort by prefix, merge each group
// against the full original cohort and write one comparison CSV per
// (analysis type, key) into outputFolder.
func Run(cfg *Config, outputFolder string, delim rune) error {
	newSamples, err := samplesheet.Read(cfg.Illumina.New)
	if err != nil {
		return &ConfigError{Path: cfg.Illumina.New, Err: err}
	}
	origSamples, err := samplesheet.Read(cfg.Illumina.Original)
	if err != nil {
		return &ConfigError{Path: cfg.Illumina.Original, Err: err}
	}

	newSamples = samplesheet.Check(newSamples)
	origSamples = samplesheet.Check(origSamples)
	log.Println("Validated", len(newSamples), "new-cohort and", len(origSamples), "original-cohort samples")

	newTables := Aggregate(cfg, newSamples)
	origTables := Aggregate(cfg, origSamples)

	// Both cohorts get the qc_flags column so the assembly tables keep a
	// common schema through the merge.
	FlagOutliers(newTables, outlierSD)
	FlagOutliers(origTables, outlierSD)

	if err := os.MkdirAll(outputFolder, 0o755); err != nil {
		return pfx.Err(err)
	}

	for _, analysis := range bifrost.Analyses {
		nt := newTables[analysis.Name]
		if nt == nil {
			log.Printf("%s: no rows in the new cohort; skipped", analysis.Name)
			continue
		}

		groups, err := GroupByPrefix(nt, cfg.Prefix)
		if err != nil {
			log.Printf("%s: %v; table skipped", analysis.Name, err)
			continue
		}

		merged, err := MergeCohorts(groups, origTables[analysis.Name])
		if errors.Is(err, table.ErrColumnMismatch) {
			log.Printf("%s: cohort schemas differ (%v); analysis skipped", analysis.Name, err)
			continue
		} else if err != nil {
			log.Printf("%s: %v; analysis skipped", analysis.Name, err)
			continue
		}

		set := BuildComparisons(merged, cfg.compareOptions(analysis))

		if analysis.FeatureColumn == "" {
			for prefix, view := range set.ByPrefix {
				if err := writeTable(outputFolder, analysis.Name, prefix, view, delim); err != nil {
					return err
				}
			}
			continue
		}
		for feature, view := range set.ByFeature {
			if err := writeTable(outputFolder, analysis.Name, feature, view, delim); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *Config) compareOptions(a bifrost.Analysis) CompareOptions {
	opt := CompareOptions{
		Rename:    defaultRenames[a.Name],
		Feature:   a.FeatureColumn,
		Compare:   CompareAll,
		Axis:      c.Compare.Axis,
		Reference: c.Compare.Reference,
	}
	if a.FeatureColumn != "" {
		opt.Compare = a.FeatureColumn
	}
	return opt
}

func writeTable(folder, analysis, key string, t *table.Table, delim rune) error {
	name := analysis + "-" + safeFileName(key) + ".csv"

	f, err := os.Create(filepath.Join(folder, name))
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	if err := table.WriteCSV(t, f, delim); err != nil {
		return err
	}
	log.Println("Wrote", name)
	return nil
}

// safeFileName keeps feature names like gene aliases from escaping the
// output folder or breaking on the filesystem.
func safeFileName(key string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, key)
}
