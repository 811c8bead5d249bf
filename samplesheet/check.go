package samplesheet

import (
	"log"
	"os"

	"github.com/ssi-dk/bifrost-reporter/bifrost"
)

// OptionalResults are result files that may be absent from a sample
// directory without excluding the sample.
var OptionalResults = []string{
	"whats_my_species",
	"min_read_check",
	"sp_cdiff_fbi",
	"sp_ecoli_fbi",
	"sp_salm_fbi",
}

// MandatoryResults lists the analysis types whose result file must exist in
// a sample directory for the sample to enter aggregation.
func MandatoryResults() []string {
	out := make([]string, 0, len(bifrost.Analyses))
	for _, a := range bifrost.Analyses {
		if a.Mandatory {
			out = append(out, a.Name)
		}
	}
	return out
}

// Check validates each sample directory and drops samples whose directory
// or any mandatory result file is missing. Exclusions are logged; the rest
// of the batch continues.
func Check(samples []Sample) []Sample {
	mandatory := MandatoryResults()

	out := make([]Sample, 0, len(samples))
	for _, s := range samples {
		info, err := os.Stat(s.Dir)
		if err != nil || !info.IsDir() {
			log.Printf("The folder %s could not be found. Please check again", s.Dir)
			continue
		}

		missing := ""
		for _, analysis := range mandatory {
			if _, err := os.Stat(s.ResultPath(analysis)); err != nil {
				missing = bifrost.FileName(s.ID, analysis)
				break
			}
		}
		if missing != "" {
			log.Printf("Sample %s is missing mandatory result file %s; excluded", s.ID, missing)
			continue
		}

		out = append(out, s)
	}
	return out
}
