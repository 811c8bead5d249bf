package bifrost

import "github.com/ssi-dk/bifrost-reporter/table"

// ParseFunc converts one sample's result document into zero or more
// normalized rows.
type ParseFunc func(doc *Document) (*table.Table, error)

// Analysis describes one Bifrost analysis type: whether its result file is
// mandatory for a sample to be valid, how to parse it, which columns its
// threshold filter reads, and which column keys its comparison tables.
type Analysis struct {
	Name      string
	Mandatory bool
	Parse     ParseFunc

	// CoverageColumn and IdentityColumn are empty for analyses that do not
	// report percentages; those tables pass through the filter unchanged.
	CoverageColumn string
	IdentityColumn string

	// FeatureColumn is the pivot key for per-feature comparison tables.
	// Empty means the analysis is compared on whole rows per prefix.
	FeatureColumn string
}

// Analyses enumerates the full set of known analysis types, in output
// order. Every type flows through the same aggregation, merge and
// comparison pipeline.
var Analyses = []Analysis{
	{Name: "ariba_mlst", Mandatory: true, Parse: ParseMLST},
	{Name: "ariba_resfinder", Mandatory: true, Parse: finderParser("ariba_resfinder"),
		CoverageColumn: "%COVERAGE", IdentityColumn: "%IDENTITY", FeatureColumn: "GENE"},
	{Name: "ariba_virulencefinder", Mandatory: true, Parse: finderParser("ariba_virulencefinder"),
		CoverageColumn: "%COVERAGE", IdentityColumn: "%IDENTITY", FeatureColumn: "GENE"},
	{Name: "ariba_plasmidfinder", Mandatory: true, Parse: finderParser("ariba_plasmidfinder"),
		CoverageColumn: "%COVERAGE", IdentityColumn: "%IDENTITY", FeatureColumn: "GENE"},
	{Name: "amrfinderplus_fbi", Mandatory: true, Parse: ParseAMRFinder,
		CoverageColumn: "% Coverage of reference sequence",
		IdentityColumn: "% Identity to reference sequence",
		FeatureColumn:  "Gene symbol"},
	{Name: "kma_pointmutations", Mandatory: true, Parse: ParsePointMutations},
	{Name: "assemblatron", Mandatory: true, Parse: ParseAssemblatron},
	{Name: "ssi_stamper", Mandatory: true, Parse: stamperParser("ssi_stamper")},
	{Name: "reslab_stamper", Mandatory: true, Parse: stamperParser("reslab_stamper")},
	{Name: "whats_my_species", Parse: ParseSpecies},
}

// ByName looks an analysis type up in the registry.
func ByName(name string) (Analysis, bool) {
	for _, a := range Analyses {
		if a.Name == name {
			return a, true
		}
	}
	return Analysis{}, false
}

// FileName returns the result file name for one sample and analysis type,
// following the Bifrost <sample>__<analysis>.yaml convention.
func FileName(sample, analysis string) string {
	return sample + "__" + analysis + ".yaml"
}
