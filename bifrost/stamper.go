package bifrost

import "github.com/ssi-dk/bifrost-reporter/table"

// Stamper verdicts.
const (
	StamperPass   = "Pass"
	StamperFail   = "Fail"
	StamperNotMet = "Requirement Not Met"
)

// StamperColumn is the single column of a QC stamper table.
const StamperColumn = "status"

// stamperParser builds the parser for a QC stamper (ssi_stamper,
// reslab_stamper). The sample passes only when every check recorded under
// results reports status "pass"; samples whose stamper component did not
// run to completion are marked "Requirement Not Met".
func stamperParser(name string) ParseFunc {
	return func(doc *Document) (*table.Table, error) {
		t := table.New(StamperColumn)

		if !doc.Success() {
			t.Add(doc.Sample, map[string]string{StamperColumn: StamperNotMet})
			return t, nil
		}

		verdict := StamperPass
		for _, v := range doc.Results {
			check, ok := v.(map[string]interface{})
			if !ok {
				continue
			}
			if status, ok := check["status"].(string); ok && status != "pass" {
				verdict = StamperFail
				break
			}
		}

		t.Add(doc.Sample, map[string]string{StamperColumn: verdict})
		return t, nil
	}
}
