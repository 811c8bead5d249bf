package report

import (
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/gonum/stat"

	"github.com/ssi-dk/bifrost-reporter/bifrost"
	"github.com/ssi-dk/bifrost-reporter/table"
)

// SampleFlags maps sample identifiers to the set of advisory QC flags
// raised against them.
type SampleFlags map[string]flagSet

func (s SampleFlags) Add(sample, flag string) {
	samp, exists := s[sample]
	if !exists {
		samp = make(flagSet)
	}
	samp[flag] = struct{}{}
	s[sample] = samp
}

type flagSet map[string]struct{}

func (fs flagSet) String() string {
	if len(fs) == 0 {
		return ""
	}

	sb := make([]string, 0, len(fs))
	for v := range fs {
		sb = append(sb, v)
	}

	sort.Strings(sb)

	return strings.Join(sb, "|")
}

// outlierColumns are the assembly metrics screened for cohort-level
// outliers.
var outlierColumns = []string{"N50", "Genome size at 1x depth"}

// QCFlagColumn carries the advisory flags on the assembly metrics table.
const QCFlagColumn = "qc_flags"

// FlagOutliers marks samples whose assembly metrics sit more than nSD
// standard deviations from the cohort mean, plus samples whose QC stamper
// verdict is not Pass. The flags are logged and appended to the assembly
// table in a qc_flags column; nothing is removed.
func FlagOutliers(tables map[string]*table.Table, nSD float64) SampleFlags {
	flags := SampleFlags{}

	asm := tables["assemblatron"]
	if asm != nil {
		for _, col := range outlierColumns {
			flagBeyondSD(flags, asm, col, nSD)
		}
	}

	for _, stamper := range []string{"ssi_stamper", "reslab_stamper"} {
		st := tables[stamper]
		if st == nil {
			continue
		}
		for _, row := range st.Rows {
			if row.Cells[bifrost.StamperColumn] != bifrost.StamperPass {
				flags.Add(row.Sample, stamper+"_fail")
			}
		}
	}

	if asm != nil {
		asm.AddColumn(QCFlagColumn)
		for i := range asm.Rows {
			asm.Rows[i].Cells[QCFlagColumn] = flags[asm.Rows[i].Sample].String()
		}
	}

	for sample, fs := range flags {
		log.Printf("sample %s flagged: %s", sample, fs)
	}

	return flags
}

func flagBeyondSD(out SampleFlags, t *table.Table, col string, nSD float64) {
	value := make([]float64, 0, len(t.Rows))

	// Pass 1: populate the slice
	for _, row := range t.Rows {
		if v, err := strconv.ParseFloat(row.Cells[col], 64); err == nil {
			value = append(value, v)
		}
	}
	if len(value) < 2 {
		return
	}

	m, s := stat.MeanStdDev(value, nil)

	// Pass 2: flag entries that exceed the bounds
	for _, row := range t.Rows {
		v, err := strconv.ParseFloat(row.Cells[col], 64)
		if err != nil {
			continue
		}
		if v < m-nSD*s || v > m+nSD*s {
			out.Add(row.Sample, col)
		}
	}
}
