// Package samplesheet reads the tabular sheets that enumerate a cohort's
// samples and validates each sample's result directory against the files
// the Bifrost pipeline is expected to have written.
package samplesheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/csimplestring/go-csv/detector"
	"github.com/extrame/xls"
	"github.com/gocarina/gocsv"

	"github.com/ssi-dk/bifrost-reporter/bifrost"
)

// Sample is one entry of a sample sheet: the identifier and the directory
// holding its result files.
type Sample struct {
	ID  string
	Dir string
}

// ResultPath returns the path of one analysis result file inside the sample
// directory.
func (s Sample) ResultPath(analysis string) string {
	return filepath.Join(s.Dir, bifrost.FileName(s.ID, analysis))
}

type sheetRow struct {
	SampleID string `csv:"SampleID"`
}

// Read loads a sample sheet (.xls, or delimited text with an auto-detected
// delimiter) and resolves each SampleID to a directory next to the sheet
// itself.
func Read(path string) ([]Sample, error) {
	var ids []string
	var err error
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		ids, err = readXLS(path)
	} else {
		ids, err = readDelimited(path)
	}
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	out := make([]Sample, 0, len(ids))
	for _, id := range ids {
		out = append(out, Sample{ID: id, Dir: filepath.Join(base, id)})
	}
	return out, nil
}

func readXLS(path string) ([]string, error) {
	book, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, pfx.Err(err)
	}

	sheet := book.GetSheet(0)
	if sheet == nil {
		return nil, pfx.Err(fmt.Errorf("%s: workbook has no sheets", path))
	}

	col := -1
	var ids []string
	for rowID := 0; rowID <= int(sheet.MaxRow); rowID++ {
		row := sheet.Row(rowID)
		if row == nil {
			continue
		}
		if rowID == 0 {
			for colID := 0; colID <= row.LastCol(); colID++ {
				if row.Col(colID) == "SampleID" {
					col = colID
				}
			}
			if col < 0 {
				return nil, pfx.Err(fmt.Errorf("%s: no SampleID column", path))
			}
			continue
		}
		if v := strings.TrimSpace(row.Col(col)); v != "" {
			ids = append(ids, v)
		}
	}
	return ids, nil
}

func readDelimited(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	delim := determineDelimiter(bytes.NewReader(raw))

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		r.LazyQuotes = true
		return r
	})

	rows := []*sheetRow{}
	if err := gocsv.UnmarshalBytes(raw, &rows); err != nil {
		return nil, pfx.Err(err)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if v := strings.TrimSpace(row.SampleID); v != "" {
			ids = append(ids, v)
		}
	}
	return ids, nil
}

// determineDelimiter returns the single most likely rune delimiting the
// values in the reader, assuming a CSV-like file.
func determineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}
