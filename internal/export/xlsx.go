package export

import (
	"io"
	"math"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const (
	statsSheet    = "Statistics"
	metadataSheet = "Metadata"
)

// writeXLSX stores the Category/Metric/Value table on one sheet and export
// metadata on another. Numeric values are written as numbers.
func writeXLSX(w io.Writer, doc Document) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", statsSheet); err != nil {
		return err
	}
	if err := setRow(f, statsSheet, 1, tableHeader); err != nil {
		return err
	}
	for i, row := range tableRows(doc.Stats) {
		if err := setRow(f, statsSheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(metadataSheet); err != nil {
		return err
	}
	meta := [][]string{
		{"Export Date", doc.GeneratedAt.Format(time.RFC3339)},
		{"Tool", toolName},
		{"Version", toolVersion},
		{"Source", doc.Source},
		{"Text Length", strconv.Itoa(utf8.RuneCountInString(doc.Text))},
	}
	for i, row := range meta {
		if err := setRow(f, metadataSheet, i+1, row); err != nil {
			return err
		}
	}

	idx, err := f.GetSheetIndex(statsSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, rowIdx int, values []string) error {
	for c, v := range values {
		cell, err := excelize.CoordinatesToCellName(c+1, rowIdx)
		if err != nil {
			return err
		}
		var value any = v
		if c == len(values)-1 {
			if n, err := strconv.ParseFloat(v, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
				value = n
			}
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
