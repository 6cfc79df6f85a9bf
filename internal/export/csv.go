package export

import (
	"encoding/csv"
	"io"
)

var tableHeader = []string{"Category", "Metric", "Value"}

func writeCSV(w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tableHeader); err != nil {
		return err
	}
	for _, row := range tableRows(doc.Stats) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
