package series

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"bls-chart/internal/model"
)

// WriteTableCSV writes a normalized table to path as CSV: a date column
// followed by one column per series, rows in index order. Missing cells are
// written empty.
func WriteTableCSV(path string, t *model.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteTable(f, t)
}

// WriteTable writes the CSV form of a table to w.
func WriteTable(w io.Writer, t *model.Table) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := make([]string, 0, len(t.Columns)+1)
	header = append(header, "date")
	header = append(header, t.Columns...)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, d := range t.Dates {
		row[0] = d.Format("2006-01-02")
		for j, col := range t.Columns {
			if v, ok := t.Value(col, i); ok {
				row[j+1] = strconv.FormatFloat(v, 'f', -1, 64)
			} else {
				row[j+1] = ""
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
