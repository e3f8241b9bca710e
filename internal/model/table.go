package model

import (
	"math"
	"time"
)

// Table is a wide-format time series: one row per calendar date, one column
// per series id. The date index is unique and sorted ascending; missing
// observations are stored as NaN so every column has the same length as the
// index.
//
// A Table is built once by the normalizer and read-only afterward.
type Table struct {
	// Dates is the row index, ascending, first-of-month dates in UTC.
	Dates []time.Time
	// Columns lists series ids in first-seen order.
	Columns []string
	// Values maps series id -> values aligned with Dates (NaN = missing).
	Values map[string][]float64
}

// Len returns the number of rows in the date index.
func (t *Table) Len() int {
	return len(t.Dates)
}

// Start returns the earliest date in the index.
func (t *Table) Start() time.Time {
	return t.Dates[0]
}

// End returns the latest date in the index.
func (t *Table) End() time.Time {
	return t.Dates[len(t.Dates)-1]
}

// Value returns the cell for (seriesID, row i) and whether it is present.
func (t *Table) Value(seriesID string, i int) (float64, bool) {
	col, ok := t.Values[seriesID]
	if !ok || i < 0 || i >= len(col) {
		return 0, false
	}
	v := col[i]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Points returns the present (date, value) pairs of a column in index order,
// skipping missing cells.
func (t *Table) Points(seriesID string) ([]time.Time, []float64) {
	col, ok := t.Values[seriesID]
	if !ok {
		return nil, nil
	}
	xs := make([]time.Time, 0, len(col))
	ys := make([]float64, 0, len(col))
	for i, v := range col {
		if math.IsNaN(v) {
			continue
		}
		xs = append(xs, t.Dates[i])
		ys = append(ys, v)
	}
	return xs, ys
}

// Latest returns the chronologically latest present value of a column.
// The index is sorted ascending, so this is the last non-missing cell.
func (t *Table) Latest(seriesID string) (float64, bool) {
	col, ok := t.Values[seriesID]
	if !ok {
		return 0, false
	}
	for i := len(col) - 1; i >= 0; i-- {
		if !math.IsNaN(col[i]) {
			return col[i], true
		}
	}
	return 0, false
}

// MaxValue returns the largest present value across all columns, or 0 for a
// table with no present cells.
func (t *Table) MaxValue() float64 {
	max := math.Inf(-1)
	found := false
	for _, col := range t.Values {
		for _, v := range col {
			if math.IsNaN(v) {
				continue
			}
			if v > max {
				max = v
			}
			found = true
		}
	}
	if !found {
		return 0
	}
	return max
}
