package series

import (
	"math"
	"sort"
	"strconv"
	"time"

	"bls-chart/internal/model"
)

// point is one tidy observation: a monthly bucket flattened to a date.
type point struct {
	seriesID string
	date     time.Time
	value    float64
}

// Normalize converts a raw BLS payload into a wide time-series table: one
// row per distinct date, one column per distinct series id.
//
// Only monthly period codes ("M01".."M12") are accepted; quarterly, annual
// and annual-average ("M13") codes are skipped entirely. This is a
// deliberate simplification: the pipeline supports monthly series only.
//
// The returned table's date index is sorted ascending and unique, so the
// last row of any column is the chronologically latest observation.
func Normalize(payload *model.BLSResponse) (*model.Table, error) {
	if payload == nil {
		return nil, &MalformedPayloadError{Reason: "payload is nil"}
	}
	if payload.Results == nil {
		return nil, &MalformedPayloadError{Reason: "missing Results"}
	}
	if payload.Results.Series == nil {
		return nil, &MalformedPayloadError{Reason: "missing Results.series"}
	}

	var points []point
	for _, s := range payload.Results.Series {
		for _, obs := range s.Data {
			month, ok := monthFromPeriod(obs.Period)
			if !ok {
				// Non-monthly bucket (quarterly/annual/annual average).
				continue
			}
			year, err := strconv.Atoi(obs.Year)
			if err != nil {
				return nil, &ValueConversionError{SeriesID: s.SeriesID, Field: "year", Raw: obs.Year, Err: err}
			}
			value, err := strconv.ParseFloat(obs.Value, 64)
			if err != nil {
				return nil, &ValueConversionError{SeriesID: s.SeriesID, Field: "value", Raw: obs.Value, Err: err}
			}
			points = append(points, point{
				seriesID: s.SeriesID,
				date:     time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
				value:    value,
			})
		}
	}

	return pivot(points)
}

// monthFromPeriod parses a monthly period code. "M01".."M12" yield the month
// number; anything else (including "M13", the annual average) is rejected.
func monthFromPeriod(period string) (int, bool) {
	if len(period) != 3 || period[0] != 'M' {
		return 0, false
	}
	m, err := strconv.Atoi(period[1:])
	if err != nil || m < 1 || m > 12 {
		return 0, false
	}
	return m, true
}

// pivot reshapes long-form points into the wide table. Duplicate
// (date, series) keys fail the whole normalization.
func pivot(points []point) (*model.Table, error) {
	dateSet := map[time.Time]struct{}{}
	var columns []string
	seen := map[string]struct{}{}
	for _, p := range points {
		dateSet[p.date] = struct{}{}
		if _, ok := seen[p.seriesID]; !ok {
			seen[p.seriesID] = struct{}{}
			columns = append(columns, p.seriesID)
		}
	}

	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	rowIdx := make(map[time.Time]int, len(dates))
	for i, d := range dates {
		rowIdx[d] = i
	}

	values := make(map[string][]float64, len(columns))
	for _, col := range columns {
		cells := make([]float64, len(dates))
		for i := range cells {
			cells[i] = math.NaN()
		}
		values[col] = cells
	}

	for _, p := range points {
		cells := values[p.seriesID]
		i := rowIdx[p.date]
		if !math.IsNaN(cells[i]) {
			return nil, &DuplicateObservationError{SeriesID: p.seriesID, Date: p.date}
		}
		cells[i] = p.value
	}

	return &model.Table{Dates: dates, Columns: columns, Values: values}, nil
}
