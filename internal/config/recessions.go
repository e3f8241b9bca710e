package config

import (
	"time"

	"bls-chart/internal/model"
)

// DefaultSeriesID is the U-3 unemployment rate from the Current Population
// Survey, the series charted when no config is supplied.
const DefaultSeriesID = "LNS14000000"

// DefaultSeriesNames returns the built-in display names.
func DefaultSeriesNames() map[string]string {
	return map[string]string{
		DefaultSeriesID: "U-3 Unemployment Rate (%)",
	}
}

// DefaultRecessionDates returns the NBER recession windows shipped with the
// tool. New recessions are added here or supplied via config.
func DefaultRecessionDates() []model.RecessionInterval {
	return []model.RecessionInterval{
		{Start: date(2001, 3), End: date(2001, 11)},
		{Start: date(2007, 12), End: date(2009, 6)},
		// COVID-19 recession
		{Start: date(2020, 2), End: date(2020, 4)},
	}
}

func date(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}
