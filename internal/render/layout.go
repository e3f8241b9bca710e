package render

import (
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"bls-chart/internal/model"
)

// singleDatePad is the per-side padding used when the table covers a single
// date, where a fraction of the (zero) range would collapse the axis.
const singleDatePad = 30 * 24 * time.Hour

// yAxisFloor keeps recession-depth context visible even for a flat,
// low-value series.
const yAxisFloor = 15.0

// yHeadroom leaves 10% of space above the actual data maximum.
const yHeadroom = 1.1

// timeToFloat converts a date to go-chart's x coordinate space.
func timeToFloat(t time.Time) float64 {
	return float64(t.UnixNano())
}

// xRange computes the drawable x-axis window: the table's date range plus
// frac of that range as symmetric padding.
func xRange(t *model.Table, frac float64) (xMin, xMax time.Time, pad time.Duration) {
	start, end := t.Start(), t.End()
	if end.After(start) {
		pad = time.Duration(float64(end.Sub(start)) * frac)
	} else {
		pad = singleDatePad
	}
	return start.Add(-pad), end.Add(pad), pad
}

// visibleRecessions keeps only the intervals overlapping [xMin, xMax],
// clipped to that window. Intervals fully outside the window never reach
// the draw list.
func visibleRecessions(intervals []model.RecessionInterval, xMin, xMax time.Time) []model.RecessionInterval {
	var out []model.RecessionInterval
	for _, iv := range intervals {
		if !iv.Overlaps(xMin, xMax) {
			continue
		}
		out = append(out, iv.Clip(xMin, xMax))
	}
	return out
}

// yAxisMax returns the top of the y-axis: max(15, dataMax * 1.1).
func yAxisMax(dataMax float64) float64 {
	if m := dataMax * yHeadroom; m > yAxisFloor {
		return m
	}
	return yAxisFloor
}

// yearTicks returns one x-axis tick per fourth calendar year (years
// divisible by 4), labeled by year only. Narrow windows that fit fewer than
// two such ticks keep any tick found and anchor the rest on the window
// endpoints; endpoints sharing a year get month labels so the pair stays
// distinguishable.
func yearTicks(xMin, xMax time.Time) []chart.Tick {
	var ticks []chart.Tick
	year := xMin.Year()
	if rem := year % 4; rem != 0 {
		year += 4 - rem
	}
	for ; year <= xMax.Year(); year += 4 {
		t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		if t.Before(xMin) || t.After(xMax) {
			continue
		}
		ticks = append(ticks, chart.Tick{Value: timeToFloat(t), Label: t.Format("2006")})
	}
	if len(ticks) >= 2 {
		return ticks
	}

	format := "2006"
	if xMin.Year() == xMax.Year() {
		format = "Jan 2006"
	}
	lo := chart.Tick{Value: timeToFloat(xMin), Label: xMin.Format(format)}
	hi := chart.Tick{Value: timeToFloat(xMax), Label: xMax.Format(format)}
	if len(ticks) == 0 {
		return []chart.Tick{lo, hi}
	}
	// Pair the found tick with the farther endpoint.
	t := ticks[0]
	if t.Value-lo.Value >= hi.Value-t.Value {
		return []chart.Tick{lo, t}
	}
	return []chart.Tick{t, hi}
}

// formatPercent renders a current-value label: one decimal place with a
// trailing percent sign.
func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
