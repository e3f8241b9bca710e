package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bls-chart/internal/model"
)

func monthly(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func tableSpanning(start, end time.Time) *model.Table {
	return &model.Table{Dates: []time.Time{start, end}}
}

func TestXRange_PadsSymmetrically(t *testing.T) {
	start, end := monthly(2014, time.January), monthly(2024, time.January)
	tab := tableSpanning(start, end)

	xMin, xMax, pad := xRange(tab, 0.02)

	// The window strictly contains the data range.
	assert.True(t, xMin.Before(start))
	assert.True(t, xMax.After(end))
	assert.Equal(t, start.Sub(xMin), pad)
	assert.Equal(t, xMax.Sub(end), pad)

	wantPad := time.Duration(float64(end.Sub(start)) * 0.02)
	assert.Equal(t, wantPad, pad)
}

func TestXRange_ZeroPadding(t *testing.T) {
	start, end := monthly(2014, time.January), monthly(2024, time.January)
	tab := tableSpanning(start, end)

	xMin, xMax, pad := xRange(tab, 0)
	assert.Equal(t, time.Duration(0), pad)
	assert.Equal(t, start, xMin)
	assert.Equal(t, end, xMax)
}

func TestXRange_SingleDate(t *testing.T) {
	d := monthly(2024, time.January)
	tab := &model.Table{Dates: []time.Time{d}}

	xMin, xMax, pad := xRange(tab, 0.02)
	assert.Equal(t, singleDatePad, pad)
	assert.True(t, xMin.Before(d))
	assert.True(t, xMax.After(d))
}

func TestVisibleRecessions(t *testing.T) {
	intervals := []model.RecessionInterval{
		{Start: monthly(2001, time.March), End: monthly(2001, time.November)},
		{Start: monthly(2007, time.December), End: monthly(2009, time.June)},
		{Start: monthly(2020, time.February), End: monthly(2020, time.April)},
	}

	xMin, xMax := monthly(2008, time.June), monthly(2024, time.January)
	visible := visibleRecessions(intervals, xMin, xMax)

	// 2001 is outside, 2007-09 gets clipped at the left edge, 2020 is whole.
	require.Len(t, visible, 2)
	assert.Equal(t, xMin, visible[0].Start)
	assert.Equal(t, monthly(2009, time.June), visible[0].End)
	assert.Equal(t, intervals[2], visible[1])
}

func TestVisibleRecessions_NoneVisible(t *testing.T) {
	intervals := []model.RecessionInterval{
		{Start: monthly(2001, time.March), End: monthly(2001, time.November)},
	}
	visible := visibleRecessions(intervals, monthly(2010, time.January), monthly(2024, time.January))
	assert.Empty(t, visible)
}

func TestYAxisMax(t *testing.T) {
	// Low data maxima stay pinned at the floor.
	assert.Equal(t, 15.0, yAxisMax(3.9))
	assert.Equal(t, 15.0, yAxisMax(0))
	assert.Equal(t, 15.0, yAxisMax(13.6))

	// Above the floor, 10% headroom wins.
	assert.InDelta(t, 16.5, yAxisMax(15.0), 1e-9)
	assert.InDelta(t, 22.0, yAxisMax(20.0), 1e-9)
}

func TestYearTicks_EveryFourthYear(t *testing.T) {
	ticks := yearTicks(monthly(2013, time.June), monthly(2025, time.February))

	labels := make([]string, len(ticks))
	for i, tk := range ticks {
		labels[i] = tk.Label
	}
	assert.Equal(t, []string{"2016", "2020", "2024"}, labels)

	// Tick values are ascending.
	for i := 1; i < len(ticks); i++ {
		assert.Less(t, ticks[i-1].Value, ticks[i].Value)
	}
}

func TestYearTicks_NarrowWindowFallsBackToEndpoints(t *testing.T) {
	xMin, xMax := monthly(2021, time.January), monthly(2022, time.June)
	ticks := yearTicks(xMin, xMax)

	require.Len(t, ticks, 2)
	assert.Equal(t, "2021", ticks[0].Label)
	assert.Equal(t, "2022", ticks[1].Label)
	assert.Equal(t, timeToFloat(xMin), ticks[0].Value)
	assert.Equal(t, timeToFloat(xMax), ticks[1].Value)
}

func TestYearTicks_NarrowWindowKeepsFoundTick(t *testing.T) {
	// Jan 2020 is the only divisible-by-4 tick in range; it survives the
	// fallback, paired with the farther endpoint.
	ticks := yearTicks(monthly(2019, time.June), monthly(2021, time.February))

	require.Len(t, ticks, 2)
	assert.Equal(t, "2020", ticks[0].Label)
	assert.Equal(t, "2021", ticks[1].Label)
	assert.Equal(t, timeToFloat(monthly(2020, time.January)), ticks[0].Value)
}

func TestYearTicks_SubYearWindowUsesMonthLabels(t *testing.T) {
	ticks := yearTicks(monthly(2021, time.March), monthly(2021, time.November))

	require.Len(t, ticks, 2)
	assert.Equal(t, "Mar 2021", ticks[0].Label)
	assert.Equal(t, "Nov 2021", ticks[1].Label)
	assert.NotEqual(t, ticks[0].Label, ticks[1].Label)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "3.7%", formatPercent(3.7))
	assert.Equal(t, "3.7%", formatPercent(3.74))
	assert.Equal(t, "14.8%", formatPercent(14.75))
	assert.Equal(t, "4.0%", formatPercent(4))
}
