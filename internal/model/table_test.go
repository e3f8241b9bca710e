package model

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthly(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func sampleTable() *Table {
	return &Table{
		Dates: []time.Time{
			monthly(2024, time.January),
			monthly(2024, time.February),
			monthly(2024, time.March),
		},
		Columns: []string{"LNS14000000"},
		Values: map[string][]float64{
			"LNS14000000": {3.7, 3.9, math.NaN()},
		},
	}
}

func TestTable_Value(t *testing.T) {
	tab := sampleTable()

	v, ok := tab.Value("LNS14000000", 0)
	require.True(t, ok)
	assert.Equal(t, 3.7, v)

	// NaN cell reads as missing.
	_, ok = tab.Value("LNS14000000", 2)
	assert.False(t, ok)

	// Out of range and unknown column.
	_, ok = tab.Value("LNS14000000", 3)
	assert.False(t, ok)
	_, ok = tab.Value("NOPE", 0)
	assert.False(t, ok)
}

func TestTable_Latest_SkipsTrailingMissing(t *testing.T) {
	tab := sampleTable()

	v, ok := tab.Latest("LNS14000000")
	require.True(t, ok)
	assert.Equal(t, 3.9, v)
}

func TestTable_Latest_AllMissing(t *testing.T) {
	tab := &Table{
		Dates:   []time.Time{monthly(2024, time.January)},
		Columns: []string{"LNS14000000"},
		Values:  map[string][]float64{"LNS14000000": {math.NaN()}},
	}
	_, ok := tab.Latest("LNS14000000")
	assert.False(t, ok)
}

func TestTable_Points(t *testing.T) {
	tab := sampleTable()

	xs, ys := tab.Points("LNS14000000")
	require.Len(t, xs, 2)
	assert.Equal(t, monthly(2024, time.January), xs[0])
	assert.Equal(t, monthly(2024, time.February), xs[1])
	assert.Equal(t, []float64{3.7, 3.9}, ys)

	xs, ys = tab.Points("NOPE")
	assert.Nil(t, xs)
	assert.Nil(t, ys)
}

func TestTable_MaxValue(t *testing.T) {
	tab := sampleTable()
	assert.Equal(t, 3.9, tab.MaxValue())

	empty := &Table{Values: map[string][]float64{"X": {math.NaN()}}}
	assert.Equal(t, 0.0, empty.MaxValue())
}

func TestRecessionInterval_OverlapsAndClip(t *testing.T) {
	iv := RecessionInterval{Start: monthly(2007, time.December), End: monthly(2009, time.June)}

	from, to := monthly(2008, time.January), monthly(2020, time.January)
	require.True(t, iv.Overlaps(from, to))

	clipped := iv.Clip(from, to)
	assert.Equal(t, from, clipped.Start)
	assert.Equal(t, iv.End, clipped.End)

	// Fully before the window.
	assert.False(t, iv.Overlaps(monthly(2010, time.January), monthly(2020, time.January)))
	// Fully after the window.
	assert.False(t, iv.Overlaps(monthly(2001, time.January), monthly(2007, time.November)))
	// Touching endpoints still overlap.
	assert.True(t, iv.Overlaps(monthly(2009, time.June), monthly(2020, time.January)))
}
