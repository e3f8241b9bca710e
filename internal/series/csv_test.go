package series

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bls-chart/internal/model"
)

func TestWriteTable(t *testing.T) {
	table := &model.Table{
		Dates: []time.Time{
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		Columns: []string{"LNS14000000", "LNS11300000"},
		Values: map[string][]float64{
			"LNS14000000": {3.7, 3.9},
			"LNS11300000": {62.5, math.NaN()},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, table))

	want := "date,LNS14000000,LNS11300000\n" +
		"2024-01-01,3.7,62.5\n" +
		"2024-02-01,3.9,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTable_Empty(t *testing.T) {
	table := &model.Table{Columns: []string{"LNS14000000"}, Values: map[string][]float64{"LNS14000000": {}}}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, table))
	assert.Equal(t, "date,LNS14000000\n", buf.String())
}
