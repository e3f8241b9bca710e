package render

import (
	"bytes"
	"image/png"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bls-chart/internal/model"
)

func renderableTable() *model.Table {
	dates := make([]time.Time, 0, 24)
	values := make([]float64, 0, 24)
	d := monthly(2022, time.January)
	for i := 0; i < 24; i++ {
		dates = append(dates, d)
		values = append(values, 3.5+0.5*math.Sin(float64(i)/4))
		d = d.AddDate(0, 1, 0)
	}
	return &model.Table{
		Dates:   dates,
		Columns: []string{"LNS14000000"},
		Values:  map[string][]float64{"LNS14000000": values},
	}
}

func TestRender_ProducesPNG(t *testing.T) {
	opts := DefaultOptions()
	opts.Title = "Unemployment Rate"
	opts.Subtitle = "Seasonally adjusted"
	opts.SeriesNames = map[string]string{"LNS14000000": "U-3 Unemployment Rate (%)"}
	opts.Recessions = []model.RecessionInterval{
		{Start: monthly(2022, time.June), End: monthly(2022, time.September)},
	}

	rendered, err := New(opts).Render(renderableTable())
	require.NoError(t, err)
	require.Nil(t, rendered.LogoErr)

	img, err := png.Decode(bytes.NewReader(rendered.PNG))
	require.NoError(t, err)
	assert.Equal(t, opts.Width, img.Bounds().Dx())
	assert.Equal(t, opts.Height, img.Bounds().Dy())
}

func TestRender_EmptyTable(t *testing.T) {
	r := New(DefaultOptions())

	_, err := r.Render(&model.Table{})
	var empty *EmptyDataError
	assert.ErrorAs(t, err, &empty)

	_, err = r.Render(nil)
	assert.ErrorAs(t, err, &empty)
}

func TestRender_SinglePointTable(t *testing.T) {
	table := &model.Table{
		Dates:   []time.Time{monthly(2024, time.January)},
		Columns: []string{"LNS14000000"},
		Values:  map[string][]float64{"LNS14000000": {3.7}},
	}

	rendered, err := New(DefaultOptions()).Render(table)
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(rendered.PNG))
	assert.NoError(t, err)
}

func TestRender_MissingLogoStillRenders(t *testing.T) {
	opts := DefaultOptions()
	opts.LogoPath = filepath.Join(t.TempDir(), "missing-logo.png")

	rendered, err := New(opts).Render(renderableTable())
	require.NoError(t, err)

	// The chart survives; the logo failure is surfaced separately.
	var logoErr *LogoLoadError
	require.ErrorAs(t, rendered.LogoErr, &logoErr)

	_, err = png.Decode(bytes.NewReader(rendered.PNG))
	assert.NoError(t, err)
}

func TestRender_ShadingAndCalloutOff(t *testing.T) {
	opts := DefaultOptions()
	off := false
	opts.AddRecessionShading = &off
	opts.ShowCurrentValue = &off
	opts.Recessions = []model.RecessionInterval{
		{Start: monthly(2022, time.June), End: monthly(2022, time.September)},
	}

	rendered, err := New(opts).Render(renderableTable())
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(rendered.PNG))
	assert.NoError(t, err)
}

func TestOptions_WithFallbacks(t *testing.T) {
	o := Options{Title: "x"}.withFallbacks()
	def := DefaultOptions()

	assert.Equal(t, def.LineColor, o.LineColor)
	assert.Equal(t, def.TitleFont.Size, o.TitleFont.Size)
	assert.Equal(t, def.Width, o.Width)
	// Nil toggles and padding pick up the defaults.
	require.NotNil(t, o.AddRecessionShading)
	assert.True(t, *o.AddRecessionShading)
	require.NotNil(t, o.ShowCurrentValue)
	assert.True(t, *o.ShowCurrentValue)
	require.NotNil(t, o.XPadding)
	assert.Equal(t, *def.XPadding, *o.XPadding)
}

func TestOptions_ExplicitZeroAndFalseKept(t *testing.T) {
	zero := 0.0
	off := false
	o := Options{
		XPadding:            &zero,
		AddRecessionShading: &off,
		ShowCurrentValue:    &off,
	}.withFallbacks()

	assert.Equal(t, 0.0, *o.XPadding)
	assert.False(t, *o.AddRecessionShading)
	assert.False(t, *o.ShowCurrentValue)

	// The same holds through the renderer constructor.
	r := New(Options{XPadding: &zero})
	assert.Equal(t, 0.0, *r.opts.XPadding)
}

func TestOptions_DisplayName(t *testing.T) {
	o := Options{SeriesNames: map[string]string{"LNS14000000": "U-3 Unemployment Rate (%)"}}
	assert.Equal(t, "U-3 Unemployment Rate (%)", o.displayName("LNS14000000"))
	assert.Equal(t, "LNS11300000", o.displayName("LNS11300000"))
}
