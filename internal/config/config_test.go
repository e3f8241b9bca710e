package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
chart:
  title: "Unemployment Rate"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{DefaultSeriesID}, cfg.SeriesIDs)
	assert.Equal(t, "U-3 Unemployment Rate (%)", cfg.SeriesNames[DefaultSeriesID])
	assert.Equal(t, "Unemployment Rate", cfg.Chart.Title)
	// NBER windows fill in when no recessions are configured.
	assert.Len(t, cfg.Recessions, 3)
}

func TestLoad_StyleFileMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "style.yaml", `
chart:
  line_color: "#FF0000"
  title_font_size: 30
  y_axis_label: "Percent"
`)
	path := writeFile(t, dir, "config.yaml", `
series_ids: [LNS14000000]
style_file: style.yaml
chart:
  title: "Override title"
  line_color: "#00FF00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Explicit chart fields beat the style file; untouched ones come through.
	assert.Equal(t, "#00FF00", cfg.Chart.LineColor)
	assert.Equal(t, "Override title", cfg.Chart.Title)
	assert.Equal(t, 30.0, cfg.Chart.TitleFontSize)
	assert.Equal(t, "Percent", cfg.Chart.YAxisLabel)
}

func TestLoad_StyleFileMissing(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
style_file: nope.yaml
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidYearOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
series_ids: [LNS14000000]
start_year: 2024
end_year: 2014
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "start_year")
}

func TestValidate_XPaddingRange(t *testing.T) {
	cfg := Default()

	bad := 0.5
	cfg.Chart.XPadding = &bad
	assert.Error(t, cfg.Validate())

	neg := -0.1
	cfg.Chart.XPadding = &neg
	assert.Error(t, cfg.Validate())

	ok := 0.02
	cfg.Chart.XPadding = &ok
	assert.NoError(t, cfg.Validate())
}

func TestValidate_BadRecessionDates(t *testing.T) {
	cfg := Default()
	cfg.Recessions = []RecessionConfig{{Start: "2020-02-01", End: "not-a-date"}}
	assert.Error(t, cfg.Validate())

	cfg.Recessions = []RecessionConfig{{Start: "2020-04-01", End: "2020-02-01"}}
	assert.ErrorContains(t, cfg.Validate(), "before start")
}

func TestYearRange(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	cfg := &Config{}
	start, end := cfg.YearRange(now)
	assert.Equal(t, 2014, start)
	assert.Equal(t, 2024, end)

	cfg = &Config{StartYear: 2000, EndYear: 2010}
	start, end = cfg.YearRange(now)
	assert.Equal(t, 2000, start)
	assert.Equal(t, 2010, end)

	// End only: start defaults to ten years before it.
	cfg = &Config{EndYear: 2020}
	start, end = cfg.YearRange(now)
	assert.Equal(t, 2010, start)
	assert.Equal(t, 2020, end)
}

func TestRenderOptions_Overrides(t *testing.T) {
	cfg := Default()
	cfg.Chart.Title = "Custom"
	cfg.Chart.LineColor = "#123456"
	cfg.Chart.TitleFontSize = 32
	off := false
	cfg.Chart.ShowCurrentValue = &off

	opts, err := cfg.RenderOptions()
	require.NoError(t, err)

	assert.Equal(t, "Custom", opts.Title)
	assert.Equal(t, "#123456", opts.LineColor)
	assert.Equal(t, 32.0, opts.TitleFont.Size)
	require.NotNil(t, opts.ShowCurrentValue)
	assert.False(t, *opts.ShowCurrentValue)
	// Unset toggles keep their defaults.
	require.NotNil(t, opts.AddRecessionShading)
	assert.True(t, *opts.AddRecessionShading)
	// Configured recessions come through as parsed intervals.
	require.Len(t, opts.Recessions, 3)
	assert.Equal(t, time.Date(2020, time.February, 1, 0, 0, 0, 0, time.UTC), opts.Recessions[2].Start)
}

func TestRenderOptions_ExplicitZeroXPadding(t *testing.T) {
	cfg := Default()
	zero := 0.0
	cfg.Chart.XPadding = &zero

	require.NoError(t, cfg.Validate())
	opts, err := cfg.RenderOptions()
	require.NoError(t, err)

	// An explicit x_padding of 0 means no padding, not "use the default".
	require.NotNil(t, opts.XPadding)
	assert.Equal(t, 0.0, *opts.XPadding)
}

func TestDefaultRecessionDates_Ordered(t *testing.T) {
	dates := DefaultRecessionDates()
	require.Len(t, dates, 3)
	for i, iv := range dates {
		assert.True(t, iv.Start.Before(iv.End), "interval %d inverted", i)
		if i > 0 {
			assert.True(t, dates[i-1].End.Before(iv.Start), "interval %d out of order", i)
		}
	}
}

func TestMergeChart(t *testing.T) {
	shading := false
	base := ChartConfig{Title: "base", LineColor: "#111111", Width: 800}
	override := ChartConfig{Title: "override", AddRecessionShading: &shading}

	out := MergeChart(base, override)
	assert.Equal(t, "override", out.Title)
	assert.Equal(t, "#111111", out.LineColor)
	assert.Equal(t, 800, out.Width)
	require.NotNil(t, out.AddRecessionShading)
	assert.False(t, *out.AddRecessionShading)
}
