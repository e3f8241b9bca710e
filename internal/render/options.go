package render

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"bls-chart/internal/model"
)

// FontStyle describes text sizing and color for a chart element. An empty
// Color falls back to Options.TextColor.
type FontStyle struct {
	Size  float64
	Color string
}

// Options is the complete, per-render style and annotation configuration.
// There is no process-wide styling state: every knob is scoped to the one
// chart being built.
type Options struct {
	Title    string
	Subtitle string
	LogoPath string

	// Colors as hex strings, with or without a leading '#'.
	LineColor      string
	GridColor      string
	RecessionColor string
	TextColor      string

	TitleFont    FontStyle
	SubtitleFont FontStyle

	YAxisLabel string
	SourceNote string

	// Toggles and padding are pointers so an explicitly configured false or
	// zero survives the fallback pass; nil means "use the default".
	AddRecessionShading *bool
	ShowCurrentValue    *bool

	// XPadding is the fraction of the date-range width added symmetrically
	// on each side of the x-axis, so the current-value label near the right
	// edge does not collide with the axis boundary.
	XPadding *float64

	// Output raster size in pixels.
	Width  int
	Height int

	// SeriesNames maps series id -> display name for labels; a missing
	// entry falls back to the raw id.
	SeriesNames map[string]string

	// Recessions is the ordered list of contraction windows to shade.
	Recessions []model.RecessionInterval
}

// DefaultOptions returns the baseline styling: purple line, light grid,
// light-blue recession bands, recession shading and current-value callout
// enabled, 2% horizontal padding, 1200x700 output.
func DefaultOptions() Options {
	shading := true
	callout := true
	padding := 0.02
	return Options{
		LineColor:           "#8B5CF6",
		GridColor:           "#E5E7EB",
		RecessionColor:      "#DBEAFE",
		TextColor:           "#374151",
		TitleFont:           FontStyle{Size: 24},
		SubtitleFont:        FontStyle{Size: 18, Color: "#6B7280"},
		SourceNote:          "Source: Bureau of Labor Statistics,\nCurrent Population Survey",
		AddRecessionShading: &shading,
		ShowCurrentValue:    &callout,
		XPadding:            &padding,
		Width:               1200,
		Height:              700,
	}
}

// withFallbacks fills unset presentation fields from the defaults so a
// partially populated Options still renders. Only nil toggles and padding
// are defaulted; an explicit false or zero is kept.
func (o Options) withFallbacks() Options {
	def := DefaultOptions()
	if o.LineColor == "" {
		o.LineColor = def.LineColor
	}
	if o.GridColor == "" {
		o.GridColor = def.GridColor
	}
	if o.RecessionColor == "" {
		o.RecessionColor = def.RecessionColor
	}
	if o.TextColor == "" {
		o.TextColor = def.TextColor
	}
	if o.TitleFont.Size == 0 {
		o.TitleFont.Size = def.TitleFont.Size
	}
	if o.SubtitleFont.Size == 0 {
		o.SubtitleFont.Size = def.SubtitleFont.Size
	}
	if o.SubtitleFont.Color == "" {
		o.SubtitleFont.Color = def.SubtitleFont.Color
	}
	if o.AddRecessionShading == nil {
		o.AddRecessionShading = def.AddRecessionShading
	}
	if o.ShowCurrentValue == nil {
		o.ShowCurrentValue = def.ShowCurrentValue
	}
	if o.XPadding == nil {
		o.XPadding = def.XPadding
	}
	if o.Width == 0 {
		o.Width = def.Width
	}
	if o.Height == 0 {
		o.Height = def.Height
	}
	return o
}

// displayName resolves the label for a series column.
func (o Options) displayName(seriesID string) string {
	if name, ok := o.SeriesNames[seriesID]; ok && name != "" {
		return name
	}
	return seriesID
}

// parseColor converts a hex color string to a drawing color. Accepts an
// optional leading '#'.
func parseColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}
