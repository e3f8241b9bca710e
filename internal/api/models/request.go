package models

// ChartRequest represents the request body for rendering a chart
type ChartRequest struct {
	APIKey    string       `json:"api_key" binding:"required"` // BLS registration key
	SeriesIDs []string     `json:"series_ids" binding:"required"`
	StartYear int          `json:"start_year,omitempty"` // default: end_year - 10
	EndYear   int          `json:"end_year,omitempty"`   // default: current year
	Chart     ChartOptions `json:"chart,omitempty"`
	// Recessions overrides the configured shading windows when non-empty.
	Recessions []RecessionSpec `json:"recessions,omitempty"`
}

// ChartOptions mirrors the YAML chart style surface for API callers.
// Toggles are pointers so an absent field keeps the server default.
type ChartOptions struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	LogoPath string `json:"logo_path,omitempty"`

	LineColor      string `json:"line_color,omitempty"`
	GridColor      string `json:"grid_color,omitempty"`
	RecessionColor string `json:"recession_color,omitempty"`
	TextColor      string `json:"text_color,omitempty"`

	TitleFontSize     float64 `json:"title_font_size,omitempty"`
	TitleFontColor    string  `json:"title_font_color,omitempty"`
	SubtitleFontSize  float64 `json:"subtitle_font_size,omitempty"`
	SubtitleFontColor string  `json:"subtitle_font_color,omitempty"`

	YAxisLabel string `json:"y_axis_label,omitempty"`
	SourceNote string `json:"source_note,omitempty"`

	AddRecessionShading *bool    `json:"add_recession_shading,omitempty"`
	ShowCurrentValue    *bool    `json:"show_current_value,omitempty"`
	XPadding            *float64 `json:"x_padding,omitempty"`

	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// RecessionSpec is one shading window, dates in YYYY-MM-DD.
type RecessionSpec struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

// ExportRequest represents the request body for exporting a normalized
// table as CSV. The chart style surface does not apply.
type ExportRequest struct {
	APIKey    string   `json:"api_key" binding:"required"` // BLS registration key
	SeriesIDs []string `json:"series_ids" binding:"required"`
	StartYear int      `json:"start_year,omitempty"`
	EndYear   int      `json:"end_year,omitempty"`
}
