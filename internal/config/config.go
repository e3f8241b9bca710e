package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"bls-chart/internal/model"
	"bls-chart/internal/render"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Requested series and their display names.
	SeriesIDs   []string          `yaml:"series_ids"`
	SeriesNames map[string]string `yaml:"series_names"`

	// Year range. Zero values mean "last 10 years ending now".
	StartYear int `yaml:"start_year"`
	EndYear   int `yaml:"end_year"`

	// Optional: load chart style from a separate YAML (e.g. examples/styles/*.yaml).
	// If both StyleFile and Chart are provided, Chart overrides StyleFile.
	StyleFile string      `yaml:"style_file"`
	Chart     ChartConfig `yaml:"chart"`

	// Recession windows to shade; defaults to the NBER dates when empty.
	Recessions []RecessionConfig `yaml:"recessions"`
}

// ChartConfig holds the per-render style surface. Toggles are pointers so
// an absent field is distinguishable from an explicit false.
type ChartConfig struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	LogoPath string `yaml:"logo_path"`

	LineColor      string `yaml:"line_color"`
	GridColor      string `yaml:"grid_color"`
	RecessionColor string `yaml:"recession_color"`
	TextColor      string `yaml:"text_color"`

	TitleFontSize     float64 `yaml:"title_font_size"`
	TitleFontColor    string  `yaml:"title_font_color"`
	SubtitleFontSize  float64 `yaml:"subtitle_font_size"`
	SubtitleFontColor string  `yaml:"subtitle_font_color"`

	YAxisLabel string `yaml:"y_axis_label"`
	SourceNote string `yaml:"source_note"`

	AddRecessionShading *bool    `yaml:"add_recession_shading"`
	ShowCurrentValue    *bool    `yaml:"show_current_value"`
	XPadding            *float64 `yaml:"x_padding"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RecessionConfig is one shaded window, dates in YYYY-MM-DD.
type RecessionConfig struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If style_file is set, load it and merge in any explicit overrides from c.Chart.
	if c.StyleFile != "" {
		stylePath := c.StyleFile
		if !filepath.IsAbs(stylePath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), stylePath)
			if _, err := os.Stat(cand); err == nil {
				stylePath = cand
			}
		}
		loaded, err := loadStyleFile(stylePath)
		if err != nil {
			return nil, err
		}
		c.Chart = MergeChart(loaded, c.Chart)
	}
	return &c, nil
}

// Default returns the configuration used when no file is supplied: the U-3
// unemployment rate over the last 10 years with the standard NBER shading.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if len(c.SeriesIDs) == 0 {
		c.SeriesIDs = []string{DefaultSeriesID}
	}
	if c.SeriesNames == nil {
		c.SeriesNames = map[string]string{}
	}
	for id, name := range DefaultSeriesNames() {
		if _, ok := c.SeriesNames[id]; !ok {
			c.SeriesNames[id] = name
		}
	}
	if len(c.Recessions) == 0 {
		for _, iv := range DefaultRecessionDates() {
			c.Recessions = append(c.Recessions, RecessionConfig{
				Start: iv.Start.Format("2006-01-02"),
				End:   iv.End.Format("2006-01-02"),
			})
		}
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.SeriesIDs) == 0 {
		return errors.New("series_ids is required")
	}
	if c.StartYear != 0 && c.EndYear != 0 && c.StartYear > c.EndYear {
		return fmt.Errorf("start_year %d is after end_year %d", c.StartYear, c.EndYear)
	}
	if c.Chart.XPadding != nil && (*c.Chart.XPadding < 0 || *c.Chart.XPadding >= 0.5) {
		return fmt.Errorf("x_padding %v out of range [0, 0.5)", *c.Chart.XPadding)
	}
	// Validate style and recession dates by constructing the real options.
	if _, err := c.RenderOptions(); err != nil {
		return fmt.Errorf("chart config invalid: %w", err)
	}
	return nil
}

// YearRange resolves the requested year range, defaulting to the last 10
// years ending at now.
func (c *Config) YearRange(now time.Time) (startYear, endYear int) {
	endYear = c.EndYear
	if endYear == 0 {
		endYear = now.Year()
	}
	startYear = c.StartYear
	if startYear == 0 {
		startYear = endYear - 10
	}
	return startYear, endYear
}

// RenderOptions builds the renderer's option set from the config, starting
// from render.DefaultOptions and applying explicit overrides.
func (c *Config) RenderOptions() (render.Options, error) {
	o := render.DefaultOptions()
	ch := c.Chart

	o.Title = ch.Title
	o.Subtitle = ch.Subtitle
	o.LogoPath = ch.LogoPath
	if ch.LineColor != "" {
		o.LineColor = ch.LineColor
	}
	if ch.GridColor != "" {
		o.GridColor = ch.GridColor
	}
	if ch.RecessionColor != "" {
		o.RecessionColor = ch.RecessionColor
	}
	if ch.TextColor != "" {
		o.TextColor = ch.TextColor
	}
	if ch.TitleFontSize != 0 {
		o.TitleFont.Size = ch.TitleFontSize
	}
	if ch.TitleFontColor != "" {
		o.TitleFont.Color = ch.TitleFontColor
	}
	if ch.SubtitleFontSize != 0 {
		o.SubtitleFont.Size = ch.SubtitleFontSize
	}
	if ch.SubtitleFontColor != "" {
		o.SubtitleFont.Color = ch.SubtitleFontColor
	}
	if ch.YAxisLabel != "" {
		o.YAxisLabel = ch.YAxisLabel
	}
	if ch.SourceNote != "" {
		o.SourceNote = ch.SourceNote
	}
	if ch.AddRecessionShading != nil {
		o.AddRecessionShading = ch.AddRecessionShading
	}
	if ch.ShowCurrentValue != nil {
		o.ShowCurrentValue = ch.ShowCurrentValue
	}
	if ch.XPadding != nil {
		// Carried as a pointer so an explicit x_padding of 0 is honored.
		o.XPadding = ch.XPadding
	}
	if ch.Width != 0 {
		o.Width = ch.Width
	}
	if ch.Height != 0 {
		o.Height = ch.Height
	}

	o.SeriesNames = c.SeriesNames

	intervals, err := c.RecessionIntervals()
	if err != nil {
		return render.Options{}, err
	}
	o.Recessions = intervals

	return o, nil
}

// RecessionIntervals parses the configured recession windows.
func (c *Config) RecessionIntervals() ([]model.RecessionInterval, error) {
	out := make([]model.RecessionInterval, 0, len(c.Recessions))
	for _, rc := range c.Recessions {
		start, err := time.Parse("2006-01-02", rc.Start)
		if err != nil {
			return nil, fmt.Errorf("invalid recession start %q (expected YYYY-MM-DD): %w", rc.Start, err)
		}
		end, err := time.Parse("2006-01-02", rc.End)
		if err != nil {
			return nil, fmt.Errorf("invalid recession end %q (expected YYYY-MM-DD): %w", rc.End, err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("recession end %s before start %s", rc.End, rc.Start)
		}
		out = append(out, model.RecessionInterval{Start: start, End: end})
	}
	return out, nil
}

type styleFileWrapper struct {
	Chart ChartConfig `yaml:"chart"`
}

func loadStyleFile(path string) (ChartConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ChartConfig{}, err
	}
	var w styleFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ChartConfig{}, err
	}
	return w.Chart, nil
}

// MergeChart overlays non-zero fields from override onto base.
// This is used when loading a style file and then applying overrides from
// the main config.
func MergeChart(base, override ChartConfig) ChartConfig {
	out := base
	if override.Title != "" {
		out.Title = override.Title
	}
	if override.Subtitle != "" {
		out.Subtitle = override.Subtitle
	}
	if override.LogoPath != "" {
		out.LogoPath = override.LogoPath
	}
	if override.LineColor != "" {
		out.LineColor = override.LineColor
	}
	if override.GridColor != "" {
		out.GridColor = override.GridColor
	}
	if override.RecessionColor != "" {
		out.RecessionColor = override.RecessionColor
	}
	if override.TextColor != "" {
		out.TextColor = override.TextColor
	}
	if override.TitleFontSize != 0 {
		out.TitleFontSize = override.TitleFontSize
	}
	if override.TitleFontColor != "" {
		out.TitleFontColor = override.TitleFontColor
	}
	if override.SubtitleFontSize != 0 {
		out.SubtitleFontSize = override.SubtitleFontSize
	}
	if override.SubtitleFontColor != "" {
		out.SubtitleFontColor = override.SubtitleFontColor
	}
	if override.YAxisLabel != "" {
		out.YAxisLabel = override.YAxisLabel
	}
	if override.SourceNote != "" {
		out.SourceNote = override.SourceNote
	}
	if override.AddRecessionShading != nil {
		out.AddRecessionShading = override.AddRecessionShading
	}
	if override.ShowCurrentValue != nil {
		out.ShowCurrentValue = override.ShowCurrentValue
	}
	if override.XPadding != nil {
		out.XPadding = override.XPadding
	}
	if override.Width != 0 {
		out.Width = override.Width
	}
	if override.Height != 0 {
		out.Height = override.Height
	}
	return out
}
