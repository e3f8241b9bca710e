package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bls-chart/internal/api/models"
	"bls-chart/internal/config"
	"bls-chart/internal/data"
	"bls-chart/internal/model"
	"bls-chart/internal/render"
	"bls-chart/internal/series"
)

// ChartHandler handles chart rendering and table export requests
type ChartHandler struct {
	base *config.Config
}

// NewChartHandler creates a chart handler on top of a base configuration.
// Request fields override the base; a nil base means built-in defaults.
func NewChartHandler(base *config.Config) *ChartHandler {
	if base == nil {
		base = config.Default()
	}
	return &ChartHandler{base: base}
}

// RenderChart handles POST /api/v1/chart
func (h *ChartHandler) RenderChart(c *gin.Context) {
	var req models.ChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}
	if err := validateAPIKey(req.APIKey); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_API_KEY", err.Error(), nil)
		return
	}

	table, ok := h.fetchAndNormalize(c, req.APIKey, req.SeriesIDs, req.StartYear, req.EndYear)
	if !ok {
		return
	}

	cfg, err := h.requestConfig(req.SeriesIDs, req.Chart, req.Recessions)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_OPTIONS", err.Error(), nil)
		return
	}
	opts, err := cfg.RenderOptions()
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_OPTIONS", err.Error(), nil)
		return
	}

	rendered, err := render.New(opts).Render(table)
	if err != nil {
		var empty *render.EmptyDataError
		if errors.As(err, &empty) {
			writeError(c, http.StatusUnprocessableEntity, "EMPTY_DATA",
				"no monthly observations in the requested range", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "RENDER_ERROR", err.Error(), nil)
		return
	}
	if rendered.LogoErr != nil {
		// Non-fatal: the chart is complete, just without the logo.
		c.Header("X-Logo-Load-Error", rendered.LogoErr.Error())
	}

	c.Data(http.StatusOK, "image/png", rendered.PNG)
}

// ExportCSV handles POST /api/v1/export
func (h *ChartHandler) ExportCSV(c *gin.Context) {
	var req models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}
	if err := validateAPIKey(req.APIKey); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_API_KEY", err.Error(), nil)
		return
	}

	table, ok := h.fetchAndNormalize(c, req.APIKey, req.SeriesIDs, req.StartYear, req.EndYear)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="series.csv"`)
	c.Status(http.StatusOK)
	if err := series.WriteTable(c.Writer, table); err != nil {
		// Headers are already out; record and abort is all that's left.
		_ = c.Error(err)
		c.Abort()
	}
}

// fetchAndNormalize runs the fetch + normalize half of the pipeline and
// writes the error response itself when something fails.
func (h *ChartHandler) fetchAndNormalize(c *gin.Context, apiKey string, seriesIDs []string, startYear, endYear int) (*model.Table, bool) {
	client := data.NewBLSClient(apiKey, "")
	payload, err := client.QuerySeriesByYears(seriesIDs, startYear, endYear)
	if err != nil {
		writeFetchError(c, err)
		return nil, false
	}

	table, err := series.Normalize(payload)
	if err != nil {
		writeNormalizeError(c, err)
		return nil, false
	}
	return table, true
}

// requestConfig overlays request fields onto the server's base config.
func (h *ChartHandler) requestConfig(seriesIDs []string, opts models.ChartOptions, recs []models.RecessionSpec) (*config.Config, error) {
	names := make(map[string]string, len(h.base.SeriesNames))
	for id, name := range h.base.SeriesNames {
		names[id] = name
	}
	cfg := &config.Config{
		SeriesIDs:   seriesIDs,
		SeriesNames: names,
		Chart:       config.MergeChart(h.base.Chart, chartConfigFromRequest(opts)),
		Recessions:  h.base.Recessions,
	}
	if len(recs) > 0 {
		cfg.Recessions = make([]config.RecessionConfig, len(recs))
		for i, r := range recs {
			cfg.Recessions[i] = config.RecessionConfig{Start: r.Start, End: r.End}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func chartConfigFromRequest(o models.ChartOptions) config.ChartConfig {
	return config.ChartConfig{
		Title:               o.Title,
		Subtitle:            o.Subtitle,
		LogoPath:            o.LogoPath,
		LineColor:           o.LineColor,
		GridColor:           o.GridColor,
		RecessionColor:      o.RecessionColor,
		TextColor:           o.TextColor,
		TitleFontSize:       o.TitleFontSize,
		TitleFontColor:      o.TitleFontColor,
		SubtitleFontSize:    o.SubtitleFontSize,
		SubtitleFontColor:   o.SubtitleFontColor,
		YAxisLabel:          o.YAxisLabel,
		SourceNote:          o.SourceNote,
		AddRecessionShading: o.AddRecessionShading,
		ShowCurrentValue:    o.ShowCurrentValue,
		XPadding:            o.XPadding,
		Width:               o.Width,
		Height:              o.Height,
	}
}

// writeFetchError maps BLS client failures onto the error envelope.
func writeFetchError(c *gin.Context, err error) {
	var blsErr *data.BLSError
	if errors.As(err, &blsErr) {
		status := http.StatusBadGateway
		switch blsErr.Code {
		case "INVALID_API_KEY", "MISSING_API_KEY", "INVALID_API_KEY_FORMAT":
			status = http.StatusUnauthorized
		case "RATE_LIMIT_EXCEEDED":
			status = http.StatusTooManyRequests
		}
		writeError(c, status, blsErr.Code, blsErr.Message, map[string]interface{}{
			"status_code": blsErr.StatusCode,
			"retry_after": blsErr.RetryAfter,
		})
		return
	}
	writeError(c, http.StatusBadGateway, "FETCH_ERROR", err.Error(), nil)
}

// writeNormalizeError maps normalization failures onto the error envelope.
// These all indicate upstream data the pipeline refuses to chart partially.
func writeNormalizeError(c *gin.Context, err error) {
	var (
		malformed *series.MalformedPayloadError
		conv      *series.ValueConversionError
		dup       *series.DuplicateObservationError
	)
	switch {
	case errors.As(err, &malformed):
		writeError(c, http.StatusBadGateway, "MALFORMED_PAYLOAD", err.Error(), nil)
	case errors.As(err, &conv):
		writeError(c, http.StatusBadGateway, "VALUE_CONVERSION_ERROR", err.Error(), nil)
	case errors.As(err, &dup):
		writeError(c, http.StatusBadGateway, "DUPLICATE_OBSERVATION", err.Error(), nil)
	default:
		writeError(c, http.StatusBadGateway, "NORMALIZE_ERROR", err.Error(), nil)
	}
}

func writeError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// validateAPIKey performs basic validation on the registration key
func validateAPIKey(apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("registration key is required")
	}
	if len(strings.TrimSpace(apiKey)) == 0 {
		return fmt.Errorf("registration key cannot be empty or whitespace")
	}
	if len(apiKey) < 10 {
		return fmt.Errorf("registration key appears to be invalid (too short)")
	}
	return nil
}
