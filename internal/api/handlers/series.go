package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"bls-chart/internal/api/models"
	"bls-chart/internal/config"
	"bls-chart/internal/data"
)

// SeriesHandler serves the known-series catalog and recession windows
type SeriesHandler struct {
	base *config.Config
}

// NewSeriesHandler creates a new series handler
func NewSeriesHandler(base *config.Config) *SeriesHandler {
	if base == nil {
		base = config.Default()
	}
	return &SeriesHandler{base: base}
}

// ListSeries handles GET /api/v1/series
func (h *SeriesHandler) ListSeries(c *gin.Context) {
	catalog, err := loadCatalogOrDefault()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "CATALOG_LOAD_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	seen := make(map[string]bool, len(catalog.Series))
	infos := make([]models.SeriesInfo, 0, len(catalog.Series))
	for _, s := range catalog.Series {
		name := s.Name
		// Configured display names win over catalog names.
		if configured, ok := h.base.SeriesNames[s.ID]; ok && configured != "" {
			name = configured
		}
		infos = append(infos, models.SeriesInfo{ID: s.ID, Name: name, Survey: s.Survey, Units: s.Units})
		seen[s.ID] = true
	}
	// Configured series missing from the catalog still show up.
	for _, id := range h.base.SeriesIDs {
		if seen[id] {
			continue
		}
		infos = append(infos, models.SeriesInfo{ID: id, Name: h.base.SeriesNames[id]})
	}

	c.JSON(http.StatusOK, gin.H{
		"series":     infos,
		"updated_at": catalog.UpdatedAt,
		"count":      len(infos),
	})
}

// ListRecessions handles GET /api/v1/recessions
func (h *SeriesHandler) ListRecessions(c *gin.Context) {
	intervals, err := h.base.RecessionIntervals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_RECESSIONS",
				Message: err.Error(),
			},
		})
		return
	}

	out := make([]models.RecessionInfo, len(intervals))
	for i, iv := range intervals {
		out[i] = models.RecessionInfo{
			Start: iv.Start.Format("2006-01-02"),
			End:   iv.End.Format("2006-01-02"),
		}
	}
	c.JSON(http.StatusOK, gin.H{"recessions": out, "count": len(out)})
}

// loadCatalogOrDefault loads the static catalog file, falling back to the
// built-in series when the file doesn't exist.
func loadCatalogOrDefault() (*data.SeriesCatalog, error) {
	catalog, err := data.LoadCatalog(data.GetDefaultCatalogPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			names := config.DefaultSeriesNames()
			fallback := &data.SeriesCatalog{}
			for id, name := range names {
				fallback.Series = append(fallback.Series, data.CatalogSeries{ID: id, Name: name})
			}
			return fallback, nil
		}
		return nil, err
	}
	return catalog, nil
}
