package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// CatalogSeries represents one known series in the static catalog.
type CatalogSeries struct {
	ID     string `json:"id"`     // e.g., "LNS14000000"
	Name   string `json:"name"`   // e.g., "U-3 Unemployment Rate (%)"
	Survey string `json:"survey"` // e.g., "Current Population Survey"
	Units  string `json:"units"`  // e.g., "percent"
}

// SeriesCatalog represents a collection of known series.
type SeriesCatalog struct {
	UpdatedAt string          `json:"updated_at"` // ISO 8601 timestamp
	Series    []CatalogSeries `json:"series"`
}

// LoadCatalog loads the series catalog from a JSON file
func LoadCatalog(filePath string) (*SeriesCatalog, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog SeriesCatalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return &catalog, nil
}

// SaveCatalog saves the series catalog to a JSON file
func SaveCatalog(catalog *SeriesCatalog, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	return nil
}

// GetDefaultCatalogPath returns the default path for the catalog file
func GetDefaultCatalogPath() string {
	// Try environment variable first
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		return path
	}
	// Default to data/catalog.json in project root
	return "./data/catalog.json"
}
