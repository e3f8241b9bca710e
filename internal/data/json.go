package data

import (
	"encoding/json"
	"os"

	"bls-chart/internal/model"
)

// LoadBLSJSON reads a saved BLS API response from disk, so charts can be
// re-rendered without hitting the API.
func LoadBLSJSON(path string) (*model.BLSResponse, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var resp model.BLSResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SaveBLSJSON writes a raw API response to disk for later re-rendering.
func SaveBLSJSON(path string, resp *model.BLSResponse) error {
	raw, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
