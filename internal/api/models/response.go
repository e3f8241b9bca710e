package models

// ErrorResponse is the envelope for all API errors
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and human-readable message
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SeriesInfo describes one known series
type SeriesInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Survey string `json:"survey,omitempty"`
	Units  string `json:"units,omitempty"`
}

// RecessionInfo describes one shaded window
type RecessionInfo struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
