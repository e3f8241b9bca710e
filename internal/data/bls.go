package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"bls-chart/internal/model"
)

// BLSClient provides methods to fetch time series from the BLS public API.
type BLSClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewBLSClient creates a new BLS API client.
// If baseURL is empty, defaults to "https://api.bls.gov".
func NewBLSClient(apiKey string, baseURL string) *BLSClient {
	if baseURL == "" {
		baseURL = "https://api.bls.gov"
	}
	return &BLSClient{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// QuerySeriesParams defines parameters for querying time series data.
type QuerySeriesParams struct {
	SeriesIDs []string // e.g., "LNS14000000" (U-3 unemployment rate)
	StartYear int
	EndYear   int
}

// BLSError represents an error from the BLS API
type BLSError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string // For rate limit errors
}

func (e *BLSError) Error() string {
	return e.Message
}

// queryBody is the JSON request body for the v2 timeseries endpoint.
type queryBody struct {
	SeriesID        []string `json:"seriesid"`
	StartYear       string   `json:"startyear"`
	EndYear         string   `json:"endyear"`
	RegistrationKey string   `json:"registrationkey"`
}

// QuerySeries fetches observations for a set of series from the BLS API.
//
// WARNING: If caching is enabled (ENABLE_BLS_CACHE=true), responses may be
// cached. Caching is ONLY for LOCAL DEVELOPMENT: BLS publishes new monthly
// observations on a fixed schedule and a cache will hide them.
func (c *BLSClient) QuerySeries(params QuerySeriesParams) (*model.BLSResponse, error) {
	// Validate API key before making request
	if err := c.validateAPIKey(); err != nil {
		return nil, err
	}

	// Check cache first (only if enabled for development)
	cache := GetCache()
	if cache != nil {
		cacheKey := GenerateCacheKey(params)
		if cached, found := cache.Get(cacheKey); found {
			log.Printf("[BLS] Cache hit: Using cached response (series=%s, start=%d, end=%d)",
				strings.Join(params.SeriesIDs, ","), params.StartYear, params.EndYear)
			return cached, nil
		}
	}

	if len(params.SeriesIDs) == 0 {
		return nil, fmt.Errorf("at least one series id is required")
	}
	if params.StartYear == 0 || params.EndYear == 0 {
		return nil, fmt.Errorf("start_year and end_year are required")
	}
	if params.StartYear > params.EndYear {
		return nil, fmt.Errorf("start_year must not be after end_year")
	}

	body, err := json.Marshal(queryBody{
		SeriesID:        params.SeriesIDs,
		StartYear:       fmt.Sprintf("%d", params.StartYear),
		EndYear:         fmt.Sprintf("%d", params.EndYear),
		RegistrationKey: c.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	u := c.BaseURL + "/publicAPI/v2/timeseries/data/"

	// Log the request (the registration key stays out of the log)
	log.Printf("[BLS] Request: POST %s (series=%s, start=%d, end=%d)",
		"/publicAPI/v2/timeseries/data/",
		strings.Join(params.SeriesIDs, ","),
		params.StartYear,
		params.EndYear)

	req, err := http.NewRequest("POST", u, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := c.Client.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		log.Printf("[BLS] Request failed: %v (duration: %v)", err, duration)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[BLS] Response: %d %s (duration: %v, series=%s)",
		resp.StatusCode,
		resp.Status,
		duration,
		strings.Join(params.SeriesIDs, ","))

	// Check status code and handle specific errors
	switch resp.StatusCode {
	case http.StatusOK:
		// Success, continue
	case http.StatusForbidden, http.StatusUnauthorized:
		log.Printf("[BLS] Error: %d - Invalid registration key (series=%s)",
			resp.StatusCode, strings.Join(params.SeriesIDs, ","))
		return nil, &BLSError{
			StatusCode: resp.StatusCode,
			Code:       "INVALID_API_KEY",
			Message:    "Invalid registration key",
		}
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		log.Printf("[BLS] Error: 429 Rate Limit Exceeded - Retry after: %s (series=%s)",
			retryAfter, strings.Join(params.SeriesIDs, ","))
		return nil, &BLSError{
			StatusCode: resp.StatusCode,
			Code:       "RATE_LIMIT_EXCEEDED",
			Message:    fmt.Sprintf("Rate limit exceeded. Retry after: %s", retryAfter),
			RetryAfter: retryAfter,
		}
	default:
		log.Printf("[BLS] Error: %d %s (series=%s)",
			resp.StatusCode, resp.Status, strings.Join(params.SeriesIDs, ","))
		return nil, &BLSError{
			StatusCode: resp.StatusCode,
			Code:       "API_ERROR",
			Message:    fmt.Sprintf("API returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	var result model.BLSResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("[BLS] Error decoding response: %v (series=%s)", err, strings.Join(params.SeriesIDs, ","))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// The API reports failures inside an HTTP 200: check the app-level status.
	if result.Status != model.StatusSucceeded {
		log.Printf("[BLS] Error: status %q (series=%s, messages=%v)",
			result.Status, strings.Join(params.SeriesIDs, ","), result.Message)
		return nil, &BLSError{
			StatusCode: resp.StatusCode,
			Code:       "REQUEST_NOT_PROCESSED",
			Message:    fmt.Sprintf("request not processed (%s): %s", result.Status, strings.Join(result.Message, "; ")),
		}
	}

	seriesCount := 0
	if result.Results != nil {
		seriesCount = len(result.Results.Series)
	}
	log.Printf("[BLS] Success: Received %d series (series=%s)",
		seriesCount, strings.Join(params.SeriesIDs, ","))

	// Cache the response if caching is enabled (development only)
	if cache := GetCache(); cache != nil {
		cacheKey := GenerateCacheKey(params)
		cache.Set(cacheKey, &result)
		log.Printf("[BLS] Cached response (series=%s)", strings.Join(params.SeriesIDs, ","))
	}

	return &result, nil
}

// validateAPIKey validates that the registration key is present and not
// obviously invalid
func (c *BLSClient) validateAPIKey() error {
	if c.APIKey == "" {
		return &BLSError{
			StatusCode: 0,
			Code:       "MISSING_API_KEY",
			Message:    "registration key is required",
		}
	}
	// We don't validate format here, but reject obviously bad keys
	if len(c.APIKey) < 10 {
		return &BLSError{
			StatusCode: 0,
			Code:       "INVALID_API_KEY_FORMAT",
			Message:    "registration key appears to be invalid (too short)",
		}
	}
	return nil
}

// QuerySeriesByYears is a convenience method that fills in the default year
// range: zero endYear means the current year, zero startYear means ten years
// before the end.
func (c *BLSClient) QuerySeriesByYears(seriesIDs []string, startYear, endYear int) (*model.BLSResponse, error) {
	if endYear == 0 {
		endYear = time.Now().Year()
	}
	if startYear == 0 {
		startYear = endYear - 10
	}
	return c.QuerySeries(QuerySeriesParams{
		SeriesIDs: seriesIDs,
		StartYear: startYear,
		EndYear:   endYear,
	})
}
