package model

// BLSResponse matches the JSON shape returned by the BLS public timeseries API.
//
// Example:
// {
//   "status": "REQUEST_SUCCEEDED",
//   "responseTime": 120,
//   "message": [],
//   "Results": { "series": [ ... ] }
// }
type BLSResponse struct {
	Status       string   `json:"status"`
	ResponseTime int      `json:"responseTime"`
	Message      []string `json:"message"`
	Results      *Results `json:"Results"`
}

// StatusSucceeded is the application-level success status in a BLS response.
// The API can return HTTP 200 with a failure status and explanation messages.
const StatusSucceeded = "REQUEST_SUCCEEDED"

// Results is the top-level container for the requested series.
type Results struct {
	Series []Series `json:"series"`
}

// Series is one requested series with its observations, newest first as
// delivered by the API.
type Series struct {
	SeriesID string        `json:"seriesID"`
	Data     []Observation `json:"data"`
}

// Observation is one (series, time-bucket) data point. Year and Value are
// string-encoded in the JSON; the normalizer converts them.
//
// Period encodes the time bucket within the year: "M01".."M12" for months,
// "M13" for the annual average, "Q01".."Q04" for quarters, "A01" for annual.
type Observation struct {
	Year       string     `json:"year"`
	Period     string     `json:"period"`
	PeriodName string     `json:"periodName"`
	Value      string     `json:"value"`
	Footnotes  []Footnote `json:"footnotes,omitempty"`
}

// Footnote carries qualifier text attached to an observation (e.g. "P" for
// preliminary). Not used by the pipeline, kept so payloads round-trip.
type Footnote struct {
	Code string `json:"code,omitempty"`
	Text string `json:"text,omitempty"`
}
