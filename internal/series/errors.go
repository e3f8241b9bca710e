package series

import (
	"fmt"
	"time"
)

// MalformedPayloadError means the input JSON does not contain the
// Results.series path. Fatal: normalization aborts with no partial table.
type MalformedPayloadError struct {
	Reason string
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed payload: %s", e.Reason)
}

// ValueConversionError means an observation carried a non-numeric year or
// value. Fatal: normalization aborts with no partial table.
type ValueConversionError struct {
	SeriesID string
	Field    string // "year" or "value"
	Raw      string
	Err      error
}

func (e *ValueConversionError) Error() string {
	return fmt.Sprintf("series %s: cannot convert %s %q: %v", e.SeriesID, e.Field, e.Raw, e.Err)
}

func (e *ValueConversionError) Unwrap() error {
	return e.Err
}

// DuplicateObservationError means the payload carried two observations for
// the same (date, series) key. Fatal: silent overwrite could mask upstream
// data-quality issues, so the normalizer refuses instead.
type DuplicateObservationError struct {
	SeriesID string
	Date     time.Time
}

func (e *DuplicateObservationError) Error() string {
	return fmt.Sprintf("series %s: duplicate observation for %s", e.SeriesID, e.Date.Format("2006-01"))
}
