package render

import "fmt"

// EmptyDataError means the table has no rows at render time. Fatal: the
// axis-range math is undefined on an empty index, so rendering aborts
// before producing a malformed chart.
type EmptyDataError struct{}

func (e *EmptyDataError) Error() string {
	return "table has no rows to render"
}

// LogoLoadError means the logo image could not be loaded or composited.
// Non-fatal: the chart is still rendered, without the logo.
type LogoLoadError struct {
	Path string
	Err  error
}

func (e *LogoLoadError) Error() string {
	return fmt.Sprintf("could not load logo image %s: %v", e.Path, e.Err)
}

func (e *LogoLoadError) Unwrap() error {
	return e.Err
}
