package model

import "time"

// RecessionInterval is one historically defined contraction window, used by
// the renderer for shading. Intervals are configuration data, not logic:
// they are supplied to the renderer, never hard-coded in it.
type RecessionInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether the interval intersects [from, to].
func (r RecessionInterval) Overlaps(from, to time.Time) bool {
	return !r.End.Before(from) && !r.Start.After(to)
}

// Clip returns the interval restricted to [from, to]. Call Overlaps first;
// clipping a disjoint interval yields an inverted window.
func (r RecessionInterval) Clip(from, to time.Time) RecessionInterval {
	out := r
	if out.Start.Before(from) {
		out.Start = from
	}
	if out.End.After(to) {
		out.End = to
	}
	return out
}
