package survey

import "errors"

// ErrSourceUnavailable marks a loader failure: the header source is missing or
// unreadable. The error is propagated as-is, never retried.
var ErrSourceUnavailable = errors.New("survey: header source unavailable")

// ErrDegenerateSurvey is the sentinel wrapped by every GeometryError, so
// callers can test with errors.Is without caring about the specific reason.
var ErrDegenerateSurvey = errors.New("survey: degenerate survey geometry")

// GeometryError reports a header table too degenerate to resolve into a survey
// outline: too few traces, fewer than two distinct crosslines, or coincident
// corner points. No partial results accompany it.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return "survey: degenerate survey geometry: " + e.Reason
}

func (e *GeometryError) Unwrap() error {
	return ErrDegenerateSurvey
}

func degenerate(reason string) error {
	return &GeometryError{Reason: reason}
}
