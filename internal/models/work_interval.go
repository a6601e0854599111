package models

import (
	"time"

	"github.com/alimgiray/workhours/internal/apperrors"
)

// WorkInterval is a half-open span of instants [Start, End)
type WorkInterval struct {
	Start time.Time
	End   time.Time
}

// NewWorkInterval validates that start is not after end
func NewWorkInterval(start, end time.Time) (WorkInterval, error) {
	if start.After(end) {
		return WorkInterval{}, &apperrors.InvalidRangeError{Start: start, End: end}
	}
	return WorkInterval{Start: start, End: end}, nil
}

// Elapsed returns the raw wall-clock span of the interval
func (w WorkInterval) Elapsed() time.Duration {
	return w.End.Sub(w.Start)
}

// IsInstant reports whether the interval is zero-length
func (w WorkInterval) IsInstant() bool {
	return w.Start.Equal(w.End)
}

// WorkDuration is the net working time within an interval after subtracting
// weekends and holidays. Never negative.
type WorkDuration struct {
	WorkHours   float64 `json:"work_hours"`
	WorkMinutes float64 `json:"work_minutes"`
	WorkSeconds float64 `json:"work_seconds"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
}

// NewWorkDuration builds the response representation from a computed net
// duration and the interval it was computed over.
func NewWorkDuration(net time.Duration, interval WorkInterval) *WorkDuration {
	hours := net.Seconds() / 3600
	return &WorkDuration{
		WorkHours:   hours,
		WorkMinutes: hours * 60,
		WorkSeconds: hours * 3600,
		StartDate:   interval.Start.Format(time.RFC3339),
		EndDate:     interval.End.Format(time.RFC3339),
	}
}
