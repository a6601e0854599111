package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alimgiray/workhours/internal/apperrors"
)

func TestNewWorkInterval(t *testing.T) {
	start := time.Date(2023, 10, 2, 9, 0, 0, 0, time.UTC)

	t.Run("Valid interval", func(t *testing.T) {
		interval, err := NewWorkInterval(start, start.Add(8*time.Hour))
		assert.NoError(t, err)
		assert.Equal(t, 8*time.Hour, interval.Elapsed())
		assert.False(t, interval.IsInstant())
	})

	t.Run("Instantaneous interval", func(t *testing.T) {
		interval, err := NewWorkInterval(start, start)
		assert.NoError(t, err)
		assert.True(t, interval.IsInstant())
		assert.Equal(t, time.Duration(0), interval.Elapsed())
	})

	t.Run("Start after end fails", func(t *testing.T) {
		_, err := NewWorkInterval(start, start.Add(-time.Hour))
		assert.Error(t, err)

		var rangeErr *apperrors.InvalidRangeError
		assert.ErrorAs(t, err, &rangeErr)
	})
}

func TestNewWorkDuration(t *testing.T) {
	start := time.Date(2023, 10, 2, 9, 0, 0, 0, time.UTC)
	interval, err := NewWorkInterval(start, start.Add(90*time.Minute))
	assert.NoError(t, err)

	duration := NewWorkDuration(90*time.Minute, interval)

	assert.Equal(t, 1.5, duration.WorkHours)
	assert.Equal(t, 90.0, duration.WorkMinutes)
	assert.Equal(t, 5400.0, duration.WorkSeconds)
	assert.Equal(t, "2023-10-02T09:00:00Z", duration.StartDate)
	assert.Equal(t, "2023-10-02T10:30:00Z", duration.EndDate)
}
