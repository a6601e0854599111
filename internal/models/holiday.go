package models

import (
	"time"

	"github.com/alimgiray/workhours/internal/apperrors"
	"github.com/google/uuid"
)

// CivilDateFormat is the canonical storage format for holiday dates. Holidays
// are civil dates: a calendar day in whatever timezone a request later asks
// about, never an instant.
const CivilDateFormat = "2006-01-02"

// Holiday represents a single non-working date registered for a country
type Holiday struct {
	ID          string    `json:"id"`
	Country     string    `json:"country"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HolidayInput is the submission payload for a single holiday
type HolidayInput struct {
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
}

func NewHoliday(country, date, description string) *Holiday {
	now := time.Now().UTC()
	return &Holiday{
		ID:          uuid.New().String(),
		Country:     country,
		Date:        date,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ParseCivilDate normalizes a submitted date to the canonical civil date
// string. Both plain dates ("2023-12-25") and RFC3339 timestamps are
// accepted; for timestamps only the date part is kept.
func ParseCivilDate(value string) (string, error) {
	if d, err := time.Parse(CivilDateFormat, value); err == nil {
		return d.Format(CivilDateFormat), nil
	}
	if d, err := time.Parse(time.RFC3339, value); err == nil {
		return d.Format(CivilDateFormat), nil
	}
	return "", apperrors.NewValidationError("date", value+" is not a YYYY-MM-DD date or RFC3339 timestamp")
}
