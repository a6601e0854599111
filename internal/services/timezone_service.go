package services

import (
	"time"

	"github.com/alimgiray/workhours/internal/apperrors"
)

// TimezoneService resolves timezone identifiers and projects instants onto
// civil calendar days. All daylight-saving arithmetic lives here; callers
// never do raw offset math.
type TimezoneService struct{}

func NewTimezoneService() *TimezoneService {
	return &TimezoneService{}
}

// Resolve looks up an IANA timezone identifier ("UTC", "America/New_York").
// An empty or unrecognized identifier is an UnknownTimezoneError.
func (s *TimezoneService) Resolve(timezone string) (*time.Location, error) {
	// time.LoadLocation("") silently means UTC; the API requires an
	// explicit identifier.
	if timezone == "" {
		return nil, &apperrors.UnknownTimezoneError{Timezone: timezone}
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, &apperrors.UnknownTimezoneError{Timezone: timezone}
	}

	return loc, nil
}

// ToUTC normalizes an instant to UTC after validating the timezone identifier
func (s *TimezoneService) ToUTC(t time.Time, timezone string) (time.Time, error) {
	if _, err := s.Resolve(timezone); err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// CivilDateOf returns the calendar date an instant falls on in the given
// location, formatted as YYYY-MM-DD. An instant near midnight UTC may land
// on an adjacent day locally.
func (s *TimezoneService) CivilDateOf(instant time.Time, loc *time.Location) string {
	return instant.In(loc).Format("2006-01-02")
}

// StartOfDay returns the first instant of the civil day that the given
// instant falls on in loc. time.Date re-normalizes, so days where midnight
// does not exist (spring-forward in some zones) still yield a valid instant.
func (s *TimezoneService) StartOfDay(instant time.Time, loc *time.Location) time.Time {
	local := instant.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// NextDay returns the start of the civil day after the given day-start
// instant. The wall-clock span to it may be 23, 24 or 25 hours across
// daylight-saving transitions.
func (s *TimezoneService) NextDay(dayStart time.Time) time.Time {
	return dayStart.AddDate(0, 0, 1)
}
