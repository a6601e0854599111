package services

import (
	"time"

	"github.com/alimgiray/workhours/internal/models"
)

// WorkHoursService computes net working time within an interval: the raw
// elapsed duration minus every span that falls on a weekend or registered
// holiday in the requested timezone's civil calendar.
type WorkHoursService struct {
	holidayService  *HolidayService
	timezoneService *TimezoneService
}

func NewWorkHoursService(holidayService *HolidayService, timezoneService *TimezoneService) *WorkHoursService {
	return &WorkHoursService{
		holidayService:  holidayService,
		timezoneService: timezoneService,
	}
}

// Compute calculates the work duration of [start, end) for a country and
// timezone. Weekends and holidays are matched on civil dates in the given
// timezone; a day that is both a weekend day and a holiday is subtracted
// once. The result is clamped at zero.
func (s *WorkHoursService) Compute(start, end time.Time, country, timezone string) (*models.WorkDuration, error) {
	interval, err := models.NewWorkInterval(start, end)
	if err != nil {
		return nil, err
	}

	loc, err := s.timezoneService.Resolve(timezone)
	if err != nil {
		return nil, err
	}

	if interval.IsInstant() {
		return models.NewWorkDuration(0, interval), nil
	}

	holidays, err := s.holidayService.HolidayDates(country)
	if err != nil {
		return nil, err
	}

	net := interval.Elapsed()

	// Walk every civil day the interval touches and subtract the portion
	// of each non-working day that overlaps [start, end). Day boundaries
	// are real instants in loc, so daylight-saving days of 23 or 25 hours
	// subtract their actual wall-clock length.
	day := s.timezoneService.StartOfDay(interval.Start, loc)
	for day.Before(interval.End) {
		next := s.timezoneService.NextDay(day)
		if s.isNonWorkingDay(day, holidays) {
			net -= overlap(day, next, interval)
		}
		day = next
	}

	if net < 0 {
		net = 0
	}

	return models.NewWorkDuration(net, interval), nil
}

// isNonWorkingDay reports whether the civil day starting at dayStart is a
// Saturday, a Sunday, or a registered holiday.
func (s *WorkHoursService) isNonWorkingDay(dayStart time.Time, holidays map[string]bool) bool {
	if wd := dayStart.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return true
	}
	return holidays[dayStart.Format("2006-01-02")]
}

// overlap returns the span of [dayStart, dayEnd) that lies inside the interval
func overlap(dayStart, dayEnd time.Time, interval models.WorkInterval) time.Duration {
	from := dayStart
	if interval.Start.After(from) {
		from = interval.Start
	}
	to := dayEnd
	if interval.End.Before(to) {
		to = interval.End
	}
	if !to.After(from) {
		return 0
	}
	return to.Sub(from)
}
