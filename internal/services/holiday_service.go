package services

import (
	"github.com/alimgiray/workhours/internal/apperrors"
	"github.com/alimgiray/workhours/internal/models"
	"github.com/alimgiray/workhours/internal/repositories"
)

type HolidayService struct {
	holidayRepo *repositories.HolidayRepository
}

func NewHolidayService(holidayRepo *repositories.HolidayRepository) *HolidayService {
	return &HolidayService{
		holidayRepo: holidayRepo,
	}
}

// AddHolidays validates and stores a batch of holidays for a country.
// Dates are normalized to civil dates; a resubmitted date overwrites the
// stored description. Returns the number of holidays written.
func (s *HolidayService) AddHolidays(country string, inputs []models.HolidayInput) (int, error) {
	country = models.NormalizeCountry(country)
	if !models.IsValidCountryCode(country) {
		return 0, apperrors.NewValidationError("country", country+" is not an ISO-3166-1 alpha-2 code")
	}
	if len(inputs) == 0 {
		return 0, apperrors.NewValidationError("holidays", "at least one holiday is required")
	}

	// Validate the whole batch before writing anything, so a bad entry
	// never leaves a partial batch behind.
	holidays := make([]*models.Holiday, 0, len(inputs))
	for _, input := range inputs {
		date, err := models.ParseCivilDate(input.Date)
		if err != nil {
			return 0, err
		}
		holidays = append(holidays, models.NewHoliday(country, date, input.Description))
	}

	for _, holiday := range holidays {
		if err := s.holidayRepo.Upsert(holiday); err != nil {
			return 0, &apperrors.PersistenceError{Op: "add holidays", Err: err}
		}
	}

	return len(holidays), nil
}

// ListHolidays returns all holidays for a country, ascending by date.
// A country with nothing registered yields an empty list.
func (s *HolidayService) ListHolidays(country string) ([]*models.Holiday, error) {
	country = models.NormalizeCountry(country)
	if !models.IsValidCountryCode(country) {
		return nil, apperrors.NewValidationError("country", country+" is not an ISO-3166-1 alpha-2 code")
	}

	holidays, err := s.holidayRepo.GetByCountry(country)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "list holidays", Err: err}
	}

	return holidays, nil
}

// HolidayDates returns the set of civil date strings registered for a
// country, for membership tests during work-hours calculation. An empty or
// unregistered country yields an empty set.
func (s *HolidayService) HolidayDates(country string) (map[string]bool, error) {
	country = models.NormalizeCountry(country)
	if country == "" {
		return map[string]bool{}, nil
	}
	if !models.IsValidCountryCode(country) {
		return nil, apperrors.NewValidationError("country", country+" is not an ISO-3166-1 alpha-2 code")
	}

	holidays, err := s.holidayRepo.GetByCountry(country)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "look up holidays", Err: err}
	}

	dates := make(map[string]bool, len(holidays))
	for _, holiday := range holidays {
		dates[holiday.Date] = true
	}

	return dates, nil
}

// Countries returns every country that has at least one registered holiday
func (s *HolidayService) Countries() ([]string, error) {
	countries, err := s.holidayRepo.GetCountries()
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "list countries", Err: err}
	}
	return countries, nil
}
