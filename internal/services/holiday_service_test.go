package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alimgiray/workhours/internal/apperrors"
	"github.com/alimgiray/workhours/internal/models"
	"github.com/alimgiray/workhours/internal/repositories"
	"github.com/alimgiray/workhours/internal/testutil"
)

func newHolidayService(t *testing.T) *HolidayService {
	t.Helper()
	return NewHolidayService(repositories.NewHolidayRepository(testutil.OpenDB(t)))
}

func TestAddAndListHolidays(t *testing.T) {
	service := newHolidayService(t)

	added, err := service.AddHolidays("US", []models.HolidayInput{
		{Date: "2023-12-25", Description: "Christmas"},
		{Date: "2023-01-01T00:00:00Z", Description: "New Year"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, added)

	t.Run("Round-trip in ascending date order", func(t *testing.T) {
		holidays, err := service.ListHolidays("us")
		assert.NoError(t, err)
		assert.Len(t, holidays, 2)
		assert.Equal(t, "2023-01-01", holidays[0].Date)
		assert.Equal(t, "New Year", holidays[0].Description)
		assert.Equal(t, "2023-12-25", holidays[1].Date)
		assert.Equal(t, "Christmas", holidays[1].Description)
	})

	t.Run("Country is case-normalized", func(t *testing.T) {
		holidays, err := service.ListHolidays("US")
		assert.NoError(t, err)
		assert.Len(t, holidays, 2)
	})

	t.Run("Duplicate date overwrites description", func(t *testing.T) {
		added, err := service.AddHolidays("us", []models.HolidayInput{
			{Date: "2023-12-25", Description: "Christmas Day"},
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, added)

		holidays, err := service.ListHolidays("us")
		assert.NoError(t, err)
		assert.Len(t, holidays, 2)
		assert.Equal(t, "Christmas Day", holidays[1].Description)
	})
}

func TestAddHolidaysValidation(t *testing.T) {
	service := newHolidayService(t)

	t.Run("Invalid country code", func(t *testing.T) {
		_, err := service.AddHolidays("narnia", []models.HolidayInput{{Date: "2023-12-25"}})
		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "country", validationErr.Param)
	})

	t.Run("Empty batch", func(t *testing.T) {
		_, err := service.AddHolidays("us", nil)
		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("One bad date rejects the whole batch", func(t *testing.T) {
		_, err := service.AddHolidays("us", []models.HolidayInput{
			{Date: "2023-06-01", Description: "ok"},
			{Date: "not-a-date", Description: "bad"},
		})
		assert.Error(t, err)

		holidays, listErr := service.ListHolidays("us")
		assert.NoError(t, listErr)
		assert.Empty(t, holidays)
	})
}

func TestHolidayDates(t *testing.T) {
	service := newHolidayService(t)

	_, err := service.AddHolidays("fr", []models.HolidayInput{{Date: "2023-07-14", Description: "Fête nationale"}})
	assert.NoError(t, err)

	t.Run("Registered country", func(t *testing.T) {
		dates, err := service.HolidayDates("fr")
		assert.NoError(t, err)
		assert.True(t, dates["2023-07-14"])
		assert.False(t, dates["2023-07-15"])
	})

	t.Run("Valid but unregistered country has no holidays", func(t *testing.T) {
		dates, err := service.HolidayDates("jp")
		assert.NoError(t, err)
		assert.Empty(t, dates)
	})

	t.Run("Empty country means no holidays", func(t *testing.T) {
		dates, err := service.HolidayDates("")
		assert.NoError(t, err)
		assert.Empty(t, dates)
	})

	t.Run("Invalid country is rejected", func(t *testing.T) {
		_, err := service.HolidayDates("invalid")
		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}
