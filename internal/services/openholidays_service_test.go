package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alimgiray/workhours/internal/apperrors"
	"github.com/alimgiray/workhours/internal/repositories"
	"github.com/alimgiray/workhours/internal/testutil"
)

const upstreamFixture = `[
	{"startDate": "2023-10-03", "name": [
		{"language": "DE", "text": "Tag der Deutschen Einheit"},
		{"language": "EN", "text": "German Unity Day"}
	]},
	{"startDate": "2023-12-25", "name": [
		{"language": "DE", "text": "Weihnachten"}
	]}
]`

func newUpstream(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		assert.Equal(t, "/PublicHolidays", r.URL.Path)
		assert.Equal(t, "DE", r.URL.Query().Get("countryIsoCode"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstreamFixture))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchHolidays(t *testing.T) {
	var calls int32
	upstream := newUpstream(t, &calls)

	holidayService := NewHolidayService(repositories.NewHolidayRepository(testutil.OpenDB(t)))
	service := NewOpenHolidaysService(upstream.URL, holidayService)

	holidays, err := service.FetchHolidays(context.Background(), "DE", 2023)
	assert.NoError(t, err)
	assert.Len(t, holidays, 2)
	assert.Equal(t, "2023-10-03", holidays[0].Date)
	assert.Equal(t, "German Unity Day", holidays[0].Description)
	// No EN localization: fall back to the first name
	assert.Equal(t, "Weihnachten", holidays[1].Description)

	t.Run("Second fetch is served from cache", func(t *testing.T) {
		again, err := service.FetchHolidays(context.Background(), "de", 2023)
		assert.NoError(t, err)
		assert.Len(t, again, 2)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}

func TestImportHolidays(t *testing.T) {
	var calls int32
	upstream := newUpstream(t, &calls)

	holidayService := NewHolidayService(repositories.NewHolidayRepository(testutil.OpenDB(t)))
	service := NewOpenHolidaysService(upstream.URL, holidayService)

	imported, err := service.ImportHolidays(context.Background(), "de")
	assert.NoError(t, err)
	assert.Equal(t, 2, imported)

	holidays, err := holidayService.ListHolidays("de")
	assert.NoError(t, err)
	assert.Len(t, holidays, 2)
	assert.Equal(t, "2023-10-03", holidays[0].Date)
	assert.Equal(t, "2023-12-25", holidays[1].Date)
}

func TestFetchHolidaysInvalidCountry(t *testing.T) {
	var calls int32
	upstream := newUpstream(t, &calls)

	holidayService := NewHolidayService(repositories.NewHolidayRepository(testutil.OpenDB(t)))
	service := NewOpenHolidaysService(upstream.URL, holidayService)

	// A bad country code fails before anything goes upstream
	_, err := service.FetchHolidays(context.Background(), "narnia", 2023)
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "country", validationErr.Param)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))

	_, err = service.ImportHolidays(context.Background(), "narnia")
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestFetchHolidaysUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	holidayService := NewHolidayService(repositories.NewHolidayRepository(testutil.OpenDB(t)))
	service := NewOpenHolidaysService(server.URL, holidayService)

	_, err := service.FetchHolidays(context.Background(), "de", 2023)
	assert.Error(t, err)
}
