package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alimgiray/workhours/internal/apperrors"
	"github.com/alimgiray/workhours/internal/models"
	"github.com/alimgiray/workhours/pkg/logger"
)

const holidayCacheTTL = 24 * time.Hour

// OpenHolidaysService fetches public holidays from the OpenHolidays API and
// imports them into the holiday store. Responses are cached in memory per
// (country, year) for 24 hours.
type OpenHolidaysService struct {
	baseURL        string
	client         *http.Client
	holidayService *HolidayService

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	holidays  []models.HolidayInput
	expiresAt time.Time
}

// openHolidayResponse mirrors the upstream PublicHolidays payload
type openHolidayResponse struct {
	StartDate string `json:"startDate"`
	Name      []struct {
		Language string `json:"language"`
		Text     string `json:"text"`
	} `json:"name"`
}

func NewOpenHolidaysService(baseURL string, holidayService *HolidayService) *OpenHolidaysService {
	return &OpenHolidaysService{
		baseURL:        baseURL,
		client:         &http.Client{Timeout: 30 * time.Second},
		holidayService: holidayService,
		cache:          make(map[string]cacheEntry),
	}
}

// FetchHolidays returns the public holidays of a country for one year,
// served from cache when a fresh entry exists. The country code is
// validated before anything goes upstream.
func (s *OpenHolidaysService) FetchHolidays(ctx context.Context, country string, year int) ([]models.HolidayInput, error) {
	country = models.NormalizeCountry(country)
	if !models.IsValidCountryCode(country) {
		return nil, apperrors.NewValidationError("country", country+" is not an ISO-3166-1 alpha-2 code")
	}
	cacheKey := fmt.Sprintf("%s%d", country, year)

	s.mu.RLock()
	entry, ok := s.cache[cacheKey]
	s.mu.RUnlock()
	if ok && entry.expiresAt.After(time.Now()) {
		logger.WithField("key", cacheKey).Debug("Holiday cache hit")
		return entry.holidays, nil
	}

	holidays, err := s.fetch(ctx, country, year)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[cacheKey] = cacheEntry{holidays: holidays, expiresAt: time.Now().Add(holidayCacheTTL)}
	s.mu.Unlock()
	logger.WithFields(logrus.Fields{"key": cacheKey, "count": len(holidays)}).Info("Cached upstream holidays")

	return holidays, nil
}

// ImportHolidays fetches the current year's holidays for a country and
// upserts them into the store. Returns the number imported.
func (s *OpenHolidaysService) ImportHolidays(ctx context.Context, country string) (int, error) {
	holidays, err := s.FetchHolidays(ctx, country, time.Now().Year())
	if err != nil {
		return 0, err
	}
	if len(holidays) == 0 {
		return 0, nil
	}

	return s.holidayService.AddHolidays(country, holidays)
}

func (s *OpenHolidaysService) fetch(ctx context.Context, country string, year int) ([]models.HolidayInput, error) {
	query := url.Values{}
	query.Set("countryIsoCode", strings.ToUpper(models.NormalizeCountry(country)))
	query.Set("languageIsoCode", "EN")
	query.Set("validFrom", fmt.Sprintf("%d-01-01", year))
	query.Set("validTo", fmt.Sprintf("%d-12-31", year))
	requestURL := fmt.Sprintf("%s/PublicHolidays?%s", s.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holidays: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API returned status %d", resp.StatusCode)
	}

	var upstream []openHolidayResponse
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return nil, fmt.Errorf("failed to parse holiday API response: %w", err)
	}

	holidays := make([]models.HolidayInput, 0, len(upstream))
	for _, h := range upstream {
		holidays = append(holidays, models.HolidayInput{
			Date:        h.StartDate,
			Description: englishName(h),
		})
	}

	return holidays, nil
}

// englishName picks the EN localization, falling back to the first name given
func englishName(h openHolidayResponse) string {
	for _, name := range h.Name {
		if name.Language == "EN" {
			return name.Text
		}
	}
	if len(h.Name) > 0 {
		return h.Name[0].Text
	}
	return ""
}
