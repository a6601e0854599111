package workers

import (
	"context"

	"github.com/alimgiray/workhours/internal/services"
	"github.com/alimgiray/workhours/pkg/logger"
)

// HolidayRefreshWorker re-imports upstream public holidays for every country
// that already has holidays in the store. It runs on a cron schedule owned by
// the WorkerManager.
type HolidayRefreshWorker struct {
	WorkerID            string
	holidayService      *services.HolidayService
	openHolidaysService *services.OpenHolidaysService
}

func NewHolidayRefreshWorker(workerID string, holidayService *services.HolidayService, openHolidaysService *services.OpenHolidaysService) *HolidayRefreshWorker {
	return &HolidayRefreshWorker{
		WorkerID:            workerID,
		holidayService:      holidayService,
		openHolidaysService: openHolidaysService,
	}
}

// RefreshAll imports the current year's holidays for every known country.
// A failing country is logged and skipped so one bad upstream response does
// not stall the rest.
func (w *HolidayRefreshWorker) RefreshAll(ctx context.Context) {
	countries, err := w.holidayService.Countries()
	if err != nil {
		logger.WithError(err).Errorf("Holiday refresh worker %s could not list countries", w.WorkerID)
		return
	}

	if len(countries) == 0 {
		logger.Debugf("Holiday refresh worker %s found no countries to refresh", w.WorkerID)
		return
	}

	for _, country := range countries {
		imported, err := w.openHolidaysService.ImportHolidays(ctx, country)
		if err != nil {
			logger.WithError(err).Errorf("Holiday refresh worker %s failed for country %s", w.WorkerID, country)
			continue
		}
		logger.Infof("Holiday refresh worker %s imported %d holidays for %s", w.WorkerID, imported, country)
	}
}
