package workers

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/alimgiray/workhours/internal/services"
	"github.com/alimgiray/workhours/pkg/logger"
)

// WorkerManager owns the cron runner and the background workers
type WorkerManager struct {
	cron          *cron.Cron
	refreshWorker *HolidayRefreshWorker
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewWorkerManager creates a worker manager with a holiday refresh worker
func NewWorkerManager(holidayService *services.HolidayService, openHolidaysService *services.OpenHolidaysService) *WorkerManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerManager{
		cron:          cron.New(),
		refreshWorker: NewHolidayRefreshWorker("holiday-refresh-1", holidayService, openHolidaysService),
		ctx:           ctx,
		cancel:        cancel,
	}
}

// Start schedules the refresh worker and starts the cron runner
func (wm *WorkerManager) Start(schedule string) error {
	_, err := wm.cron.AddFunc(schedule, func() {
		wm.refreshWorker.RefreshAll(wm.ctx)
	})
	if err != nil {
		return err
	}

	wm.cron.Start()
	logger.Infof("Started holiday refresh worker on schedule %q", schedule)
	return nil
}

// Stop halts the cron runner and waits for a running job to finish
func (wm *WorkerManager) Stop() {
	wm.cancel()
	<-wm.cron.Stop().Done()
	logger.Info("All workers stopped")
}
