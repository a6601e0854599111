package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/alimgiray/workhours/internal/handlers"
	"github.com/alimgiray/workhours/internal/middleware"
	"github.com/alimgiray/workhours/internal/repositories"
	"github.com/alimgiray/workhours/internal/services"
	"github.com/alimgiray/workhours/internal/workers"
	"github.com/alimgiray/workhours/pkg/config"
	"github.com/alimgiray/workhours/pkg/database"
	"github.com/alimgiray/workhours/pkg/logger"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(config.AppConfig.Logging.Level)
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize database
	if err := database.Init(config.AppConfig.Database.Path); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	holidayRepo := repositories.NewHolidayRepository(database.DB)
	holidayService := services.NewHolidayService(holidayRepo)
	timezoneService := services.NewTimezoneService()
	workHoursService := services.NewWorkHoursService(holidayService, timezoneService)
	openHolidaysService := services.NewOpenHolidaysService(config.AppConfig.OpenHolidays.BaseURL, holidayService)
	exportService := services.NewExportService()

	// Initialize router
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	setupRoutes(router, workHoursService, holidayService, openHolidaysService, exportService)

	// Start the holiday refresh worker when enabled
	workerManager := workers.NewWorkerManager(holidayService, openHolidaysService)
	if config.AppConfig.Worker.RefreshEnabled {
		if err := workerManager.Start(config.AppConfig.Worker.RefreshCron); err != nil {
			logger.Fatalf("Failed to start workers: %v", err)
		}
		defer workerManager.Stop()
	}

	// Setup server
	server := &http.Server{
		Addr:    ":" + config.AppConfig.Server.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	logger.Info("Server stopped")
}

func setupRoutes(router *gin.Engine, workHoursService *services.WorkHoursService, holidayService *services.HolidayService, openHolidaysService *services.OpenHolidaysService, exportService *services.ExportService) {
	// Initialize handlers
	workHoursHandler := handlers.NewWorkHoursHandler(workHoursService)
	holidayHandler := handlers.NewHolidayHandler(holidayService, openHolidaysService, exportService)
	healthHandler := handlers.NewHealthHandler()
	notFoundHandler := handlers.NewNotFoundHandler()

	// Work hours calculation
	router.GET("/", workHoursHandler.GetWorkHours)
	router.POST("/", workHoursHandler.PostWorkHours)

	// Holiday management
	holidays := router.Group("/holidays")
	{
		holidays.POST("/:country", holidayHandler.AddHolidays)
		holidays.GET("/:country", holidayHandler.ListHolidays)
		holidays.POST("/:country/import", holidayHandler.ImportHolidays)
		holidays.GET("/:country/export", holidayHandler.ExportExcel)
		holidays.GET("/:country/calendar", holidayHandler.ExportCalendar)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	router.NoRoute(notFoundHandler.NotFound)
}
