package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimgiray/workhours/internal/models"
	"github.com/alimgiray/workhours/internal/services"
)

type HolidayHandler struct {
	holidayService      *services.HolidayService
	openHolidaysService *services.OpenHolidaysService
	exportService       *services.ExportService
}

func NewHolidayHandler(holidayService *services.HolidayService, openHolidaysService *services.OpenHolidaysService, exportService *services.ExportService) *HolidayHandler {
	return &HolidayHandler{
		holidayService:      holidayService,
		openHolidaysService: openHolidaysService,
		exportService:       exportService,
	}
}

// AddHolidays registers a batch of holidays for a country.
// POST /holidays/:country with body [{"date": "2023-12-25", "description": "Christmas"}]
func (h *HolidayHandler) AddHolidays(c *gin.Context) {
	country := c.Param("country")

	var inputs []models.HolidayInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	added, err := h.holidayService.AddHolidays(country, inputs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"added": added})
}

// ListHolidays returns all holidays for a country, ascending by date.
// GET /holidays/:country
func (h *HolidayHandler) ListHolidays(c *gin.Context) {
	holidays, err := h.holidayService.ListHolidays(c.Param("country"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, holidays)
}

// ImportHolidays pulls the current year's public holidays for a country from
// the OpenHolidays API into the store.
// POST /holidays/:country/import
func (h *HolidayHandler) ImportHolidays(c *gin.Context) {
	imported, err := h.openHolidaysService.ImportHolidays(c.Request.Context(), c.Param("country"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": imported})
}

// ExportExcel downloads a country's holidays as an xlsx workbook.
// GET /holidays/:country/export
func (h *HolidayHandler) ExportExcel(c *gin.Context) {
	country := c.Param("country")

	holidays, err := h.holidayService.ListHolidays(country)
	if err != nil {
		respondError(c, err)
		return
	}

	buf, err := h.exportService.ToExcel(country, holidays)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("holidays-%s.xlsx", models.NormalizeCountry(country))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ExportCalendar serves a country's holidays as an iCalendar feed of all-day
// events.
// GET /holidays/:country/calendar
func (h *HolidayHandler) ExportCalendar(c *gin.Context) {
	country := c.Param("country")

	holidays, err := h.holidayService.ListHolidays(country)
	if err != nil {
		respondError(c, err)
		return
	}

	feed, err := h.exportService.ToCalendar(country, holidays)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}
