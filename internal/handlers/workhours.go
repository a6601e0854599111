package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alimgiray/workhours/internal/apperrors"
	"github.com/alimgiray/workhours/internal/services"
)

type WorkHoursHandler struct {
	workHoursService *services.WorkHoursService
}

func NewWorkHoursHandler(workHoursService *services.WorkHoursService) *WorkHoursHandler {
	return &WorkHoursHandler{
		workHoursService: workHoursService,
	}
}

// WorkHoursRequest is the JSON body accepted by the POST variant. Either
// end_date or duration_seconds must be provided.
type WorkHoursRequest struct {
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	DurationSeconds *int64 `json:"durationSeconds"`
	Country         string `json:"country"`
	Timezone        string `json:"timezone"`
}

// GetWorkHours computes work hours from query parameters:
// GET /?startDate=..&endDate=..&country=..&timezone=..
func (h *WorkHoursHandler) GetWorkHours(c *gin.Context) {
	req := WorkHoursRequest{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Country:   c.Query("country"),
		Timezone:  c.Query("timezone"),
	}

	if raw := c.Query("durationSeconds"); raw != "" {
		seconds, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(c, apperrors.NewValidationError("durationSeconds", raw+" is not an integer"))
			return
		}
		req.DurationSeconds = &seconds
	}

	h.compute(c, req)
}

// PostWorkHours computes work hours from a JSON body:
// POST / with {"startDate": .., "endDate" | "durationSeconds": .., ..}
func (h *WorkHoursHandler) PostWorkHours(c *gin.Context) {
	var req WorkHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	h.compute(c, req)
}

func (h *WorkHoursHandler) compute(c *gin.Context, req WorkHoursRequest) {
	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		respondError(c, apperrors.NewValidationError("startDate", req.StartDate+" is not an RFC3339 timestamp"))
		return
	}

	var end time.Time
	switch {
	case req.EndDate != "":
		end, err = time.Parse(time.RFC3339, req.EndDate)
		if err != nil {
			respondError(c, apperrors.NewValidationError("endDate", req.EndDate+" is not an RFC3339 timestamp"))
			return
		}
	case req.DurationSeconds != nil:
		end = start.Add(time.Duration(*req.DurationSeconds) * time.Second)
	default:
		respondError(c, apperrors.NewValidationError("endDate", "either endDate or durationSeconds must be provided"))
		return
	}

	duration, err := h.workHoursService.Compute(start, end, req.Country, req.Timezone)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, duration)
}
