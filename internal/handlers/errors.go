package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimgiray/workhours/internal/apperrors"
	"github.com/alimgiray/workhours/pkg/logger"
)

// respondError maps the service error taxonomy to HTTP statuses. User-fixable
// input problems are 400s; storage failures are 500s and keep their detail in
// the logs rather than the response.
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	var timezoneErr *apperrors.UnknownTimezoneError
	var rangeErr *apperrors.InvalidRangeError
	var persistenceErr *apperrors.PersistenceError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &timezoneErr), errors.As(err, &rangeErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &persistenceErr):
		logger.WithError(err).Error("Storage failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
	default:
		logger.WithError(err).Error("Unexpected failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
