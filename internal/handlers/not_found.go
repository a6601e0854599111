package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type NotFoundHandler struct{}

func NewNotFoundHandler() *NotFoundHandler {
	return &NotFoundHandler{}
}

// NotFound handles requests to non-existent routes
func (h *NotFoundHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found", "path": c.Request.URL.Path})
}
