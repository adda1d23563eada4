// Package handlers contains HTTP request handlers for the cycling API.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/EliandyDumortier/Cycling-App/internal/logger"
)

// RespondError writes a JSON error body with the given status.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// LogAndRespondError logs the underlying error and responds with a generic
// message, keeping internals out of client-visible bodies.
func LogAndRespondError(c *gin.Context, status int, err error, message string) {
	logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	RespondError(c, status, message)
}
