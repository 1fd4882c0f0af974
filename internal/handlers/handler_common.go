package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/buylog/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError writes err as a JSON error with the status apperrors assigns it.
// Server errors are logged and their details withheld from the client.
func respondError(c *gin.Context, logger *slog.Logger, err error, failure string) {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error(failure, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": failure})
		return
	}
	logger.Warn(failure, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}

// bindJSON binds the request body, answering 400 on failure.
func bindJSON(c *gin.Context, logger *slog.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// bindQuery binds the query string, answering 400 on failure.
func bindQuery(c *gin.Context, logger *slog.Logger, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return false
	}
	return true
}
