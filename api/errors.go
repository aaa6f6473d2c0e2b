package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/stadiumbooking/internal/domain"
	"github.com/Domenick1991/stadiumbooking/internal/logger"
	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case domain.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTransient):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).WithError(err).Error("request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
