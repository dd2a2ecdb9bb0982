package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
)

// errorStatus maps core error kinds to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrCurrencyMismatch),
		errors.Is(err, apperrors.ErrNegativeBalance),
		errors.Is(err, apperrors.ErrInvalidTransfer),
		errors.Is(err, apperrors.ErrInsufficientFunds):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError writes the mapped status. Unexpected errors are logged and
// answered with failureMsg so internals do not leak.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": failureMsg})
		return
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}
