package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/gin-gonic/gin"
)

const validationFailedMessage = "Validation failed"

// respondError writes the status that matches err. Field validation errors
// are returned under "errors"; anything unexpected is logged and hidden
// behind internalMsg.
func respondError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	if verrs, ok := apperrors.AsValidationErrors(err); ok {
		logger.Warn("Validation error", slog.String("error", verrs.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": validationFailedMessage, "errors": verrs})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}

// respondUnauthorized is used when the auth middleware did not leave a user ID behind.
func respondUnauthorized(c *gin.Context, logger *slog.Logger) {
	logger.Error("User ID not found in context")
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}
