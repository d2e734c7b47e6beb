package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/SscSPs/statement_converter/internal/dto"
	"github.com/SscSPs/statement_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusForError maps an error kind onto an HTTP status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrUnsupportedFormat), errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrMalformedInput),
		errors.Is(err, apperrors.ErrParseDate),
		errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrInvalidIndicator),
		errors.Is(err, apperrors.ErrMissingField),
		errors.Is(err, apperrors.ErrConversion):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body. Internal errors are logged and their
// message is not exposed.
func respondError(c *gin.Context, err error) {
	status := statusForError(err)
	kind := apperrors.Kind(err)
	logger := middleware.GetLoggerFromContext(c)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("error", err.Error()))
		msg = "Internal server error"
	} else {
		logger.Warn("Request rejected", slog.String("kind", kind), slog.String("error", err.Error()))
	}
	c.JSON(status, dto.ErrorResponse{Error: msg, Kind: kind})
}
