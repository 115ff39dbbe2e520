package middleware

import (
	"log/slog"
	"net/http"

	"isoko/internal/delivery/http/response"
	domainerrors "isoko/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		// Use AppError information
		response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		response.Error(c, httpErr.Code, "HTTP_ERROR", message, message)

		return
	}

	// Default to internal error, log error and return generic error
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	// Send error message in details so the portal can surface upstream failures
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", err.Error())
}
