// Package middleware contains HTTP middleware for the delivery layer.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"usersvc/internal/delivery/http/response"
	domainerrors "usersvc/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware maps application errors to transport responses. It is the
// only place where the error taxonomy turns into status codes and bodies.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Application errors carry their own status and stable message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				slog.String("error", err.Error()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		_ = response.Fail(c, appErr.HTTPCode(), appErr.Message(), appErr.Details())

		return
	}

	// Echo's own errors (unknown route, oversized body, bad JSON).
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Fail(c, httpErr.Code, fmt.Sprintf("%v", httpErr.Message), nil)

		return
	}

	// Anything else is an internal failure; log the cause, never leak it.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Fail(c, http.StatusInternalServerError, "internal server error", nil)
}
