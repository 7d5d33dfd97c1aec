package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"userauth/internal/delivery/http/response"
	deliverycontext "userauth/internal/delivery/context"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Every error is rendered as {"error": message}; 5xx causes are logged, never sent.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logServerError(c, err)
		}

		m.write(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	// Check if it is an Echo HTTPError (routing, body limit, recovered panics wrap here too)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		m.write(c, httpErr.Code, message)

		return
	}

	m.logServerError(c, err)
	m.write(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message())
}

func (m *ErrorMiddleware) write(c echo.Context, status int, message string) {
	if err := response.Error(c, status, message); err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

func (m *ErrorMiddleware) logServerError(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Request failed",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
