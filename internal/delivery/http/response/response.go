// Package response shapes the JSON bodies written by the user HTTP API.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every non-2xx response, and of the 201 login miss.
type ErrorResponse struct {
	Error string `json:"error" example:"User not found"`
}

// Error writes {"error": message} with the given status.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// JSON writes data as-is with the given status.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}
