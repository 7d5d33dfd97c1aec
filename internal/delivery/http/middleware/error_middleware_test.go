package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"

	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/errors"
)

func echoRecover() echo.MiddlewareFunc {
	return echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{DisablePrintStack: true})
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
		expectLog    bool
	}{
		{
			name:         "app error",
			err:          domainerrors.ErrUserNotFound,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"User not found"}`,
		},
		{
			name:         "wrapped app error",
			err:          errors.Wrap(domainerrors.ErrUserAlreadyExists, "failed to create user"),
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Email already exists"}`,
		},
		{
			name:         "login miss keeps 201",
			err:          domainerrors.ErrUnknownIdentifier,
			expectedCode: http.StatusCreated,
			expectedBody: `{"error":"Invalid identifiers"}`,
		},
		{
			name:         "database error hides cause",
			err:          errors.Wrap(domainerrors.NewDatabaseExecuteError(errors.New("dial tcp: refused"), "find"), "login"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Database error"}`,
			expectLog:    true,
		},
		{
			name:         "echo http error",
			err:          echo.ErrNotFound,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Not Found"}`,
		},
		{
			name:         "echo http error without string message",
			err:          echo.NewHTTPError(http.StatusRequestEntityTooLarge, 123),
			expectedCode: http.StatusRequestEntityTooLarge,
			expectedBody: `{"error":"Request Entity Too Large"}`,
		},
		{
			name:         "unknown error",
			err:          errors.New("nil pointer dereference"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
			expectLog:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/users/1", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			if tt.expectLog {
				assert.Contains(t, buf.String(), "Request failed")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	var buf bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.NoContent(http.StatusAccepted)

	m.HandleHTTPError(domainerrors.ErrInternalError, c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}
