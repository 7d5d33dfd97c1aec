package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userauth/config"
	deliverycontext "userauth/internal/delivery/context"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		expectSame bool
	}{
		{name: "client supplied", header: "req-123", expectSame: true},
		{name: "missing", header: ""},
		{name: "too long", header: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenInContext string
			handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
				ctx := c.Request().Context()
				seenInContext = deliverycontext.GetRequestIDFromContext(ctx)
				deliverycontext.GetLoggerOrDefault(ctx, nil).Info("inside handler")

				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			if tt.expectSame {
				assert.Equal(t, tt.header, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			assert.Equal(t, got, seenInContext)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			assert.Contains(t, buf.String(), `"request_id":"`+got+`"`)
		})
	}
}

func TestLoggerMiddleware_LogsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, cfg))
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/users/1", func(c echo.Context) error { return c.NoContent(http.StatusNotFound) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/1", nil))
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), "404")
}
