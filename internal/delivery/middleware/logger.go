package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"

	"userauth/config"
)

// quietPaths are polled by load balancers and not worth an access log line each.
var quietPaths = []string{"/health"}

// NewLoggerMiddleware builds the access log middleware. Successful requests
// log at debug unless env.debug is set; 4xx log at warn and 5xx at error.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	defaultLevel := slog.LevelDebug
	if cfg.Env.Debug {
		defaultLevel = slog.LevelInfo
	}

	return slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     defaultLevel,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithUserAgent:    true,
		WithRequestID:    true,
		Filters: []slogecho.Filter{
			slogecho.IgnorePath(quietPaths...),
		},
	})
}
