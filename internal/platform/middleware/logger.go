package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Logger emits one structured line per request. Handler errors are
// logged with their underlying cause (the HTTPError internal when one is
// set), which is how store failures hidden behind a generic 500 stay
// visible to operators.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			status := c.Response().Status
			cause := err
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
				if he.Internal != nil {
					cause = he.Internal
				}
			}

			evt := logger.Info()
			if cause != nil || status >= http.StatusInternalServerError {
				evt = logger.Error().Err(cause)
			}

			rid, _ := c.Get("request_id").(string)
			evt.
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Int64("bytes_out", c.Response().Size).
				Msg("request")

			return err
		}
	}
}
