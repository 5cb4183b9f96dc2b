package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/khorlingling/site/internal"
)

// Logging logs one line per request with method, path, status and duration.
// Server errors log at error level, client errors at warn.
// Request ID is included via RequestIDExtractor() if configured.
func Logging() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			status := 0
			if rw := c.ResponseWriter(); rw != nil {
				status = rw.Status()
			}
			if err != nil && !c.Written() {
				status = http.StatusInternalServerError
				if httpErr := internal.AsHTTPError(err); httpErr != nil {
					status = httpErr.Code
				}
			}

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Duration("duration", time.Since(start)),
			}

			switch {
			case status >= 500:
				c.LogError("request", attrs...)
			case status >= 400:
				c.LogWarn("request", attrs...)
			default:
				c.LogInfo("request", attrs...)
			}
			return err
		}
	}
}
