package middlewares

import (
	"net/http"

	"github.com/khorlingling/site/internal"
)

// DefaultBodyLimit is used when BodyLimit gets a non-positive size.
const DefaultBodyLimit int64 = 64 << 10

// BodyLimitMessage is the client message for oversized payloads.
const BodyLimitMessage = "Request body too large."

// BodyLimit caps the request body at max bytes.
// A declared Content-Length above the cap is rejected with 413 before the
// handler runs. Bodies without a length are wrapped in http.MaxBytesReader,
// so reads past the cap fail with *http.MaxBytesError.
func BodyLimit(max int64) internal.Middleware {
	if max <= 0 {
		max = DefaultBodyLimit
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			r := c.Request()
			if r.Body == nil || r.Body == http.NoBody {
				return next(c)
			}

			if r.ContentLength > max {
				return internal.ErrRequestTooLarge(BodyLimitMessage)
			}

			r.Body = http.MaxBytesReader(c.Response(), r.Body, max)
			return next(c)
		}
	}
}
