package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/khorlingling/site"
	"github.com/khorlingling/site/content"
	"github.com/khorlingling/site/middlewares"
	"github.com/khorlingling/site/views"
)

// genericMessage is shown for failures whose detail must stay server-side.
const genericMessage = "Something went wrong. Please try again later."

// ErrorBody is the JSON error payload.
type ErrorBody struct {
	Error string `json:"error"`
}

// Errors renders handler errors as JSON for API clients and as an HTML
// page for browsers.
type Errors struct {
	info content.Info
}

// NewErrors creates the application error handlers.
func NewErrors(info content.Info) *Errors {
	return &Errors{info: info}
}

// Handle is the application ErrorHandler.
// HTTPError messages are client-safe and shown as-is. Any other error,
// including recovered panics, becomes a 500. Recover has already logged
// panics.
func (e *Errors) Handle(c site.Context, err error) error {
	code := http.StatusInternalServerError
	message := genericMessage

	if herr := site.AsHTTPError(err); herr != nil {
		code = herr.StatusCode()
		message = herr.Message
		if code >= http.StatusInternalServerError && herr.Err != nil {
			c.LogError("request failed", slog.Int("status", code), slog.Any("error", herr.Err))
		}
	} else if !middlewares.IsPanicError(err) {
		c.LogError("unhandled error", slog.Any("error", err))
	}

	if wantsJSON(c) {
		return c.JSON(code, ErrorBody{Error: message})
	}
	return c.Render(code, views.ErrorPage(e.info, code, message))
}

// NotFound answers unmatched routes.
func (e *Errors) NotFound(c site.Context) error {
	return site.ErrNotFound(http.StatusText(http.StatusNotFound))
}

// MethodNotAllowed answers routes matched with the wrong method.
func (e *Errors) MethodNotAllowed(c site.Context) error {
	return site.ErrMethodNotAllowed(http.StatusText(http.StatusMethodNotAllowed))
}

func wantsJSON(c site.Context) bool {
	p := c.Request().URL.Path
	if p == "/api" || strings.HasPrefix(p, "/api/") {
		return true
	}
	return strings.Contains(c.Header("Accept"), "application/json")
}
