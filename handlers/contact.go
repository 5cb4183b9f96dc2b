package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/khorlingling/site"
	"github.com/khorlingling/site/contact"
	"github.com/khorlingling/site/middlewares"
	"github.com/khorlingling/site/pkg/mailer"
)

// Submitter runs the contact pipeline. *contact.Service satisfies it.
type Submitter interface {
	Configured() bool
	Submit(ctx context.Context, sub contact.Submission) (*mailer.Result, error)
}

// ContactResponse is the success body of POST /api/contact.
type ContactResponse struct {
	Success bool           `json:"success"`
	Data    *mailer.Result `json:"data"`
}

// ContactHandler serves POST /api/contact.
type ContactHandler struct {
	svc     Submitter
	maxBody int64
	api     []site.Middleware
}

// ContactOption configures a ContactHandler.
type ContactOption func(*ContactHandler)

// WithMaxBodyBytes caps the submission body. Non-positive values use
// middlewares.DefaultBodyLimit.
func WithMaxBodyBytes(n int64) ContactOption {
	return func(h *ContactHandler) {
		h.maxBody = n
	}
}

// WithAPIMiddleware adds middleware to every /api route, such as CORS.
func WithAPIMiddleware(mw ...site.Middleware) ContactOption {
	return func(h *ContactHandler) {
		h.api = append(h.api, mw...)
	}
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc Submitter, opts ...ContactOption) *ContactHandler {
	h := &ContactHandler{svc: svc}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes declares the contact API.
// The configuration check runs before the body limit so an unconfigured
// relay answers 503 without touching the body.
func (h *ContactHandler) Routes(r site.Router) {
	r.Route("/api", func(r site.Router) {
		r.Use(h.api...)
		r.POST("/contact", h.submit, h.requireConfigured, middlewares.BodyLimit(h.maxBody))
	})
}

func (h *ContactHandler) requireConfigured(next site.HandlerFunc) site.HandlerFunc {
	return func(c site.Context) error {
		if !h.svc.Configured() {
			return site.ErrServiceUnavailable(contact.MsgNotConfigured, site.WithError(contact.ErrNotConfigured))
		}
		return next(c)
	}
}

func (h *ContactHandler) submit(c site.Context) error {
	body, err := c.ReadBody()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return site.ErrRequestTooLarge(middlewares.BodyLimitMessage, site.WithError(err))
		}
		return site.ErrInternal(contact.MsgSendFailed, site.WithError(err))
	}

	sub, err := contact.ParseSubmission(body)
	if err != nil {
		return site.ErrInternal(contact.MsgSendFailed, site.WithError(err))
	}

	res, err := h.svc.Submit(c.Context(), sub)
	if err != nil {
		return submitError(err)
	}

	return c.JSON(http.StatusOK, ContactResponse{Success: true, Data: res})
}

func submitError(err error) *site.HTTPError {
	switch {
	case errors.Is(err, contact.ErrNotConfigured):
		return site.ErrServiceUnavailable(contact.MsgNotConfigured, site.WithError(err))
	case errors.Is(err, contact.ErrMissingFields):
		return site.ErrBadRequest(contact.MsgMissingFields, site.WithError(err))
	case errors.Is(err, contact.ErrInvalidEmail):
		return site.ErrBadRequest(contact.MsgInvalidEmail, site.WithError(err))
	default:
		return site.ErrInternal(contact.MsgSendFailed, site.WithError(err))
	}
}
