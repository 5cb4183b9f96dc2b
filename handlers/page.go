package handlers

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/khorlingling/site"
	"github.com/khorlingling/site/content"
	"github.com/khorlingling/site/views"
)

// PageHandler serves the single page.
type PageHandler struct {
	page templ.Component
}

// NewPageHandler creates a PageHandler for s. Content is fixed after startup.
func NewPageHandler(s *content.Site) *PageHandler {
	return &PageHandler{page: views.Page(s)}
}

func (h *PageHandler) Routes(r site.Router) {
	r.GET("/", h.home)
}

func (h *PageHandler) home(c site.Context) error {
	return c.Render(http.StatusOK, h.page)
}
