// Package internal implements the site's small web kit: App, Router,
// Context, middleware adaptation and the server runtime, on top of chi.
//
// Import the root package instead; it re-exports this API.
//
// Handlers return errors instead of writing failure responses themselves.
// The App routes every returned error to one ErrorHandler, which decides how
// an *HTTPError or an unexpected error is rendered:
//
//	func (h *ContactHandler) submit(c site.Context) error {
//	    if !h.svc.Configured() {
//	        return site.ErrServiceUnavailable("Email service is not configured.")
//	    }
//	    ...
//	    return c.JSON(http.StatusOK, resp)
//	}
//
// Context embeds context.Context, so it can be handed straight to services
// that take a ctx.
package internal
