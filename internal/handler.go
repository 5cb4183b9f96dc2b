package internal

// Handler declares routes on a router.
//
// Example:
//
//	type PageHandler struct {
//	    sections []content.Section
//	}
//
//	func (h *PageHandler) Routes(r site.Router) {
//	    r.GET("/", h.home)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// A non-nil error is passed to the application's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc. It may inspect or modify the request,
// short-circuit, or decorate the response.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders errors returned from handlers and middleware.
type ErrorHandler func(Context, error) error
