// Package site is the web kit behind the Khor Ling Ling portfolio site:
// a chi-based App with a small handler/middleware model, one error handler,
// health probes and graceful shutdown.
//
// # Quick Start
//
//	errs := handlers.NewErrors(content.Info)
//	app := site.New(
//	    site.WithCustomLogger(log),
//	    site.WithMiddleware(middlewares.RequestID(), middlewares.Logging(), middlewares.Recover()),
//	    site.WithStaticFiles("/static/", web.Assets, web.Root),
//	    site.WithHandlers(
//	        handlers.NewPageHandler(content),
//	        handlers.NewContactHandler(svc),
//	    ),
//	    site.WithErrorHandler(errs.Handle),
//	)
//
//	if err := app.Run(cfg.Address, site.Logger(log)); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Handlers
//
// Handlers implement [Handler] to declare routes:
//
//	type ContactHandler struct {
//	    svc *contact.Service
//	}
//
//	func (h *ContactHandler) Routes(r site.Router) {
//	    r.Route("/api", func(r site.Router) {
//	        r.POST("/contact", h.submit)
//	    })
//	}
//
// A handler returns an error instead of writing a failure response. Return
// an [*HTTPError] to control the status and client message:
//
//	return site.ErrBadRequest("All fields are required")
//
// Any other error reaches the [ErrorHandler] as an unexpected failure.
//
// # Middleware
//
// Global middleware is set with [WithMiddleware]; route middleware is passed
// after the handler or attached to a group with Router.Use. Middleware runs
// in the order it is listed.
//
// # Shutdown
//
// [App.Run] blocks until SIGINT or SIGTERM, drains in-flight requests, then
// runs hooks registered with [ShutdownHook].
package site
