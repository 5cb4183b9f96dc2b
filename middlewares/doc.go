// Package middlewares provides the HTTP middleware used by the site.
//
// Recommended global order:
//
//	site.WithMiddleware(
//	    middlewares.RequestID(),       // id for all later log lines
//	    middlewares.Logging(),         // one line per request, panics included
//	    middlewares.Recover(),         // catch panics from everything below
//	    middlewares.SecurityHeaders(), // nosniff, frame denial, referrer policy
//	)
//
// The contact API adds its own group middleware:
//
//	r.Route("/api", func(r site.Router) {
//	    r.Use(middlewares.CORS(middlewares.WithAllowOrigins(origins...)))
//	    r.POST("/contact", h.submit, middlewares.BodyLimit(middlewares.DefaultBodyLimit))
//	})
//
// Use RequestIDExtractor with the logger so every record carries request_id:
//
//	log := logger.NewWithSentry(cfg.Log, middlewares.RequestIDExtractor())
//
// Recover returns a *PanicError; the ErrorHandler should answer it with a
// generic 500.
package middlewares
