// Package logger builds the site's structured loggers on top of log/slog.
//
// Every logger writes JSON to stdout. Context extractors add request-scoped
// attributes (the request id, for instance) at log time:
//
//	log := logger.New(slog.LevelInfo, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "contact submission relayed", slog.String("message_id", id))
//
// # Sentry
//
// [NewWithSentry] additionally fans warnings and errors out to Sentry when a
// DSN is configured. Without a DSN it degrades to the stdout logger, so the
// same wiring runs locally and in production:
//
//	log := logger.NewWithSentry(cfg.Log, middlewares.RequestIDExtractor())
//	defer logger.Flush(2 * time.Second)(context.Background())
//
// Errors become Sentry issues; warnings are kept as searchable logs.
package logger
