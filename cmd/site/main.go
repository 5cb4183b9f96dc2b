// Command site serves the portfolio page and relays contact inquiries.
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/khorlingling/site"
	"github.com/khorlingling/site/config"
	"github.com/khorlingling/site/contact"
	"github.com/khorlingling/site/content"
	"github.com/khorlingling/site/emails"
	"github.com/khorlingling/site/handlers"
	"github.com/khorlingling/site/middlewares"
	"github.com/khorlingling/site/pkg/logger"
	"github.com/khorlingling/site/pkg/mailer"
	"github.com/khorlingling/site/pkg/mailer/gmail"
	"github.com/khorlingling/site/pkg/oauth"
	"github.com/khorlingling/site/web"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewWithSentry(cfg.Log, middlewares.RequestIDExtractor()).
		With(slog.String("component", "site"))

	siteContent, err := content.Load(context.Background(), content.Files)
	if err != nil {
		return err
	}

	m := mailer.New(gmail.New(cfg.SMTP), mailer.NewRenderer(emails.FS), cfg.Mailer)
	svc := contact.NewService(cfg.Contact, oauth.NewGoogleRefresher(), m, contact.WithLogger(log))
	if !svc.Configured() {
		log.Warn("contact relay is not configured; submissions will be refused")
	}

	errs := handlers.NewErrors(siteContent.Info)

	app := site.New(
		site.WithCustomLogger(log),
		site.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Logging(),
			middlewares.Recover(),
			middlewares.SecurityHeaders(),
		),
		site.WithStaticFiles("/static/", web.Assets, web.Root),
		site.WithHandlers(
			handlers.NewPageHandler(siteContent),
			handlers.NewContactHandler(svc,
				handlers.WithMaxBodyBytes(cfg.MaxBodyBytes),
				handlers.WithAPIMiddleware(middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSAllowedOrigins...))),
			),
		),
		site.WithErrorHandler(errs.Handle),
		site.WithNotFoundHandler(errs.NotFound),
		site.WithMethodNotAllowedHandler(errs.MethodNotAllowed),
		site.WithHealthChecks(
			site.WithReadinessCheck("mail-config", svc.Healthcheck()),
		),
	)

	return app.Run(cfg.Address,
		site.Logger(log),
		site.ShutdownTimeout(cfg.ShutdownTimeout),
		site.ShutdownHook(logger.Flush(2*time.Second)),
		site.OnListen(func(addr net.Addr) {
			log.Info("listening", slog.String("addr", addr.String()), slog.String("env", cfg.AppEnv))
		}),
	)
}
