package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/khorlingling/site/pkg/health"
	"github.com/khorlingling/site/pkg/logger"
	"github.com/khorlingling/site/pkg/mailer"
	"github.com/khorlingling/site/pkg/sanitizer"
)

// Template is the email template name under emails/.
const Template = "contact"

// TokenSource exchanges a long-lived refresh token for an access token.
type TokenSource interface {
	AccessToken(ctx context.Context, clientID, clientSecret, refreshToken string) (string, error)
}

// Dispatcher composes and sends templated email. *mailer.Mailer satisfies it.
type Dispatcher interface {
	Compose(params mailer.SendParams) (*mailer.Email, error)
	SendRaw(ctx context.Context, email *mailer.Email, auth mailer.Auth) (*mailer.Result, error)
}

// Service runs the contact pipeline. It holds no mutable state and is safe
// for concurrent use.
type Service struct {
	cfg    Config
	tokens TokenSource
	mailer Dispatcher
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for upstream failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service.
func NewService(cfg Config, tokens TokenSource, m Dispatcher, opts ...Option) *Service {
	s := &Service{
		cfg:    cfg,
		tokens: tokens,
		mailer: m,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Configured reports whether submissions can be relayed at all.
func (s *Service) Configured() bool {
	return s.cfg.Configured()
}

// Healthcheck fails while the relay configuration is incomplete.
func (s *Service) Healthcheck() health.CheckFunc {
	return func(context.Context) error {
		if s.cfg.Configured() {
			return nil
		}
		if missing := s.cfg.missing(); len(missing) > 0 {
			return fmt.Errorf("%w: missing %s", ErrNotConfigured, strings.Join(missing, ", "))
		}
		return ErrNotConfigured
	}
}

// Submit validates sub and relays it. The returned error wraps exactly one
// of ErrNotConfigured, ErrMissingFields, ErrInvalidEmail, ErrTokenFailed,
// ErrComposeFailed or ErrSendFailed. The token refresh and the dispatch run
// sequentially; nothing is retried.
func (s *Service) Submit(ctx context.Context, sub Submission) (*mailer.Result, error) {
	if !s.cfg.Configured() {
		return nil, ErrNotConfigured
	}
	if !sub.Complete() {
		return nil, ErrMissingFields
	}
	if !ValidEmail(sub.Email) {
		return nil, ErrInvalidEmail
	}

	token, err := s.tokens.AccessToken(ctx, s.cfg.ClientID, s.cfg.ClientSecret, s.cfg.RefreshToken)
	if err != nil {
		s.logger.ErrorContext(ctx, "contact: access token refresh failed", slog.Any("error", err))
		return nil, errors.Join(ErrTokenFailed, err)
	}

	email, err := s.Compose(sub)
	if err != nil {
		return nil, err
	}

	res, err := s.mailer.SendRaw(ctx, email, mailer.Auth{User: s.cfg.Sender, AccessToken: token})
	if err != nil {
		s.logger.ErrorContext(ctx, "contact: send failed",
			slog.String("to", s.cfg.Destination()),
			slog.Any("error", err),
		)
		return nil, errors.Join(ErrSendFailed, err)
	}

	s.logger.InfoContext(ctx, "contact: inquiry relayed", slog.String("message_id", res.MessageID))
	return res, nil
}

// Compose builds the notification email for sub without sending it.
// Free text is normalized first; single-line fields lose line breaks so
// they cannot alter the subject header.
func (s *Service) Compose(sub Submission) (*mailer.Email, error) {
	data := Submission{
		Name:         sanitizer.Line(sub.Name),
		Email:        sanitizer.Line(sub.Email),
		Organization: sanitizer.Line(sub.Organization),
		Message:      sanitizer.Text(sub.Message),
	}

	email, err := s.mailer.Compose(mailer.SendParams{
		To:       s.cfg.Destination(),
		Template: Template,
		Data:     data,
		From:     mailer.Recipient(s.cfg.FromName, s.cfg.Sender),
		ReplyTo:  s.replyTo(sub.Email),
	})
	if err != nil {
		return nil, errors.Join(ErrComposeFailed, err)
	}
	return email, nil
}

func (s *Service) replyTo(submitter string) string {
	switch {
	case submitter != "":
		return submitter
	case s.cfg.ReplyTo != "":
		return s.cfg.ReplyTo
	default:
		return s.cfg.Sender
	}
}
