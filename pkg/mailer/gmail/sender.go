// Package gmail delivers mail through Gmail's SMTP relay, authenticating
// every connection with an OAuth2 access token (SASL XOAUTH2).
package gmail

import (
	"context"
	"fmt"
	"net/mail"

	"gopkg.in/gomail.v2"

	"github.com/khorlingling/site/pkg/id"
	"github.com/khorlingling/site/pkg/mailer"
)

// SendFunc performs the SMTP dialogue for prepared messages.
type SendFunc func(d *gomail.Dialer, msgs ...*gomail.Message) error

// Sender implements mailer.Sender on top of gomail.
type Sender struct {
	config Config
	send   SendFunc
}

// Option configures a Sender.
type Option func(*Sender)

// WithSendFunc replaces the SMTP dialogue, e.g. with a recorder in tests.
func WithSendFunc(fn SendFunc) Option {
	return func(s *Sender) {
		if fn != nil {
			s.send = fn
		}
	}
}

// New creates a Gmail sender.
func New(cfg Config, opts ...Option) *Sender {
	if cfg.Host == "" {
		cfg.Host = defaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}

	s := &Sender{
		config: cfg,
		send: func(d *gomail.Dialer, msgs ...*gomail.Message) error {
			return d.DialAndSend(msgs...)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send implements mailer.Sender. The dialogue itself is not cancellable;
// ctx is checked once before dialing.
func (s *Sender) Send(ctx context.Context, email *mailer.Email, auth mailer.Auth) (*mailer.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	msg, envelope, err := s.build(email, auth)
	if err != nil {
		return nil, err
	}
	messageID := id.MessageID(envelope.From)
	msg.SetHeader("Message-ID", messageID)

	d := gomail.NewDialer(s.config.Host, s.config.Port, auth.User, "")
	d.Auth = XOAUTH2(auth.User, auth.AccessToken, s.config.Host)

	if err := s.send(d, msg); err != nil {
		return nil, fmt.Errorf("gmail: send: %w", err)
	}

	return &mailer.Result{
		MessageID: messageID,
		Accepted:  envelope.To,
		Rejected:  []string{},
		Envelope:  envelope,
	}, nil
}

func (s *Sender) build(email *mailer.Email, auth mailer.Auth) (*gomail.Message, mailer.Envelope, error) {
	fromValue := email.From
	if fromValue == "" {
		fromValue = auth.User
	}
	from, err := mail.ParseAddress(fromValue)
	if err != nil {
		return nil, mailer.Envelope{}, fmt.Errorf("gmail: from address: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", from.Address, from.Name)

	to := make([]string, 0, len(email.To))
	formatted := make([]string, 0, len(email.To))
	for _, raw := range email.To {
		addr, err := mail.ParseAddress(raw)
		if err != nil {
			return nil, mailer.Envelope{}, fmt.Errorf("gmail: recipient %q: %w", raw, err)
		}
		to = append(to, addr.Address)
		formatted = append(formatted, msg.FormatAddress(addr.Address, addr.Name))
	}
	msg.SetHeader("To", formatted...)

	if email.ReplyTo != "" {
		replyTo, err := mail.ParseAddress(email.ReplyTo)
		if err != nil {
			return nil, mailer.Envelope{}, fmt.Errorf("gmail: reply-to address: %w", err)
		}
		msg.SetAddressHeader("Reply-To", replyTo.Address, replyTo.Name)
	}

	msg.SetHeader("Subject", email.Subject)

	switch {
	case email.Text != "" && email.HTML != "":
		msg.SetBody("text/plain", email.Text)
		msg.AddAlternative("text/html", email.HTML)
	case email.HTML != "":
		msg.SetBody("text/html", email.HTML)
	default:
		msg.SetBody("text/plain", email.Text)
	}

	return msg, mailer.Envelope{From: from.Address, To: to}, nil
}
