package mailer

import (
	"bytes"
	"context"
	"errors"
	texttemplate "text/template"
)

// Mailer renders templates into emails and dispatches them through a Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a Mailer.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
	}
}

// SendParams describes one templated email.
type SendParams struct {
	To       string // Single recipient
	Template string // Template name without extension, e.g. "contact"
	Data     any    // Template data
	Auth     Auth   // Transport credentials for this send

	// Optional overrides
	Subject string // Override template subject
	Layout  string // Override default layout
	From    string // Sender address (RFC 5322)
	ReplyTo string // Reply-to address (RFC 5322)
}

// Compose renders params into an Email without sending it.
// Subject resolution: params.Subject > template "Subject" > config fallback.
// The chosen subject is itself executed as a text template with params.Data.
func (m *Mailer) Compose(params SendParams) (*Email, error) {
	if params.To == "" {
		return nil, ErrNoRecipient
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	result, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		if fromMeta, ok := result.Metadata["Subject"].(string); ok {
			subject = fromMeta
		} else {
			subject = m.config.FallbackSubject
		}
	}

	processed, err := processSubject(subject, params.Data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	return &Email{
		To:      []string{params.To},
		Subject: processed,
		HTML:    result.HTML,
		Text:    result.Text,
		From:    params.From,
		ReplyTo: params.ReplyTo,
	}, nil
}

// Send composes and dispatches a templated email.
func (m *Mailer) Send(ctx context.Context, params SendParams) (*Result, error) {
	email, err := m.Compose(params)
	if err != nil {
		return nil, err
	}
	return m.SendRaw(ctx, email, params.Auth)
}

// SendRaw validates and dispatches a pre-built email.
func (m *Mailer) SendRaw(ctx context.Context, email *Email, auth Auth) (*Result, error) {
	switch {
	case len(email.To) == 0:
		return nil, ErrNoRecipient
	case email.Subject == "":
		return nil, ErrNoSubject
	case email.HTML == "" && email.Text == "":
		return nil, ErrNoContent
	case auth.User == "" || auth.AccessToken == "":
		return nil, ErrMissingAuth
	}

	res, err := m.sender.Send(ctx, email, auth)
	if err != nil {
		return nil, errors.Join(ErrSendFailed, err)
	}
	return res, nil
}

func processSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
