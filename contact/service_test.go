package contact_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/khorlingling/site/contact"
	"github.com/khorlingling/site/emails"
	"github.com/khorlingling/site/pkg/mailer"
)

type mockTokens struct {
	mock.Mock
}

func (m *mockTokens) AccessToken(ctx context.Context, clientID, clientSecret, refreshToken string) (string, error) {
	args := m.Called(ctx, clientID, clientSecret, refreshToken)
	return args.String(0), args.Error(1)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, email *mailer.Email, auth mailer.Auth) (*mailer.Result, error) {
	args := m.Called(ctx, email, auth)
	res, _ := args.Get(0).(*mailer.Result)
	return res, args.Error(1)
}

func testConfig() contact.Config {
	return contact.Config{
		Sender:       "speaker@gmail.com",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RefreshToken: "refresh-token",
		FromName:     "Speaker Ling",
	}
}

func validSubmission() contact.Submission {
	return contact.Submission{
		Name:         "Jane Tan",
		Email:        "jane@example.com",
		Organization: "Acme School",
		Message:      "Would you speak at our career day?",
	}
}

func newService(cfg contact.Config, tokens contact.TokenSource, sender mailer.Sender) *contact.Service {
	m := mailer.New(sender, mailer.NewRenderer(emails.FS), mailer.Config{
		DefaultLayout:   "base.html",
		FallbackSubject: "New Contact Inquiry",
	})
	return contact.NewService(cfg, tokens, m)
}

func TestService_Submit(t *testing.T) {
	t.Parallel()

	t.Run("relays a valid submission", func(t *testing.T) {
		t.Parallel()

		tokens := &mockTokens{}
		tokens.On("AccessToken", mock.Anything, "client-id", "client-secret", "refresh-token").
			Return("ya29.access", nil).Once()

		want := &mailer.Result{MessageID: "<01J@gmail.com>", Accepted: []string{"speaker@gmail.com"}}
		sender := &mockSender{}
		sender.On("Send", mock.Anything, mock.MatchedBy(func(e *mailer.Email) bool {
			return e.From == `"Speaker Ling" <speaker@gmail.com>` &&
				len(e.To) == 1 && e.To[0] == "speaker@gmail.com" &&
				e.ReplyTo == "jane@example.com" &&
				e.Subject == "New Contact Inquiry from Jane Tan"
		}), mailer.Auth{User: "speaker@gmail.com", AccessToken: "ya29.access"}).Return(want, nil).Once()

		res, err := newService(testConfig(), tokens, sender).Submit(context.Background(), validSubmission())
		require.NoError(t, err)
		require.Same(t, want, res)
		tokens.AssertExpectations(t)
		sender.AssertExpectations(t)
	})

	t.Run("sends to CONTACT_TO when set", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.To = "inbox@example.com"

		tokens := &mockTokens{}
		tokens.On("AccessToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("tok", nil)
		sender := &mockSender{}
		sender.On("Send", mock.Anything, mock.MatchedBy(func(e *mailer.Email) bool {
			return e.To[0] == "inbox@example.com"
		}), mock.Anything).Return(&mailer.Result{}, nil)

		_, err := newService(cfg, tokens, sender).Submit(context.Background(), validSubmission())
		require.NoError(t, err)
		sender.AssertExpectations(t)
	})

	t.Run("not configured", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.RefreshToken = ""
		tokens := &mockTokens{}
		sender := &mockSender{}

		svc := newService(cfg, tokens, sender)
		require.False(t, svc.Configured())

		_, err := svc.Submit(context.Background(), validSubmission())
		require.ErrorIs(t, err, contact.ErrNotConfigured)
		tokens.AssertNotCalled(t, "AccessToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()

		tokens := &mockTokens{}
		sender := &mockSender{}
		sub := validSubmission()
		sub.Organization = ""

		_, err := newService(testConfig(), tokens, sender).Submit(context.Background(), sub)
		require.ErrorIs(t, err, contact.ErrMissingFields)
		tokens.AssertNotCalled(t, "AccessToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("presence is checked before email format", func(t *testing.T) {
		t.Parallel()

		sub := validSubmission()
		sub.Email = "not-an-email"
		sub.Message = ""

		_, err := newService(testConfig(), &mockTokens{}, &mockSender{}).Submit(context.Background(), sub)
		require.ErrorIs(t, err, contact.ErrMissingFields)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		tokens := &mockTokens{}
		sub := validSubmission()
		sub.Email = "jane@example"

		_, err := newService(testConfig(), tokens, &mockSender{}).Submit(context.Background(), sub)
		require.ErrorIs(t, err, contact.ErrInvalidEmail)
		tokens.AssertNotCalled(t, "AccessToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("token failure skips dispatch", func(t *testing.T) {
		t.Parallel()

		upstream := errors.New("invalid_grant")
		tokens := &mockTokens{}
		tokens.On("AccessToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", upstream)
		sender := &mockSender{}

		_, err := newService(testConfig(), tokens, sender).Submit(context.Background(), validSubmission())
		require.ErrorIs(t, err, contact.ErrTokenFailed)
		require.ErrorIs(t, err, upstream)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("send failure", func(t *testing.T) {
		t.Parallel()

		upstream := errors.New("535 5.7.8 Username and Password not accepted")
		tokens := &mockTokens{}
		tokens.On("AccessToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("tok", nil)
		sender := &mockSender{}
		sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil, upstream)

		_, err := newService(testConfig(), tokens, sender).Submit(context.Background(), validSubmission())
		require.ErrorIs(t, err, contact.ErrSendFailed)
		require.ErrorIs(t, err, upstream)
	})
}

func TestService_Compose(t *testing.T) {
	t.Parallel()

	t.Run("escapes html and keeps text", func(t *testing.T) {
		t.Parallel()

		sub := validSubmission()
		sub.Message = "<script>alert(1)</script>\r\nThanks"

		email, err := newService(testConfig(), &mockTokens{}, &mockSender{}).Compose(sub)
		require.NoError(t, err)

		require.Contains(t, email.Text, "Message:\n<script>alert(1)</script>\nThanks\n\nSent from Khor Ling Ling Portfolio Website")
		require.NotContains(t, email.HTML, "<script>")
		require.Contains(t, email.HTML, "&lt;script&gt;")
	})

	t.Run("line breaks cannot reach the subject", func(t *testing.T) {
		t.Parallel()

		sub := validSubmission()
		sub.Name = "Jane\r\nBcc: victim@example.com"

		email, err := newService(testConfig(), &mockTokens{}, &mockSender{}).Compose(sub)
		require.NoError(t, err)
		require.NotContains(t, email.Subject, "\n")
		require.NotContains(t, email.Subject, "\r")
		require.Contains(t, email.Subject, "New Contact Inquiry from Jane")
	})

	t.Run("reply-to prefers submitter", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.ReplyTo = "office@example.com"

		email, err := newService(cfg, &mockTokens{}, &mockSender{}).Compose(validSubmission())
		require.NoError(t, err)
		require.Equal(t, "jane@example.com", email.ReplyTo)
	})

	t.Run("reply-to falls back to REPLY_TO then sender", func(t *testing.T) {
		t.Parallel()

		sub := validSubmission()
		sub.Email = ""

		cfg := testConfig()
		cfg.ReplyTo = "office@example.com"
		email, err := newService(cfg, &mockTokens{}, &mockSender{}).Compose(sub)
		require.NoError(t, err)
		require.Equal(t, "office@example.com", email.ReplyTo)

		email, err = newService(testConfig(), &mockTokens{}, &mockSender{}).Compose(sub)
		require.NoError(t, err)
		require.Equal(t, "speaker@gmail.com", email.ReplyTo)
	})
}

func TestService_Healthcheck(t *testing.T) {
	t.Parallel()

	svc := newService(testConfig(), &mockTokens{}, &mockSender{})
	require.NoError(t, svc.Healthcheck()(context.Background()))

	cfg := testConfig()
	cfg.ClientSecret = ""
	err := newService(cfg, &mockTokens{}, &mockSender{}).Healthcheck()(context.Background())
	require.ErrorIs(t, err, contact.ErrNotConfigured)
	require.Contains(t, err.Error(), "GOOGLE_CLIENT_SECRET")
}
