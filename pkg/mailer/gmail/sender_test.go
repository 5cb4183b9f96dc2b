package gmail_test

import (
	"bytes"
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/khorlingling/site/pkg/mailer"
	"github.com/khorlingling/site/pkg/mailer/gmail"
)

type recorder struct {
	dialer *gomail.Dialer
	msgs   []*gomail.Message
	err    error
}

func (r *recorder) send(d *gomail.Dialer, msgs ...*gomail.Message) error {
	r.dialer = d
	r.msgs = append(r.msgs, msgs...)
	return r.err
}

var auth = mailer.Auth{User: "speaker@gmail.com", AccessToken: "ya29.token"}

func testEmail() *mailer.Email {
	return &mailer.Email{
		From:    `"Speaker Ling" <speaker@gmail.com>`,
		To:      []string{"owner@example.com"},
		ReplyTo: "jane@nus.edu.sg",
		Subject: "New Contact Inquiry from Jane Tan",
		Text:    "New Contact Form Submission\n",
		HTML:    "<h2>New Contact Form Submission</h2>",
	}
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	t.Run("builds message and authenticates with xoauth2", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		s := gmail.New(gmail.Config{}, gmail.WithSendFunc(rec.send))

		res, err := s.Send(context.Background(), testEmail(), auth)
		require.NoError(t, err)

		require.Equal(t, "smtp.gmail.com", rec.dialer.Host)
		require.Equal(t, 587, rec.dialer.Port)
		require.NotNil(t, rec.dialer.Auth)

		mech, resp, err := rec.dialer.Auth.Start(&smtp.ServerInfo{Name: "smtp.gmail.com", TLS: true})
		require.NoError(t, err)
		require.Equal(t, "XOAUTH2", mech)
		require.Equal(t, "user=speaker@gmail.com\x01auth=Bearer ya29.token\x01\x01", string(resp))

		require.Len(t, rec.msgs, 1)
		msg := rec.msgs[0]
		require.Equal(t, []string{`"Speaker Ling" <speaker@gmail.com>`}, msg.GetHeader("From"))
		require.Equal(t, []string{"owner@example.com"}, msg.GetHeader("To"))
		require.Equal(t, []string{"jane@nus.edu.sg"}, msg.GetHeader("Reply-To"))
		require.Equal(t, []string{"New Contact Inquiry from Jane Tan"}, msg.GetHeader("Subject"))
		require.Equal(t, []string{res.MessageID}, msg.GetHeader("Message-ID"))

		var raw bytes.Buffer
		_, err = msg.WriteTo(&raw)
		require.NoError(t, err)
		require.Contains(t, raw.String(), "multipart/alternative")
		require.Contains(t, raw.String(), "text/plain")
		require.Contains(t, raw.String(), "text/html")

		require.True(t, strings.HasSuffix(res.MessageID, "@gmail.com>"))
		require.Equal(t, []string{"owner@example.com"}, res.Accepted)
		require.Empty(t, res.Rejected)
		require.NotNil(t, res.Rejected)
		require.Equal(t, mailer.Envelope{From: "speaker@gmail.com", To: []string{"owner@example.com"}}, res.Envelope)
	})

	t.Run("custom relay", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		s := gmail.New(gmail.Config{Host: "localhost", Port: 2525}, gmail.WithSendFunc(rec.send))

		_, err := s.Send(context.Background(), testEmail(), auth)
		require.NoError(t, err)
		require.Equal(t, "localhost", rec.dialer.Host)
		require.Equal(t, 2525, rec.dialer.Port)
	})

	t.Run("defaults from to authenticated user", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		email := testEmail()
		email.From = ""
		email.ReplyTo = ""

		_, err := gmail.New(gmail.Config{}, gmail.WithSendFunc(rec.send)).Send(context.Background(), email, auth)
		require.NoError(t, err)
		require.Equal(t, []string{"speaker@gmail.com"}, rec.msgs[0].GetHeader("From"))
		require.Empty(t, rec.msgs[0].GetHeader("Reply-To"))
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("535 5.7.8 Username and Password not accepted")
		rec := &recorder{err: boom}

		_, err := gmail.New(gmail.Config{}, gmail.WithSendFunc(rec.send)).Send(context.Background(), testEmail(), auth)
		require.ErrorIs(t, err, boom)
	})

	t.Run("invalid recipient", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		email := testEmail()
		email.To = []string{"not an address"}

		_, err := gmail.New(gmail.Config{}, gmail.WithSendFunc(rec.send)).Send(context.Background(), email, auth)
		require.Error(t, err)
		require.Empty(t, rec.msgs)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := gmail.New(gmail.Config{}, gmail.WithSendFunc(rec.send)).Send(ctx, testEmail(), auth)
		require.ErrorIs(t, err, context.Canceled)
		require.Nil(t, rec.dialer)
	})
}
