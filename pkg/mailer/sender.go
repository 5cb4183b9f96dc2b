package mailer

import "context"

// Sender delivers composed emails.
type Sender interface {
	// Send delivers email authenticated with auth and describes the outcome.
	Send(ctx context.Context, email *Email, auth Auth) (*Result, error)
}
