// Package contact relays contact-form submissions by email.
//
// A submission passes, in order: a configuration check, a presence check on
// all four fields, an email format check, an OAuth2 access-token refresh and
// finally composition and dispatch through a mailer. Nothing is stored.
//
//	svc := contact.NewService(cfg.Contact, oauth.NewGoogleRefresher(), m)
//	res, err := svc.Submit(ctx, sub)
//	switch {
//	case errors.Is(err, contact.ErrNotConfigured): // 503
//	case errors.Is(err, contact.ErrMissingFields): // 400
//	case errors.Is(err, contact.ErrInvalidEmail):  // 400
//	case err != nil:                               // 500
//	}
package contact
