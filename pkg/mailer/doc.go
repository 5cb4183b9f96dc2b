// Package mailer composes templated emails and hands them to a transport.
//
// A [Renderer] reads templates from an fs.FS. A template named "contact"
// consists of two files:
//
//	contact.txt   YAML frontmatter (Subject) + text/template plain-text body
//	contact.html  html/template body, wrapped in a layout from layouts/
//
// User-supplied values are escaped in the HTML part by html/template.
//
// A [Mailer] resolves the subject (params > frontmatter > fallback), renders
// both parts and passes the [Email] with per-call [Auth] to a [Sender]:
//
//	m := mailer.New(gmail.New(cfg.SMTP), mailer.NewRenderer(emails.FS), mailer.Config{
//		DefaultLayout:   "base.html",
//		FallbackSubject: "New Contact Inquiry",
//	})
//	res, err := m.Send(ctx, mailer.SendParams{
//		To:       "owner@example.com",
//		Template: "contact",
//		Data:     data,
//		Auth:     mailer.Auth{User: "owner@example.com", AccessToken: token},
//	})
//
// The returned [Result] describes what the transport accepted.
package mailer
