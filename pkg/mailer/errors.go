package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("mailer: email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("mailer: email must have a subject")

	// ErrNoContent indicates both bodies are empty.
	ErrNoContent = errors.New("mailer: email must have text or HTML content")

	// ErrMissingAuth indicates incomplete transport credentials.
	ErrMissingAuth = errors.New("mailer: missing user or access token")

	// ErrTemplateNotFound indicates the template file was not found.
	ErrTemplateNotFound = errors.New("mailer: template not found")

	// ErrLayoutNotFound indicates the layout file was not found.
	ErrLayoutNotFound = errors.New("mailer: layout not found")

	// ErrRenderFailed indicates template rendering failed.
	ErrRenderFailed = errors.New("mailer: failed to render template")

	// ErrSendFailed indicates the transport rejected or failed the send.
	ErrSendFailed = errors.New("mailer: failed to send email")
)
