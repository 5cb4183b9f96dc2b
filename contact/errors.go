package contact

import "errors"

// Client-facing messages.
const (
	MsgNotConfigured = "Email service is not configured. Please contact the administrator."
	MsgMissingFields = "All fields are required"
	MsgInvalidEmail  = "Invalid email address format."
	MsgSendFailed    = "Failed to send message. Please try again later."
)

var (
	ErrNotConfigured = errors.New("contact: email service not configured")
	ErrMissingFields = errors.New("contact: missing required fields")
	ErrInvalidEmail  = errors.New("contact: invalid email address")
	ErrMalformedBody = errors.New("contact: malformed request body")
	ErrTokenFailed   = errors.New("contact: access token refresh failed")
	ErrComposeFailed = errors.New("contact: compose failed")
	ErrSendFailed    = errors.New("contact: send failed")
)
