package mailer

import "net/mail"

// Recipient formats a display name and address per RFC 5322, quoting the
// name when needed. An empty name yields the bare address.
func Recipient(name, address string) string {
	if name == "" {
		return address
	}
	return (&mail.Address{Name: name, Address: address}).String()
}

// Email is a fully composed message.
type Email struct {
	Subject string
	HTML    string
	Text    string
	From    string   // RFC 5322 address; transports fall back to Auth.User
	ReplyTo string   // RFC 5322 address
	To      []string // at least one
}

// Auth carries per-send transport credentials.
// AccessToken is an OAuth2 bearer token used for XOAUTH2.
type Auth struct {
	User        string
	AccessToken string
}

// Result describes a dispatched message. It is returned to API clients as-is.
type Result struct {
	MessageID string   `json:"messageId"`
	Accepted  []string `json:"accepted"`
	Rejected  []string `json:"rejected"`
	Envelope  Envelope `json:"envelope"`
	Response  string   `json:"response,omitempty"`
}

// Envelope is the SMTP envelope of a dispatched message.
type Envelope struct {
	From string   `json:"from"`
	To   []string `json:"to"`
}
