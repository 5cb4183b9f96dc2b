package gmail

import (
	"errors"
	"fmt"
	"net/smtp"
)

var (
	// ErrUnencryptedConnection is returned when XOAUTH2 would send the bearer
	// token over a connection without TLS.
	ErrUnencryptedConnection = errors.New("gmail: refusing XOAUTH2 over unencrypted connection")

	// ErrWrongHost is returned when the server name differs from the dialed host.
	ErrWrongHost = errors.New("gmail: wrong host name")

	// ErrAuthRejected is returned when the server rejects the bearer token.
	ErrAuthRejected = errors.New("gmail: XOAUTH2 authentication rejected")
)

// xoauth2Auth implements smtp.Auth for Google's SASL XOAUTH2 mechanism.
type xoauth2Auth struct {
	user  string
	token string
	host  string
}

// XOAUTH2 returns an smtp.Auth that authenticates user with an OAuth2
// bearer token. Like smtp.PlainAuth it only sends credentials over TLS or
// to localhost.
func XOAUTH2(user, accessToken, host string) smtp.Auth {
	return &xoauth2Auth{user: user, token: accessToken, host: host}
}

func (a *xoauth2Auth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	if !server.TLS && !isLocalhost(server.Name) {
		return "", nil, ErrUnencryptedConnection
	}
	if server.Name != a.host {
		return "", nil, ErrWrongHost
	}
	resp := "user=" + a.user + "\x01auth=Bearer " + a.token + "\x01\x01"
	return "XOAUTH2", []byte(resp), nil
}

// Next handles the server challenge. On failure Gmail sends a JSON error
// document as a continuation; net/smtp then cancels the exchange.
func (a *xoauth2Auth) Next(fromServer []byte, more bool) ([]byte, error) {
	if more {
		return nil, fmt.Errorf("%w: %s", ErrAuthRejected, fromServer)
	}
	return nil, nil
}

func isLocalhost(name string) bool {
	return name == "localhost" || name == "127.0.0.1" || name == "::1"
}
