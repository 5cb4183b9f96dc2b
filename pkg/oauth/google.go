package oauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	googleOAuth "golang.org/x/oauth2/google"
)

// GmailScope is the scope Gmail requires for SMTP XOAUTH2.
const GmailScope = "https://mail.google.com/"

// GoogleRefresher trades refresh tokens for access tokens against Google's
// token endpoint. It holds no credentials and is safe for concurrent use.
type GoogleRefresher struct {
	httpClient *http.Client
	endpoint   oauth2.Endpoint
	scopes     []string
}

// NewGoogleRefresher creates a refresher for Google's OAuth2 endpoint.
func NewGoogleRefresher(opts ...Option) *GoogleRefresher {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := &GoogleRefresher{
		httpClient: o.httpClient,
		endpoint:   googleOAuth.Endpoint,
		scopes:     []string{GmailScope},
	}
	if o.endpoint != nil {
		r.endpoint = *o.endpoint
	}
	if len(o.scopes) > 0 {
		r.scopes = o.scopes
	}
	return r
}

// AccessToken exchanges refreshToken for a new access token.
// No token is cached: every call performs one refresh round-trip.
func (r *GoogleRefresher) AccessToken(ctx context.Context, clientID, clientSecret, refreshToken string) (string, error) {
	switch {
	case clientID == "":
		return "", ErrMissingClientID
	case clientSecret == "":
		return "", ErrMissingClientSecret
	case refreshToken == "":
		return "", ErrMissingRefreshToken
	}

	cfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     r.endpoint,
		Scopes:       r.scopes,
	}

	tok, err := cfg.TokenSource(r.contextWithHTTPClient(ctx), &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.ErrorCode == "invalid_grant" {
			return "", errors.Join(ErrRefreshFailed, ErrInvalidGrant, err)
		}
		return "", errors.Join(ErrRefreshFailed, fmt.Errorf("token endpoint: %w", err))
	}
	if tok.AccessToken == "" {
		return "", ErrEmptyAccessToken
	}
	return tok.AccessToken, nil
}

// contextWithHTTPClient injects the custom HTTP client into the context
// so that oauth2 library calls use it instead of http.DefaultClient.
func (r *GoogleRefresher) contextWithHTTPClient(ctx context.Context) context.Context {
	if r.httpClient != nil {
		return context.WithValue(ctx, oauth2.HTTPClient, r.httpClient)
	}
	return ctx
}
