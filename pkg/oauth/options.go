package oauth

import (
	"net/http"

	"golang.org/x/oauth2"
)

// Option configures a refresher.
type Option func(*options)

type options struct {
	httpClient *http.Client
	endpoint   *oauth2.Endpoint
	scopes     []string
}

// WithHTTPClient sets the HTTP client used to reach the token endpoint.
// Useful for httptest servers or custom transports.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithEndpoint overrides the provider endpoint.
func WithEndpoint(endpoint oauth2.Endpoint) Option {
	return func(o *options) {
		o.endpoint = &endpoint
	}
}

// WithScopes overrides the scopes attached to the OAuth2 config.
func WithScopes(scopes ...string) Option {
	return func(o *options) {
		o.scopes = scopes
	}
}
