package oauth

import "errors"

var (
	// ErrMissingClientID is returned when the OAuth client ID is empty.
	ErrMissingClientID = errors.New("oauth: missing client ID")

	// ErrMissingClientSecret is returned when the OAuth client secret is empty.
	ErrMissingClientSecret = errors.New("oauth: missing client secret")

	// ErrMissingRefreshToken is returned when the refresh token is empty.
	ErrMissingRefreshToken = errors.New("oauth: missing refresh token")

	// ErrRefreshFailed is returned when the token endpoint rejects the refresh
	// or cannot be reached.
	ErrRefreshFailed = errors.New("oauth: failed to refresh access token")

	// ErrInvalidGrant is returned when the provider reports the refresh token
	// as revoked or expired.
	ErrInvalidGrant = errors.New("oauth: refresh token revoked or expired")

	// ErrEmptyAccessToken is returned when the provider answers without an
	// access token.
	ErrEmptyAccessToken = errors.New("oauth: empty access token in response")
)
