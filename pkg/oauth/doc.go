// Package oauth exchanges a long-lived Google refresh token for a short-lived
// access token.
//
// The site authenticates to Gmail's SMTP relay with XOAUTH2, so every contact
// submission needs a fresh bearer token:
//
//	refresher := oauth.NewGoogleRefresher()
//	token, err := refresher.AccessToken(ctx, clientID, clientSecret, refreshToken)
//	if errors.Is(err, oauth.ErrInvalidGrant) {
//		// refresh token revoked or expired; re-consent is required
//	}
//
// Tests point the refresher at an httptest server with [WithEndpoint] and
// [WithHTTPClient]. All errors carry the "oauth:" prefix.
package oauth
