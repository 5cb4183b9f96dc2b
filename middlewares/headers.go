package middlewares

import (
	"github.com/khorlingling/site/internal"
)

// SecurityHeadersConfig holds the header values. Empty values are skipped.
type SecurityHeadersConfig struct {
	ContentTypeOptions string
	FrameOptions       string
	ReferrerPolicy     string
	PermissionsPolicy  string
}

// DefaultSecurityHeaders are applied by SecurityHeaders.
var DefaultSecurityHeaders = SecurityHeadersConfig{
	ContentTypeOptions: "nosniff",
	FrameOptions:       "DENY",
	ReferrerPolicy:     "strict-origin-when-cross-origin",
	PermissionsPolicy:  "geolocation=(), microphone=(), camera=()",
}

// SecurityHeadersOption configures SecurityHeadersConfig.
type SecurityHeadersOption func(*SecurityHeadersConfig)

// WithReferrerPolicy overrides Referrer-Policy.
func WithReferrerPolicy(v string) SecurityHeadersOption {
	return func(cfg *SecurityHeadersConfig) {
		cfg.ReferrerPolicy = v
	}
}

// WithFrameOptions overrides X-Frame-Options.
func WithFrameOptions(v string) SecurityHeadersOption {
	return func(cfg *SecurityHeadersConfig) {
		cfg.FrameOptions = v
	}
}

// SecurityHeaders sets common response hardening headers before the
// handler runs.
func SecurityHeaders(opts ...SecurityHeadersOption) internal.Middleware {
	cfg := DefaultSecurityHeaders
	for _, opt := range opts {
		opt(&cfg)
	}

	pairs := [][2]string{
		{"X-Content-Type-Options", cfg.ContentTypeOptions},
		{"X-Frame-Options", cfg.FrameOptions},
		{"Referrer-Policy", cfg.ReferrerPolicy},
		{"Permissions-Policy", cfg.PermissionsPolicy},
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			for _, p := range pairs {
				if p[1] != "" {
					c.SetHeader(p[0], p[1])
				}
			}
			return next(c)
		}
	}
}
