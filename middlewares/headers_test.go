package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khorlingling/site/middlewares"
)

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, middlewares.SecurityHeaders()(okHandler)(ctx))
		require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		require.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
		require.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
		require.NotEmpty(t, rec.Header().Get("Permissions-Policy"))
	})

	t.Run("overrides and empty values", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		mw := middlewares.SecurityHeaders(
			middlewares.WithReferrerPolicy("no-referrer"),
			middlewares.WithFrameOptions(""),
		)
		require.NoError(t, mw(okHandler)(ctx))
		require.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
		require.Empty(t, rec.Header().Get("X-Frame-Options"))
	})
}
