package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	t.Parallel()

	t.Run("sends the inquiry", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"data":{}}`))
		}))
		t.Cleanup(srv.Close)

		cmd := newRootCmd()
		cmd.SetArgs([]string{
			"--url", srv.URL,
			"--name", "Jane Tan",
			"--email", "jane@example.com",
			"--org", "Acme School",
			"--message", "Hello",
		})
		require.NoError(t, cmd.ExecuteContext(context.Background()))
	})

	t.Run("reports rejected inquiries", func(t *testing.T) {
		t.Parallel()

		cmd := newRootCmd()
		cmd.SetArgs([]string{"--url", "http://127.0.0.1:1", "--email", "not-an-email"})
		err := cmd.ExecuteContext(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "valid email address")
	})
}
