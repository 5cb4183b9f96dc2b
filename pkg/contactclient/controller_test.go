package contactclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khorlingling/site/pkg/contactclient"
)

func validForm() contactclient.Form {
	return contactclient.Form{
		Name:         "Jane Tan",
		Email:        "jane@example.com",
		Organization: "Acme School",
		Message:      "Hello",
	}
}

func respond(code int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}
}

func TestController_Submit(t *testing.T) {
	t.Parallel()

	t.Run("success clears the form and posts json", func(t *testing.T) {
		t.Parallel()

		var got contactclient.Form
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			respond(http.StatusOK, `{"success":true,"data":{"messageId":"<x>"}}`)(w, r)
		}))
		t.Cleanup(srv.Close)

		c := contactclient.New(srv.URL)
		t.Cleanup(c.Close)

		form := validForm()
		snap, err := c.Submit(context.Background(), &form)
		require.NoError(t, err)

		assert.Equal(t, contactclient.StateSuccess, snap.State)
		assert.Equal(t, contactclient.MsgSuccess, snap.Message)
		assert.Equal(t, validForm(), got)
		assert.Equal(t, contactclient.Form{}, form)
	})

	tests := []struct {
		name    string
		handler http.HandlerFunc
		message string
	}{
		{"server error message", respond(http.StatusBadRequest, `{"error":"All fields are required"}`), "All fields are required"},
		{"error without message", respond(http.StatusInternalServerError, `{}`), contactclient.MsgFallback},
		{"empty error message", respond(http.StatusInternalServerError, `{"error":""}`), contactclient.MsgFallback},
		{"non-string error", respond(http.StatusInternalServerError, `{"error":42}`), contactclient.MsgFallback},
		{"html error page", respond(http.StatusBadGateway, `<html>bad gateway</html>`), contactclient.MsgNetwork},
		{"malformed success body", respond(http.StatusOK, `not json`), contactclient.MsgNetwork},
		{"null error body", respond(http.StatusInternalServerError, `null`), contactclient.MsgNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			t.Cleanup(srv.Close)

			c := contactclient.New(srv.URL)
			form := validForm()
			snap, err := c.Submit(context.Background(), &form)
			require.NoError(t, err)

			assert.Equal(t, contactclient.StateError, snap.State)
			assert.Equal(t, tt.message, snap.Message)
			assert.Equal(t, validForm(), form, "form is kept on failure")
		})
	}

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(respond(http.StatusOK, `{}`))
		srv.Close()

		c := contactclient.New(srv.URL)
		form := validForm()
		snap, err := c.Submit(context.Background(), &form)
		require.NoError(t, err)

		assert.Equal(t, contactclient.StateError, snap.State)
		assert.Equal(t, contactclient.MsgNetwork, snap.Message)
	})

	t.Run("invalid email skips the request", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		t.Cleanup(srv.Close)

		c := contactclient.New(srv.URL)
		for _, email := range []string{"", "jane", "jane@example", "jane doe@example.com", "@example.com"} {
			form := validForm()
			form.Email = email
			snap, err := c.Submit(context.Background(), &form)
			require.NoError(t, err)
			assert.Equal(t, contactclient.StateError, snap.State, email)
			assert.Equal(t, contactclient.MsgInvalidEmail, snap.Message, email)
		}
		assert.Zero(t, calls.Load())
	})
}

func TestController_Busy(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		respond(http.StatusOK, `{"success":true}`)(w, r)
	}))
	t.Cleanup(srv.Close)

	c := contactclient.New(srv.URL)
	t.Cleanup(c.Close)

	var wg sync.WaitGroup
	wg.Go(func() {
		form := validForm()
		_, err := c.Submit(context.Background(), &form)
		assert.NoError(t, err)
	})

	<-entered
	assert.Equal(t, contactclient.StateLoading, c.State().State)

	form := validForm()
	_, err := c.Submit(context.Background(), &form)
	require.ErrorIs(t, err, contactclient.ErrBusy)

	close(release)
	wg.Wait()
	assert.Equal(t, contactclient.StateSuccess, c.State().State)
}

func TestController_Dismiss(t *testing.T) {
	t.Parallel()

	t.Run("success returns to idle", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(respond(http.StatusOK, `{"success":true}`))
		t.Cleanup(srv.Close)

		var mu sync.Mutex
		var states []contactclient.State
		c := contactclient.New(srv.URL,
			contactclient.WithDismissDelay(20*time.Millisecond),
			contactclient.WithOnChange(func(s contactclient.Snapshot) {
				mu.Lock()
				states = append(states, s.State)
				mu.Unlock()
			}),
		)
		t.Cleanup(c.Close)

		form := validForm()
		_, err := c.Submit(context.Background(), &form)
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			return c.State() == contactclient.Snapshot{State: contactclient.StateIdle}
		}, time.Second, 5*time.Millisecond)

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, []contactclient.State{
			contactclient.StateLoading,
			contactclient.StateSuccess,
			contactclient.StateIdle,
		}, states)
	})

	t.Run("close cancels the pending dismiss", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(respond(http.StatusOK, `{"success":true}`))
		t.Cleanup(srv.Close)

		c := contactclient.New(srv.URL, contactclient.WithDismissDelay(20*time.Millisecond))
		form := validForm()
		_, err := c.Submit(context.Background(), &form)
		require.NoError(t, err)

		c.Close()
		time.Sleep(60 * time.Millisecond)
		assert.Equal(t, contactclient.StateSuccess, c.State().State)

		_, err = c.Submit(context.Background(), &form)
		require.ErrorIs(t, err, contactclient.ErrClosed)
	})

	t.Run("new submission cancels the pending dismiss", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(respond(http.StatusOK, `{"success":true}`))
		t.Cleanup(srv.Close)

		c := contactclient.New(srv.URL, contactclient.WithDismissDelay(30*time.Millisecond))
		t.Cleanup(c.Close)

		form := validForm()
		_, err := c.Submit(context.Background(), &form)
		require.NoError(t, err)

		bad := validForm()
		bad.Email = "nope"
		_, err = c.Submit(context.Background(), &bad)
		require.NoError(t, err)

		time.Sleep(80 * time.Millisecond)
		assert.Equal(t, contactclient.Snapshot{
			State:   contactclient.StateError,
			Message: contactclient.MsgInvalidEmail,
		}, c.State())
	})
}
