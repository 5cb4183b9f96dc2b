package middlewares_test

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khorlingling/site/internal"
	"github.com/khorlingling/site/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("recovers from panic and returns PanicError", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		ctx := newTestContext(httptest.NewRecorder(), req)

		handler := middlewares.Recover()(func(c internal.Context) error {
			panic("test panic")
		})

		err := handler(ctx)
		require.Error(t, err)
		require.True(t, middlewares.IsPanicError(err))

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Equal(t, "test panic", pe.Value)
		require.NotEmpty(t, pe.Stack)
		require.Equal(t, "panic: test panic", pe.Error())

		logs := ctx.entries()
		require.Len(t, logs, 1)
		require.Equal(t, slog.LevelError, logs[0].level)
		require.Equal(t, "/api/contact", logs[0].attr("path"))
	})

	t.Run("passes through when no panic", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Recover()(func(c internal.Context) error { return nil })

		require.NoError(t, handler(ctx))
		require.Empty(t, ctx.entries())
	})

	t.Run("propagates handler errors unchanged", func(t *testing.T) {
		t.Parallel()

		want := errors.New("handler failed")
		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Recover()(func(c internal.Context) error { return want })

		err := handler(ctx)
		require.ErrorIs(t, err, want)
		require.False(t, middlewares.IsPanicError(err))
	})

	t.Run("disable stack", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Recover(middlewares.WithRecoverDisablePrintStack())(func(c internal.Context) error {
			panic("test panic")
		})

		pe, ok := middlewares.AsPanicError(handler(ctx))
		require.True(t, ok)
		require.Nil(t, pe.Stack)
		require.Nil(t, ctx.entries()[0].attr("stack"))
	})

	t.Run("stack size limit", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Recover(middlewares.WithRecoverStackSize(64))(func(c internal.Context) error {
			panic("test panic")
		})

		pe, ok := middlewares.AsPanicError(handler(ctx))
		require.True(t, ok)
		require.LessOrEqual(t, len(pe.Stack), 64)
	})
}

func TestRecover_PanicTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
	}{
		{"string", "boom"},
		{"error", errors.New("boom")},
		{"int", 42},
		{"struct", struct{ Field string }{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
			handler := middlewares.Recover()(func(c internal.Context) error {
				panic(tt.value)
			})

			pe, ok := middlewares.AsPanicError(handler(ctx))
			require.True(t, ok)
			require.Equal(t, tt.value, pe.Value)
		})
	}
}

func TestAsPanicError_Wrapped(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("outer: %w", &middlewares.PanicError{Value: "x"})
	pe, ok := middlewares.AsPanicError(wrapped)
	require.True(t, ok)
	require.Equal(t, "x", pe.Value)

	_, ok = middlewares.AsPanicError(errors.New("plain"))
	require.False(t, ok)
}
