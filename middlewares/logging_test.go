package middlewares_test

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khorlingling/site/internal"
	"github.com/khorlingling/site/middlewares"
)

func TestLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler internal.HandlerFunc
		status  int
		level   slog.Level
		wantErr bool
	}{
		{
			name:    "success",
			handler: func(c internal.Context) error { return c.JSON(http.StatusOK, map[string]bool{"success": true}) },
			status:  http.StatusOK,
			level:   slog.LevelInfo,
		},
		{
			name:    "client error written",
			handler: func(c internal.Context) error { return c.JSON(http.StatusBadRequest, map[string]string{"error": "x"}) },
			status:  http.StatusBadRequest,
			level:   slog.LevelWarn,
		},
		{
			name:    "returned http error",
			handler: func(c internal.Context) error { return internal.ErrServiceUnavailable("down") },
			status:  http.StatusServiceUnavailable,
			level:   slog.LevelError,
			wantErr: true,
		},
		{
			name:    "unexpected error",
			handler: func(c internal.Context) error { return errors.New("boom") },
			status:  http.StatusInternalServerError,
			level:   slog.LevelError,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/contact", nil))
			err := middlewares.Logging()(tt.handler)(ctx)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			logs := ctx.entries()
			require.Len(t, logs, 1)
			require.Equal(t, tt.level, logs[0].level)
			require.Equal(t, "request", logs[0].msg)
			require.EqualValues(t, tt.status, logs[0].attr("status"))
			require.Equal(t, http.MethodPost, logs[0].attr("method"))
			require.Equal(t, "/api/contact", logs[0].attr("path"))
		})
	}
}
