package api_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/internal/api"
	"github.com/zafesys/suite/pkg/logger"
)

// Not parallel: the logger is swapped globally.
func TestMiddleware_LogCredentials(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		secret   string
		wantBody bool
	}{
		{
			name:   "technician pin",
			method: http.MethodPut,
			path:   "/api/v1/technicians/5/pin",
			body:   `{"pin":"4821"}`,
			secret: "4821",
		},
		{
			name:   "login",
			method: http.MethodPost,
			path:   "/api/v1/auth/login",
			body:   `{"email":"a@zafesys.co","password":"s3cret-pass"}`,
			secret: "s3cret-pass",
		},
		{
			name:   "user update",
			method: http.MethodPut,
			path:   "/api/v1/users/7",
			body:   `{"password":"n3w-pass"}`,
			secret: "n3w-pass",
		},
		{
			name:     "regular body is logged",
			method:   http.MethodPost,
			path:     "/api/v1/leads",
			body:     `{"name":"Ana"}`,
			secret:   "Ana",
			wantBody: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			_, err := logger.NewWithWriter(&buf, "info")
			require.NoError(t, err)

			var got string

			h := api.NewMiddleware(nil).Log(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var b bytes.Buffer
				_, _ = b.ReadFrom(r.Body)
				got = b.String()
			}))

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			h.ServeHTTP(httptest.NewRecorder(), req)

			require.Equal(t, tt.body, got, "handler must still receive the body")
			require.Contains(t, buf.String(), "incoming request")

			logged := strings.Contains(buf.String(), tt.secret)
			require.Equal(t, tt.wantBody, logged, buf.String())
		})
	}
}
