package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantLevel string
		status    int
		wantLog   bool
	}{
		{name: "ok", path: "/api/v1/entities", status: http.StatusOK, wantLog: true, wantLevel: "level=INFO"},
		{name: "client error", path: "/api/v1/entities", status: http.StatusConflict, wantLog: true, wantLevel: "level=WARN"},
		{name: "server error", path: "/api/v1/entities", status: http.StatusInternalServerError, wantLog: true, wantLevel: "level=ERROR"},
		{name: "skipped", path: "/api/v1/health", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			})

			req := httptest.NewRequest(http.MethodPut, tt.path, nil)
			req.Header.Set("Authorization", "Bearer secret-token")
			w := httptest.NewRecorder()
			LoggingMiddleware(logger, "/api/v1/health")(next).ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			out := buf.String()
			if !tt.wantLog {
				assert.Empty(t, out)
				return
			}
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, "method=PUT")
			assert.Contains(t, out, "bytes_written=4")
			assert.NotContains(t, out, "secret-token")
		})
	}
}
