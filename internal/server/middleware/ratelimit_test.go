package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	now := time.Now()
	assert.True(t, rl.allowAt("a", now))
	assert.True(t, rl.allowAt("a", now))
	assert.False(t, rl.allowAt("a", now), "third request in window")

	// ключи независимы
	assert.True(t, rl.allowAt("b", now))

	// новое окно пополняет bucket
	assert.True(t, rl.allowAt("a", now.Add(time.Minute)))
}

func TestRateLimiter_DropIdle(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	now := time.Now()
	rl.allowAt("old", now.Add(-5*time.Minute))
	rl.allowAt("fresh", now)

	rl.dropIdle(now)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.buckets, "old")
	assert.Contains(t, rl.buckets, "fresh")
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}

func TestPathLimiter_Middleware(t *testing.T) {
	pl := NewPathLimiter(setupTestLogger(), []PathRateLimit{
		{Prefix: "/api/v1/auth/", Rate: 1, Window: time.Minute},
		{Prefix: "/api/v1/auth/salt/", Rate: 3, Window: time.Minute},
	}, 2, time.Minute)
	defer pl.Stop()

	handler := pl.Middleware(http.HandlerFunc(okHandler))
	do := func(path, ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = ip + ":5555"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do("/api/v1/auth/login", "10.0.0.1").Code)
	w := do("/api/v1/auth/login", "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Equal(t, "Too Many Requests", decodeError(t, w).Error)

	// другой IP - свой bucket
	assert.Equal(t, http.StatusOK, do("/api/v1/auth/login", "10.0.0.2").Code)

	// более длинный префикс выигрывает
	for range 3 {
		assert.Equal(t, http.StatusOK, do("/api/v1/auth/salt/alice", "10.0.0.1").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, do("/api/v1/auth/salt/alice", "10.0.0.1").Code)

	// остальные пути - лимит по умолчанию
	assert.Equal(t, http.StatusOK, do("/api/v1/entities", "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, do("/api/v1/entities", "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, do("/api/v1/entities", "10.0.0.1").Code)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		headers map[string]string
		name    string
		remote  string
		want    string
	}{
		{name: "remote addr", remote: "192.0.2.1:1234", want: "192.0.2.1"},
		{name: "forwarded for", remote: "10.0.0.1:1", headers: map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1"}, want: "203.0.113.5"},
		{name: "real ip", remote: "10.0.0.1:1", headers: map[string]string{"X-Real-IP": "198.51.100.7"}, want: "198.51.100.7"},
		{name: "no port", remote: "192.0.2.9", want: "192.0.2.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}
