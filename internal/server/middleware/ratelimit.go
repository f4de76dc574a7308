package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/mdkeeper/internal/server/handlers"
)

// RateLimiter ограничивает число запросов на ключ (IP) в окне window
type RateLimiter struct {
	buckets  map[string]*bucket
	cleanupC chan struct{}
	stopOnce sync.Once
	rate     int
	window   time.Duration
	mu       sync.Mutex
}

// bucket представляет bucket для конкретного IP/ключа
type bucket struct {
	lastRefill time.Time
	tokens     int
}

// NewRateLimiter создает limiter: rate запросов за window на ключ
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		window:   window,
		cleanupC: make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

// cleanup периодически удаляет неактивные buckets
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.dropIdle(time.Now())
		case <-rl.cleanupC:
			return
		}
	}
}

func (rl *RateLimiter) dropIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, b := range rl.buckets {
		if now.Sub(b.lastRefill) > rl.window*2 {
			delete(rl.buckets, key)
		}
	}
}

// Stop останавливает cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.cleanupC) })
}

// Allow проверяет, разрешен ли запрос для данного ключа
func (rl *RateLimiter) Allow(key string) bool {
	return rl.allowAt(key, time.Now())
}

func (rl *RateLimiter) allowAt(key string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok || now.Sub(b.lastRefill) >= rl.window {
		b = &bucket{tokens: rl.rate, lastRefill: now}
		rl.buckets[key] = b
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}

// PathRateLimit лимит для путей с префиксом Prefix
type PathRateLimit struct {
	Prefix string
	Rate   int
	Window time.Duration
}

// PathLimiter выбирает limiter по самому длинному совпавшему префиксу
type PathLimiter struct {
	logger   *slog.Logger
	fallback *RateLimiter
	limits   []pathLimiter
}

type pathLimiter struct {
	limiter *RateLimiter
	prefix  string
}

// NewPathLimiter создает limiter с отдельными лимитами для префиксов путей
func NewPathLimiter(logger *slog.Logger, limits []PathRateLimit, defaultRate int, defaultWindow time.Duration) *PathLimiter {
	pl := &PathLimiter{
		logger:   logger,
		fallback: NewRateLimiter(defaultRate, defaultWindow),
	}
	for _, l := range limits {
		pl.limits = append(pl.limits, pathLimiter{prefix: l.Prefix, limiter: NewRateLimiter(l.Rate, l.Window)})
	}
	return pl
}

func (pl *PathLimiter) limiterFor(path string) *RateLimiter {
	best, bestLen := pl.fallback, -1
	for _, l := range pl.limits {
		if strings.HasPrefix(path, l.prefix) && len(l.prefix) > bestLen {
			best, bestLen = l.limiter, len(l.prefix)
		}
	}
	return best
}

// Middleware отвечает 429 при превышении лимита
func (pl *PathLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := pl.limiterFor(r.URL.Path)
		key := clientIP(r)
		if !limiter.Allow(key) {
			pl.logger.WarnContext(r.Context(), "rate limit exceeded",
				slog.String("ip", key),
				slog.String("path", r.URL.Path))

			w.Header().Set("Retry-After", strconv.Itoa(int(limiter.window.Seconds())))
			handlers.WriteError(pl.logger, w, http.StatusTooManyRequests, "rate limit exceeded, please try again later", "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Stop останавливает все limiters
func (pl *PathLimiter) Stop() {
	pl.fallback.Stop()
	for _, l := range pl.limits {
		l.limiter.Stop()
	}
}

// clientIP извлекает IP клиента. X-Forwarded-For учитывается для работы за прокси.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
