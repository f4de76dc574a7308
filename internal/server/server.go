// Package server собирает HTTP API: маршруты, middleware и жизненный цикл.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/mdkeeper/internal/config"
	"github.com/iudanet/mdkeeper/internal/server/handlers"
	"github.com/iudanet/mdkeeper/internal/server/middleware"
	"github.com/iudanet/mdkeeper/internal/server/storage"
)

const (
	tokenCleanupInterval = time.Hour
	defaultRatePerMinute = 600
)

// Storage все, что нужно серверу от хранилища
type Storage interface {
	storage.UserStorage
	storage.TokenStorage
	storage.EntityStorage
	handlers.Pinger
}

// Server HTTP сервер синхронизации документов
type Server struct {
	http    *http.Server
	limiter *middleware.PathLimiter
	tokens  storage.TokenStorage
	logger  *slog.Logger
}

// New создает сервер. Сеть не открывается до Run.
func New(cfg *config.ServerConfig, store Storage, logger *slog.Logger, version string) *Server {
	jwtConfig := handlers.JWTConfig{
		Secret:          []byte(cfg.JWTSecret),
		AccessTokenTTL:  cfg.AccessTokenTTL,
		RefreshTokenTTL: cfg.RefreshTokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, store, store, jwtConfig)
	entityHandler := handlers.NewEntityHandler(logger, store, cfg.MaxContentBytes)
	healthHandler := handlers.NewHealthHandler(logger, store, version)

	requireAuth := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("GET /api/v1/auth/salt/{username}", authHandler.GetSalt)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)
	mux.Handle("PUT /api/v1/entities/{type}/{id}", requireAuth(http.HandlerFunc(entityHandler.Push)))
	mux.Handle("GET /api/v1/entities", requireAuth(http.HandlerFunc(entityHandler.Pull)))

	limiter := middleware.NewPathLimiter(logger, []middleware.PathRateLimit{
		{Prefix: "/api/v1/auth/", Rate: cfg.AuthRateLimit, Window: time.Minute},
	}, defaultRatePerMinute, time.Minute)

	// порядок: recovery снаружи, чтобы ловить панику в любом слое
	var handler http.Handler = mux
	handler = limiter.Middleware(handler)
	handler = middleware.LoggingMiddleware(logger, "/api/v1/health")(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return &Server{
		http: &http.Server{
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		limiter: limiter,
		tokens:  store,
		logger:  logger,
	}
}

// Handler возвращает корневой handler со всеми middleware
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run слушает адрес до отмены ctx, затем завершает запросы за shutdownTimeout
func (s *Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	defer s.limiter.Stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("starting server", slog.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		ticker := time.NewTicker(tokenCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case now := <-ticker.C:
				s.cleanupTokens(ctx, now)
			}
		}
	})

	return g.Wait()
}

func (s *Server) cleanupTokens(ctx context.Context, now time.Time) {
	n, err := s.tokens.DeleteExpiredTokens(ctx, now)
	if err != nil {
		s.logger.Warn("failed to delete expired tokens", slog.Any("error", err))
		return
	}
	if n > 0 {
		s.logger.Info("expired refresh tokens removed", slog.Int("count", n))
	}
}
