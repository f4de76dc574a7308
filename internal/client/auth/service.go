// Package auth управляет сессией клиента: регистрация, вход, выход и
// обновление токенов. Service реализует sync.Authenticator и
// api.TokenSource.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/mdkeeper/internal/client/storage"
	"github.com/iudanet/mdkeeper/internal/crypto"
	apperrors "github.com/iudanet/mdkeeper/internal/errors"
	"github.com/iudanet/mdkeeper/internal/validation"
	pkgapi "github.com/iudanet/mdkeeper/pkg/api"
)

//go:generate moq -out api_mock.go . API
//go:generate moq -out manager_mock.go . Manager

// API вызовы сервера, нужные сервису авторизации
type API interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error)
	GetSalt(ctx context.Context, username string) (*pkgapi.SaltResponse, error)
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error)
	Logout(ctx context.Context, accessToken string) error
}

// Manager операции с сессией, доступные из CLI
type Manager interface {
	Register(ctx context.Context, username, password string) (*storage.AuthData, error)
	Login(ctx context.Context, username, password string) (*storage.AuthData, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*storage.AuthData, error)
}

var _ Manager = (*Service)(nil)

// ErrNotLoggedIn нет сохраненной сессии
var ErrNotLoggedIn = errors.New("not logged in")

// refreshSkew обновляем access token заранее, до фактического истечения
const refreshSkew = 30 * time.Second

// Service предоставляет функции авторизации
type Service struct {
	api     API
	storage storage.AuthStorage
	logger  *slog.Logger
	now     func() time.Time
	mu      sync.Mutex // сериализует refresh
}

// NewService создает новый сервис авторизации
func NewService(api API, authStorage storage.AuthStorage, logger *slog.Logger) *Service {
	return &Service{
		api:     api,
		storage: authStorage,
		logger:  logger,
		now:     time.Now,
	}
}

// Register регистрирует пользователя и сразу выполняет вход
func (s *Service) Register(ctx context.Context, username, password string) (*storage.AuthData, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}

	salt, err := crypto.GenerateSaltBase64()
	if err != nil {
		return nil, err
	}

	authKeyHash, err := crypto.DeriveAuthKeyHash(password, username, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive auth key: %w", err)
	}

	if _, err := s.api.Register(ctx, pkgapi.RegisterRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
		PublicSalt:  salt,
	}); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("user registered", slog.String("username", username))

	return s.login(ctx, username, authKeyHash, salt)
}

// Login выполняет аутентификацию и сохраняет токены локально
func (s *Service) Login(ctx context.Context, username, password string) (*storage.AuthData, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("%w: cannot be empty", validation.ErrInvalidPassword)
	}

	saltResp, err := s.api.GetSalt(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get salt: %w", err)
	}

	authKeyHash, err := crypto.DeriveAuthKeyHash(password, username, saltResp.PublicSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive auth key: %w", err)
	}

	return s.login(ctx, username, authKeyHash, saltResp.PublicSalt)
}

func (s *Service) login(ctx context.Context, username, authKeyHash, salt string) (*storage.AuthData, error) {
	resp, err := s.api.Login(ctx, pkgapi.LoginRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	data := &storage.AuthData{
		Username:     username,
		UserID:       resp.UserID,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		PublicSalt:   salt,
		ExpiresAt:    s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
	}

	if err := s.storage.SaveAuth(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	s.logger.Info("logged in", slog.String("username", username))
	return data, nil
}

// Logout удаляет локальную сессию. Сервер уведомляется по возможности.
func (s *Service) Logout(ctx context.Context) error {
	data, err := s.storage.GetAuth(ctx)
	if err != nil {
		s.logger.Debug("no auth data found during logout", slog.Any("error", err))
	} else if logoutErr := s.api.Logout(ctx, data.AccessToken); logoutErr != nil {
		s.logger.Warn("failed to logout on server", slog.Any("error", logoutErr))
	}

	if err := s.storage.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}
	return nil
}

// Current возвращает сохраненную сессию
func (s *Service) Current(ctx context.Context) (*storage.AuthData, error) {
	data, err := s.storage.GetAuth(ctx)
	if errors.Is(err, storage.ErrAuthNotFound) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// IsAuthenticated: есть сессия с refresh токеном. Истекший access token
// не считается выходом, он обновится при следующем запросе.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	data, err := s.storage.GetAuth(ctx)
	return err == nil && data.RefreshToken != ""
}

// AccessToken возвращает действующий access token, при необходимости обновляя его
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.Current(ctx)
	if err != nil {
		return "", err
	}

	if !data.Expired(s.now().Add(refreshSkew)) {
		return data.AccessToken, nil
	}

	data, err = s.refresh(ctx, data)
	if err != nil {
		return "", err
	}
	return data.AccessToken, nil
}

// RefreshToken принудительно обновляет пару токенов
func (s *Service) RefreshToken(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.Current(ctx)
	if err != nil {
		return err
	}
	_, err = s.refresh(ctx, data)
	return err
}

func (s *Service) refresh(ctx context.Context, data *storage.AuthData) (*storage.AuthData, error) {
	resp, err := s.api.Refresh(ctx, data.RefreshToken)
	if err != nil {
		s.logger.Warn("token refresh failed", slog.Any("error", err))
		return nil, fmt.Errorf("failed to refresh token: %v: %w", err, apperrors.ErrUnauthorized)
	}

	updated := *data
	updated.AccessToken = resp.AccessToken
	if resp.RefreshToken != "" {
		updated.RefreshToken = resp.RefreshToken
	}
	updated.ExpiresAt = s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix()

	if err := s.storage.SaveAuth(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to save refreshed tokens: %w", err)
	}

	s.logger.Debug("access token refreshed", slog.String("username", data.Username))
	return &updated, nil
}
