package storage

import (
	"context"
	"time"

	"github.com/iudanet/mdkeeper/internal/models"
)

// TokenStorage хранит refresh токены. Токен одноразовый: refresh удаляет
// старый и сохраняет новый, logout удаляет все токены пользователя.
type TokenStorage interface {
	// SaveRefreshToken replaces a token with the same value.
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error

	// GetRefreshToken и DeleteRefreshToken возвращают ErrTokenNotFound
	GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, token string) error

	// DeleteUserTokens revokes every token of the user and reports how many.
	DeleteUserTokens(ctx context.Context, userID string) (int, error)

	// DeleteExpiredTokens drops tokens with expires_at <= now.
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error)
}
