package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/mdkeeper/internal/models"
	"github.com/iudanet/mdkeeper/internal/server/storage"
)

// SaveRefreshToken stores a new refresh token
func (s *Storage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO refresh_tokens (token, user_id, expires_at, created_at) VALUES (?, ?, ?, ?)`,
		token.Token, token.UserID, token.ExpiresAt.Unix(), token.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken retrieves refresh token by token value
func (s *Storage) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	var (
		rt                   models.RefreshToken
		expiresAt, createdAt int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT token, user_id, expires_at, created_at FROM refresh_tokens WHERE token = ?`, token,
	).Scan(&rt.Token, &rt.UserID, &expiresAt, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	rt.ExpiresAt = time.Unix(expiresAt, 0)
	rt.CreatedAt = time.Unix(createdAt, 0)
	return &rt, nil
}

// DeleteRefreshToken deletes refresh token by token value
func (s *Storage) DeleteRefreshToken(ctx context.Context, token string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = ?`, token)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return affected(result, storage.ErrTokenNotFound)
}

// DeleteUserTokens deletes all refresh tokens for a user
func (s *Storage) DeleteUserTokens(ctx context.Context, userID string) (int, error) {
	return s.deleteTokens(ctx, `DELETE FROM refresh_tokens WHERE user_id = ?`, userID)
}

// DeleteExpiredTokens removes tokens expired at the given moment
func (s *Storage) DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error) {
	return s.deleteTokens(ctx, `DELETE FROM refresh_tokens WHERE expires_at <= ?`, now.Unix())
}

func (s *Storage) deleteTokens(ctx context.Context, query string, arg any) (int, error) {
	result, err := s.db.ExecContext(ctx, query, arg)
	if err != nil {
		return 0, fmt.Errorf("failed to delete refresh tokens: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(rows), nil
}
