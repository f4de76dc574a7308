package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/mdkeeper/internal/models"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func createTestUser(t *testing.T, s *Storage, username string) *models.User {
	t.Helper()

	user := &models.User{
		ID:          uuid.New().String(),
		Username:    username,
		AuthKeyHash: "$2a$10$hash",
		PublicSalt:  "c2FsdA==",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

func TestNew_MigrationsIdempotent(t *testing.T) {
	path := t.TempDir() + "/server.db"
	ctx := context.Background()

	s, err := New(ctx, path)
	require.NoError(t, err)
	createTestUser(t, s, "alice")
	require.NoError(t, s.Close())

	// повторное открытие не должно заново применять миграции
	s, err = New(ctx, path)
	require.NoError(t, err)
	defer func() {
		_ = s.Close()
	}()

	require.NoError(t, s.Ping(ctx))
	_, err = s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
}
