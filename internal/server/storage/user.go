package storage

import (
	"context"
	"time"

	"github.com/iudanet/mdkeeper/internal/models"
)

// UserStorage хранит учетные записи. AuthKeyHash в users уже bcrypt,
// сырой хеш клиента сюда не попадает.
type UserStorage interface {
	// CreateUser returns ErrUserAlreadyExists for a taken username.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername и GetUserByID возвращают ErrUserNotFound
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// UpdateLastLogin returns ErrUserNotFound for an unknown id.
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}
