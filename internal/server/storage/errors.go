package storage

import (
	"errors"
	"fmt"

	"github.com/iudanet/mdkeeper/internal/models"
)

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrInvalidToken indicates that token format is invalid
	ErrInvalidToken = errors.New("invalid token")

	// ErrEntityNotFound indicates that entity was not found
	ErrEntityNotFound = errors.New("entity not found")

	// ErrEntityGone клиент ссылается на версию сущности, которой на сервере нет
	ErrEntityGone = errors.New("entity gone")

	// ErrVersionConflict expected version не совпала с хранимой
	ErrVersionConflict = errors.New("version conflict")
)

// ConflictError несет текущую серверную версию при ErrVersionConflict
type ConflictError struct {
	Current         *models.Entity
	ExpectedVersion int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("version conflict: expected %d, stored %d", e.ExpectedVersion, e.Current.SyncVersion)
}

func (e *ConflictError) Unwrap() error {
	return ErrVersionConflict
}
