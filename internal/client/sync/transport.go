package sync

import (
	"context"
	"errors"

	"github.com/iudanet/mdkeeper/internal/client/storage"
	"github.com/iudanet/mdkeeper/internal/models"
)

//go:generate moq -out transport_mock.go . Transport Authenticator

var (
	// ErrNotAuthenticated синхронизация не выполняется без входа на сервер
	ErrNotAuthenticated = errors.New("not authenticated, sync skipped")
	// ErrConflictNotFound нет неразрешенного конфликта с таким id
	ErrConflictNotFound = errors.New("conflict not found")
	// ErrNotQueued нет элемента очереди с таким id
	ErrNotQueued = errors.New("item not queued")
)

// Transport отправляет и получает сущности с сервера.
//
// Push возвращает *apperrors.VersionConflictError, если сервер хранит
// другую версию, ошибку с apperrors.ErrTransient для сетевых сбоев и 5xx,
// и фатальные ошибки (apperrors.IsFatal) для отозванной авторизации, квоты
// и удаленных навсегда сущностей.
type Transport interface {
	Push(ctx context.Context, e *models.Entity, expectedVersion int64) (*models.Entity, error)
	Pull(ctx context.Context, since int64) (*PullResult, error)
}

// PullResult сущности, измененные после курсора, и новый курсор
type PullResult struct {
	Entities []*models.Entity
	Revision int64
}

// Authenticator определяет, выполняется ли синхронизация вообще
type Authenticator interface {
	IsAuthenticated(ctx context.Context) bool
}

// Store локальное хранилище, которым владеет координатор
type Store interface {
	storage.EntityStorage
	storage.QueueStorage
	storage.ServerCacheStorage
	storage.ConflictStorage
	storage.MetadataStorage
}
