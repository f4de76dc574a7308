package storage

import (
	"context"

	"github.com/iudanet/mdkeeper/internal/models"
)

// EntityStorage хранит локальные документы и папки
type EntityStorage interface {
	// SaveEntity stores or replaces an entity by (id, type)
	SaveEntity(ctx context.Context, e *models.Entity) error

	// GetEntity returns ErrEntityNotFound if entity doesn't exist
	GetEntity(ctx context.Context, key models.EntityKey) (*models.Entity, error)

	// ListEntities returns entities of a type, tombstones only if includeDeleted
	ListEntities(ctx context.Context, typ models.EntityType, includeDeleted bool) ([]*models.Entity, error)

	// PurgeEntity physically removes an entity (tombstone confirmed by server)
	PurgeEntity(ctx context.Context, key models.EntityKey) error
}
