package storage

import (
	"context"

	"github.com/iudanet/mdkeeper/internal/models"
)

// QueueStorage persists the sync queue. Items are keyed by (id, type).
type QueueStorage interface {
	PutQueueItem(ctx context.Context, item *models.SyncQueueItem) error
	DeleteQueueItem(ctx context.Context, key models.EntityKey) error
	// LoadQueue returns items ordered by Seq
	LoadQueue(ctx context.Context) ([]*models.SyncQueueItem, error)
	ClearQueue(ctx context.Context) error
}

// ServerCacheStorage persists the last-known server state
type ServerCacheStorage interface {
	PutCached(ctx context.Context, e *models.Entity) error
	DeleteCached(ctx context.Context, key models.EntityKey) error
	LoadCache(ctx context.Context) ([]*models.Entity, error)
	ClearCache(ctx context.Context) error
}

// ConflictStorage persists unresolved conflicts
type ConflictStorage interface {
	PutConflict(ctx context.Context, c *models.SyncConflict) error
	DeleteConflict(ctx context.Context, key models.EntityKey) error
	LoadConflicts(ctx context.Context) ([]*models.SyncConflict, error)
	ClearConflicts(ctx context.Context) error
}
