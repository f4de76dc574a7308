package storage

import (
	"context"

	"github.com/iudanet/mdkeeper/internal/models"
)

// EntityStorage defines interface for versioned documents and folders
type EntityStorage interface {
	// PushEntity stores e if the stored version equals expectedVersion
	// (0 for a new entity). The stored copy gets expectedVersion+1.
	// Returns *ConflictError on mismatch and ErrEntityGone when
	// expectedVersion > 0 but the entity was never stored.
	PushEntity(ctx context.Context, userID string, e *models.Entity, expectedVersion int64) (*models.Entity, error)

	// GetEntity retrieves an entity including tombstones
	// Returns ErrEntityNotFound if entity doesn't exist
	GetEntity(ctx context.Context, userID string, key models.EntityKey) (*models.Entity, error)

	// PullSince returns entities (tombstones included) changed after revision
	// and the user's latest revision
	PullSince(ctx context.Context, userID string, revision int64) ([]*models.Entity, int64, error)
}
