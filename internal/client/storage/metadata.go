package storage

import (
	"context"
	"time"
)

// MetadataStorage defines interface for storing client sync metadata
type MetadataStorage interface {
	// SaveLastSyncedAt saves the time of the last successful sync
	SaveLastSyncedAt(ctx context.Context, at time.Time) error

	// GetLastSyncedAt returns zero time if no sync has been performed yet
	GetLastSyncedAt(ctx context.Context) (time.Time, error)

	// SavePullCursor saves the server revision the client has pulled up to
	SavePullCursor(ctx context.Context, revision int64) error

	// GetPullCursor returns 0 if nothing was pulled yet
	GetPullCursor(ctx context.Context) (int64, error)

	// ClearMetadata removes all sync metadata (disconnect)
	ClearMetadata(ctx context.Context) error
}
