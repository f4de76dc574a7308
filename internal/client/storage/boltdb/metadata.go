package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	keyLastSyncedAt = "last_synced_at"
	keyPullCursor   = "pull_cursor"
)

func (s *Storage) putInt64(key string, v int64) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket, err := getBucket(tx, bucketMetadata)
		if err != nil {
			return err
		}

		// Конвертируем int64 в bytes
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(v))

		if err := bucket.Put([]byte(key), buf); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
		return nil
	})
}

func (s *Storage) getInt64(key string) (int64, error) {
	var v int64

	err := s.view(func(tx *bbolt.Tx) error {
		bucket, err := getBucket(tx, bucketMetadata)
		if err != nil {
			return err
		}

		buf := bucket.Get([]byte(key))
		if len(buf) != 8 {
			// не сохранялось - 0
			return nil
		}
		v = int64(binary.BigEndian.Uint64(buf))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return v, nil
}

// SaveLastSyncedAt saves the time of the last successful sync
func (s *Storage) SaveLastSyncedAt(ctx context.Context, at time.Time) error {
	return s.putInt64(keyLastSyncedAt, at.UnixNano())
}

// GetLastSyncedAt returns zero time if no sync has been performed yet
func (s *Storage) GetLastSyncedAt(ctx context.Context) (time.Time, error) {
	ns, err := s.getInt64(keyLastSyncedAt)
	if err != nil || ns == 0 {
		return time.Time{}, err
	}
	return time.Unix(0, ns), nil
}

// SavePullCursor saves the server revision pulled so far
func (s *Storage) SavePullCursor(ctx context.Context, revision int64) error {
	return s.putInt64(keyPullCursor, revision)
}

// GetPullCursor returns 0 if nothing was pulled yet
func (s *Storage) GetPullCursor(ctx context.Context) (int64, error) {
	return s.getInt64(keyPullCursor)
}

// ClearMetadata removes all sync metadata
func (s *Storage) ClearMetadata(ctx context.Context) error {
	return s.clearBucket(bucketMetadata)
}
