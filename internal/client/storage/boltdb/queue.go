package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/iudanet/mdkeeper/internal/models"
)

// PutQueueItem stores or replaces the queue item of (id, type)
func (s *Storage) PutQueueItem(ctx context.Context, item *models.SyncQueueItem) error {
	return s.putJSON(bucketQueue, item.Key().String(), item, true)
}

// DeleteQueueItem removes the queue item of (id, type)
func (s *Storage) DeleteQueueItem(ctx context.Context, key models.EntityKey) error {
	return s.deleteKey(bucketQueue, key.String())
}

// LoadQueue returns all queue items ordered by Seq
func (s *Storage) LoadQueue(ctx context.Context) ([]*models.SyncQueueItem, error) {
	var items []*models.SyncQueueItem

	err := s.forEachJSON(bucketQueue, func(data []byte) error {
		item := &models.SyncQueueItem{}
		if err := json.Unmarshal(data, item); err != nil {
			return fmt.Errorf("failed to unmarshal queue item: %w", err)
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Seq < items[j].Seq
	})

	return items, nil
}

// ClearQueue removes all queue items
func (s *Storage) ClearQueue(ctx context.Context) error {
	return s.clearBucket(bucketQueue)
}
