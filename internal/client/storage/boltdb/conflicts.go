package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/iudanet/mdkeeper/internal/models"
)

// PutConflict stores or replaces the conflict of (id, type)
func (s *Storage) PutConflict(ctx context.Context, c *models.SyncConflict) error {
	return s.putJSON(bucketConflicts, c.Key().String(), c, false)
}

// DeleteConflict removes the conflict of (id, type)
func (s *Storage) DeleteConflict(ctx context.Context, key models.EntityKey) error {
	return s.deleteKey(bucketConflicts, key.String())
}

// LoadConflicts returns conflicts ordered by detection time
func (s *Storage) LoadConflicts(ctx context.Context) ([]*models.SyncConflict, error) {
	var result []*models.SyncConflict

	err := s.forEachJSON(bucketConflicts, func(data []byte) error {
		c := &models.SyncConflict{}
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to unmarshal conflict: %w", err)
		}
		result = append(result, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DetectedAt.Before(result[j].DetectedAt)
	})

	return result, nil
}

// ClearConflicts removes all conflicts
func (s *Storage) ClearConflicts(ctx context.Context) error {
	return s.clearBucket(bucketConflicts)
}
