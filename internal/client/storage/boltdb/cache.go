package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/mdkeeper/internal/models"
)

// PutCached stores the last-known server version of an entity
func (s *Storage) PutCached(ctx context.Context, e *models.Entity) error {
	return s.putJSON(bucketCache, e.Key().String(), e, false)
}

// DeleteCached removes the cached server version
func (s *Storage) DeleteCached(ctx context.Context, key models.EntityKey) error {
	return s.deleteKey(bucketCache, key.String())
}

// LoadCache returns all cached server entities
func (s *Storage) LoadCache(ctx context.Context) ([]*models.Entity, error) {
	var result []*models.Entity

	err := s.forEachJSON(bucketCache, func(data []byte) error {
		e := &models.Entity{}
		if err := json.Unmarshal(data, e); err != nil {
			return fmt.Errorf("failed to unmarshal cached entity: %w", err)
		}
		result = append(result, e)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ClearCache removes all cached server entities
func (s *Storage) ClearCache(ctx context.Context) error {
	return s.clearBucket(bucketCache)
}
