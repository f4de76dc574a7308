package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/iudanet/mdkeeper/internal/client/storage"
	"github.com/iudanet/mdkeeper/internal/models"
)

// SaveEntity stores or replaces a document or folder
func (s *Storage) SaveEntity(ctx context.Context, e *models.Entity) error {
	return s.putJSON(bucketEntities, e.Key().String(), e, true)
}

// GetEntity retrieves an entity by (id, type)
func (s *Storage) GetEntity(ctx context.Context, key models.EntityKey) (*models.Entity, error) {
	e := &models.Entity{}
	if err := s.getJSON(bucketEntities, key.String(), e, storage.ErrEntityNotFound); err != nil {
		return nil, err
	}
	return e, nil
}

// ListEntities returns entities of the given type ordered by name
func (s *Storage) ListEntities(ctx context.Context, typ models.EntityType, includeDeleted bool) ([]*models.Entity, error) {
	var result []*models.Entity

	err := s.forEachJSON(bucketEntities, func(data []byte) error {
		e := &models.Entity{}
		if err := json.Unmarshal(data, e); err != nil {
			return fmt.Errorf("failed to unmarshal entity: %w", err)
		}
		if typ != "" && e.Type != typ {
			return nil
		}
		if e.IsDeleted() && !includeDeleted {
			return nil
		}
		result = append(result, e)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Name == result[j].Name {
			return result[i].ID < result[j].ID
		}
		return result[i].Name < result[j].Name
	})

	return result, nil
}

// PurgeEntity physically removes an entity
func (s *Storage) PurgeEntity(ctx context.Context, key models.EntityKey) error {
	return s.deleteKey(bucketEntities, key.String())
}
