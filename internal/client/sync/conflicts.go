package sync

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/iudanet/mdkeeper/internal/client/storage"
	"github.com/iudanet/mdkeeper/internal/models"
)

// ConflictSet список неразрешенных конфликтов и слот "активного" конфликта,
// который сейчас показывается пользователю. На один id - не больше одного конфликта.
type ConflictSet struct {
	store  storage.ConflictStorage
	items  map[models.EntityKey]*models.SyncConflict
	active *models.EntityKey
	mu     sync.Mutex
}

// NewConflictSet loads persisted conflicts.
func NewConflictSet(ctx context.Context, store storage.ConflictStorage) (*ConflictSet, error) {
	items, err := store.LoadConflicts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conflicts: %w", err)
	}

	s := &ConflictSet{
		store: store,
		items: make(map[models.EntityKey]*models.SyncConflict, len(items)),
	}
	for _, c := range items {
		s.items[c.Key()] = c
	}

	return s, nil
}

// Put добавляет конфликт, заменяя предыдущий для того же id
func (s *ConflictSet) Put(ctx context.Context, c *models.SyncConflict) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := c.Clone()
	if err := s.store.PutConflict(ctx, cp); err != nil {
		return fmt.Errorf("failed to persist conflict: %w", err)
	}
	s.items[cp.Key()] = cp

	return nil
}

// Remove удаляет конфликт и освобождает активный слот, если он указывал на него
func (s *ConflictSet) Remove(ctx context.Context, key models.EntityKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[key]; !ok {
		return nil
	}
	if err := s.store.DeleteConflict(ctx, key); err != nil {
		return fmt.Errorf("failed to delete conflict: %w", err)
	}
	delete(s.items, key)
	if s.active != nil && *s.active == key {
		s.active = nil
	}

	return nil
}

// Has reports whether an unresolved conflict exists for key.
func (s *ConflictSet) Has(key models.EntityKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.items[key]
	return ok
}

// ByID ищет конфликт по id документа или папки
func (s *ConflictSet) ByID(id string) (*models.SyncConflict, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findLocked(id)
	if c == nil {
		return nil, false
	}
	return c.Clone(), true
}

func (s *ConflictSet) findLocked(id string) *models.SyncConflict {
	for key, c := range s.items {
		if key.ID == id {
			return c
		}
	}
	return nil
}

// List returns copies ordered by detection time.
func (s *ConflictSet) List() []*models.SyncConflict {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*models.SyncConflict, 0, len(s.items))
	for _, c := range s.items {
		result = append(result, c.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DetectedAt.Equal(result[j].DetectedAt) {
			return result[i].DocumentID < result[j].DocumentID
		}
		return result[i].DetectedAt.Before(result[j].DetectedAt)
	})

	return result
}

// Len returns the number of unresolved conflicts.
func (s *ConflictSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Active returns the conflict currently presented, nil if none.
func (s *ConflictSet) Active() *models.SyncConflict {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil
	}
	c, ok := s.items[*s.active]
	if !ok {
		return nil
	}
	return c.Clone()
}

// SetActive выбирает конфликт для показа. Пустой id очищает слот.
// Сами конфликты не меняются.
func (s *ConflictSet) SetActive(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		s.active = nil
		return nil
	}

	c := s.findLocked(id)
	if c == nil {
		return fmt.Errorf("conflict %s: %w", id, ErrConflictNotFound)
	}
	key := c.Key()
	s.active = &key

	return nil
}

// Clear drops every conflict.
func (s *ConflictSet) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ClearConflicts(ctx); err != nil {
		return fmt.Errorf("failed to clear conflicts: %w", err)
	}
	s.items = make(map[models.EntityKey]*models.SyncConflict)
	s.active = nil

	return nil
}
