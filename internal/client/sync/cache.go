package sync

import (
	"context"
	"fmt"
	"sync"

	"github.com/iudanet/mdkeeper/internal/client/storage"
	"github.com/iudanet/mdkeeper/internal/models"
)

// ServerCache последнее известное состояние сервера: id -> Entity.
// Наружу отдаются только копии.
type ServerCache struct {
	store storage.ServerCacheStorage
	items map[models.EntityKey]*models.Entity
	mu    sync.Mutex
}

// NewServerCache loads the persisted cache.
func NewServerCache(ctx context.Context, store storage.ServerCacheStorage) (*ServerCache, error) {
	items, err := store.LoadCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load server cache: %w", err)
	}

	c := &ServerCache{
		store: store,
		items: make(map[models.EntityKey]*models.Entity, len(items)),
	}
	for _, e := range items {
		c.items[e.Key()] = e
	}

	return c, nil
}

// Apply записывает серверную версию. Удаленные на сервере сущности
// из кэша убираются.
func (c *ServerCache) Apply(ctx context.Context, e *models.Entity) error {
	if e.IsDeleted() {
		return c.Delete(ctx, e.Key())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cp := e.Clone()
	if err := c.store.PutCached(ctx, cp); err != nil {
		return fmt.Errorf("failed to cache server entity: %w", err)
	}
	c.items[cp.Key()] = cp

	return nil
}

// Delete removes the cached version.
func (c *ServerCache) Delete(ctx context.Context, key models.EntityKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; !ok {
		return nil
	}
	if err := c.store.DeleteCached(ctx, key); err != nil {
		return fmt.Errorf("failed to delete cached entity: %w", err)
	}
	delete(c.items, key)

	return nil
}

// Get returns a copy of the cached server version.
func (c *ServerCache) Get(key models.EntityKey) (*models.Entity, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return nil, false
	}
	return e.Clone(), true
}

// Len returns the number of cached entities.
func (c *ServerCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear drops the whole cache.
func (c *ServerCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.ClearCache(ctx); err != nil {
		return fmt.Errorf("failed to clear server cache: %w", err)
	}
	c.items = make(map[models.EntityKey]*models.Entity)

	return nil
}
