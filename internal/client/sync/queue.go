package sync

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/iudanet/mdkeeper/internal/client/storage"
	"github.com/iudanet/mdkeeper/internal/models"
)

// Queue хранит отложенные локальные мутации, по одной на (id, type).
// Каждое изменение сначала пишется в storage, потом в память.
type Queue struct {
	store storage.QueueStorage
	items map[models.EntityKey]*models.SyncQueueItem
	now   func() time.Time
	seq   uint64
	mu    sync.Mutex
}

// NewQueue loads the persisted queue.
func NewQueue(ctx context.Context, store storage.QueueStorage, now func() time.Time) (*Queue, error) {
	items, err := store.LoadQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sync queue: %w", err)
	}

	q := &Queue{
		store: store,
		items: make(map[models.EntityKey]*models.SyncQueueItem, len(items)),
		now:   now,
	}
	for _, item := range items {
		q.items[item.Key()] = item
		q.seq = max(q.seq, item.Seq)
	}

	return q, nil
}

// Enqueue вставляет или заменяет элемент с тем же (id, type).
// Timestamp сбрасывается, Retries сохраняется, элемент переходит в конец очереди.
func (q *Queue) Enqueue(ctx context.Context, item *models.SyncQueueItem) (*models.SyncQueueItem, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	next := item.Clone()
	next.Timestamp = q.now()
	next.Seq = q.seq + 1
	next.Retries = 0
	if existing, ok := q.items[next.Key()]; ok {
		next.Retries = existing.Retries
	}

	if err := q.store.PutQueueItem(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to persist queue item: %w", err)
	}

	q.seq = next.Seq
	q.items[next.Key()] = next

	return next.Clone(), nil
}

// Snapshot returns copies of all items in insertion order.
func (q *Queue) Snapshot() []*models.SyncQueueItem {
	q.mu.Lock()
	defer q.mu.Unlock()

	result := make([]*models.SyncQueueItem, 0, len(q.items))
	for _, item := range q.items {
		result = append(result, item.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Seq < result[j].Seq
	})

	return result
}

// Get returns a copy of the item for key.
func (q *Queue) Get(key models.EntityKey) (*models.SyncQueueItem, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	item, ok := q.items[key]
	if !ok {
		return nil, false
	}
	return item.Clone(), true
}

// Len returns the number of queued items.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Remove удаляет элемент после подтвержденного push
func (q *Queue) Remove(ctx context.Context, key models.EntityKey) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.removeLocked(ctx, key)
}

func (q *Queue) removeLocked(ctx context.Context, key models.EntityKey) error {
	if _, ok := q.items[key]; !ok {
		return nil
	}
	if err := q.store.DeleteQueueItem(ctx, key); err != nil {
		return fmt.Errorf("failed to delete queue item: %w", err)
	}
	delete(q.items, key)
	return nil
}

// RemoveIfCurrent удаляет элемент, только если его не заменили после чтения
// (Seq совпадает). Возвращает true, если элемент удален.
func (q *Queue) RemoveIfCurrent(ctx context.Context, key models.EntityKey, seq uint64) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	item, ok := q.items[key]
	if !ok || item.Seq != seq {
		return false, nil
	}
	if err := q.removeLocked(ctx, key); err != nil {
		return false, err
	}
	return true, nil
}

// Settle подтверждает успешный push элемента с данным Seq.
// Если за время push элемент заменили новой правкой, новая правка
// переносится на версию, которую вернул сервер, и остается в очереди.
// Возвращает true, если в очереди осталась новая правка.
func (q *Queue) Settle(ctx context.Context, key models.EntityKey, seq uint64, version int64) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	item, ok := q.items[key]
	if !ok {
		return false, nil
	}
	if item.Seq == seq {
		return false, q.removeLocked(ctx, key)
	}

	rebased := item.Clone()
	rebased.Data.SyncVersion = version
	rebased.Retries = 0
	if err := q.store.PutQueueItem(ctx, rebased); err != nil {
		return true, fmt.Errorf("failed to rebase queue item: %w", err)
	}
	q.items[key] = rebased

	return true, nil
}

// IncrementRetries увеличивает счетчик неудачных попыток и возвращает новое значение
func (q *Queue) IncrementRetries(ctx context.Context, key models.EntityKey) (int, error) {
	return q.setRetries(ctx, key, func(n int) int { return n + 1 })
}

// ResetRetries обнуляет счетчик для ручного повтора
func (q *Queue) ResetRetries(ctx context.Context, key models.EntityKey) error {
	_, err := q.setRetries(ctx, key, func(int) int { return 0 })
	return err
}

func (q *Queue) setRetries(ctx context.Context, key models.EntityKey, fn func(int) int) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	item, ok := q.items[key]
	if !ok {
		return 0, fmt.Errorf("queue item %s: %w", key, ErrNotQueued)
	}

	updated := item.Clone()
	updated.Retries = fn(item.Retries)
	if err := q.store.PutQueueItem(ctx, updated); err != nil {
		return item.Retries, fmt.Errorf("failed to persist queue item: %w", err)
	}
	q.items[key] = updated

	return updated.Retries, nil
}

// Clear removes every item.
func (q *Queue) Clear(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.store.ClearQueue(ctx); err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}
	q.items = make(map[models.EntityKey]*models.SyncQueueItem)

	return nil
}
