// Package sync реализует offline-first синхронизацию документов и папок:
// очередь локальных мутаций, кэш серверного состояния, конфликты и
// координатор, который все это разгружает через Transport.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/mdkeeper/internal/client/storage"
	"github.com/iudanet/mdkeeper/internal/conflict"
	apperrors "github.com/iudanet/mdkeeper/internal/errors"
	"github.com/iudanet/mdkeeper/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service операции координатора, которыми пользуются data сервис и CLI
type Service interface {
	QueueDocumentSync(ctx context.Context, doc *models.Entity) error
	QueueFolderSync(ctx context.Context, folder *models.Entity) error
	ProcessQueue(ctx context.Context) (DrainResult, error)
	Pull(ctx context.Context) (PullSummary, error)
	ResolveConflict(ctx context.Context, id string, res models.Resolution, local, server *models.Entity) (*models.SyncConflict, error)
	Conflicts() []*models.SyncConflict
	Conflict(id string) (*models.SyncConflict, bool)
	ActiveConflict() *models.SyncConflict
	SetActiveConflict(id string) error
	FailedItems() []*models.SyncQueueItem
	RetryFailed(ctx context.Context, id string) error
	HasPendingChanges() bool
	PendingCount() int
	ConflictCount() int
	Status() Status
	Disconnect(ctx context.Context) error
}

const (
	DefaultDebounce   = 2 * time.Second
	DefaultMaxRetries = 5
)

// Config параметры координатора
type Config struct {
	Debounce    time.Duration // окно debounce после enqueue, 0 отключает автоматический drain
	MaxRetries  int           // после стольких неудач элемент считается failed
	SyncOnStart bool          // Start запускает pull и drain
}

// Status снимок состояния для UI
type Status struct {
	LastSyncedAt time.Time
	LastError    error
	State        models.SyncState
	Pending      int
	Conflicts    int
	Failed       int
}

// DrainResult итог одного или нескольких drain подряд
type DrainResult struct {
	Pushed     int // успешно отправлено
	Conflicts  int // новых конфликтов
	CleanPulls int // отказов сервера без конфликта, принята серверная версия
	Retried    int // временных ошибок
	Skipped    int // пропущено: конфликт или исчерпаны попытки
}

func (r *DrainResult) add(o DrainResult) {
	r.Pushed += o.Pushed
	r.Conflicts += o.Conflicts
	r.CleanPulls += o.CleanPulls
	r.Retried += o.Retried
	r.Skipped += o.Skipped
}

// PullSummary итог Pull
type PullSummary struct {
	Applied   int // принято серверных версий
	Deleted   int // удалено локально по tombstone сервера
	Conflicts int // новых конфликтов
	Revision  int64
}

// Coordinator единственный владелец очереди, кэша и конфликтов.
// Состояния: idle -> syncing -> idle | error.
type Coordinator struct {
	lastSyncedAt time.Time
	transport    Transport
	auth         Authenticator
	store        Store
	lastErr      error
	runCtx       context.Context
	queue        *Queue
	cache        *ServerCache
	conflicts    *ConflictSet
	logger       *slog.Logger
	now          func() time.Time
	newID        func() string
	debounce     *debouncer
	stopRun      context.CancelFunc
	subscribers  map[int]func(Status)
	state        models.SyncState
	cfg          Config
	gate         drainGate
	bg           sync.WaitGroup
	workMu       sync.Mutex
	localMu      sync.Mutex // локальное хранилище + очередь: push settle против enqueue
	stateMu      sync.Mutex
	nextSub      int
}

var _ Service = (*Coordinator)(nil)

// NewCoordinator восстанавливает очередь, кэш и конфликты из store
func NewCoordinator(ctx context.Context, transport Transport, auth Authenticator, store Store, cfg Config, logger *slog.Logger) (*Coordinator, error) {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}

	c := &Coordinator{
		transport:   transport,
		auth:        auth,
		store:       store,
		logger:      logger,
		cfg:         cfg,
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
		state:       models.SyncStateIdle,
		subscribers: make(map[int]func(Status)),
	}
	c.runCtx, c.stopRun = context.Background(), func() {}
	c.debounce = newDebouncer(cfg.Debounce, c.debouncedDrain)

	var err error
	if c.queue, err = NewQueue(ctx, store, func() time.Time { return c.now() }); err != nil {
		return nil, err
	}
	if c.cache, err = NewServerCache(ctx, store); err != nil {
		return nil, err
	}
	if c.conflicts, err = NewConflictSet(ctx, store); err != nil {
		return nil, err
	}

	c.lastSyncedAt, err = store.GetLastSyncedAt(ctx)
	if err != nil {
		logger.Warn("Failed to load last sync time", "error", err)
	}

	return c, nil
}

// Start включает фоновую работу. С SyncOnStart сразу выполняет Pull и drain.
func (c *Coordinator) Start(ctx context.Context) {
	c.stateMu.Lock()
	c.stopRun()
	c.runCtx, c.stopRun = context.WithCancel(ctx)
	runCtx := c.runCtx
	c.stateMu.Unlock()

	if !c.cfg.SyncOnStart {
		return
	}

	c.bg.Add(1)
	go func() {
		defer c.bg.Done()

		if _, err := c.Pull(runCtx); err != nil && !errors.Is(err, ErrNotAuthenticated) {
			c.logger.Warn("Sync on start: pull failed", "error", err)
		}
		if _, err := c.ProcessQueue(runCtx); err != nil && !errors.Is(err, ErrNotAuthenticated) {
			c.logger.Warn("Sync on start: drain failed", "error", err)
		}
	}()
}

// Stop отменяет отложенный drain и ждет завершения текущего
func (c *Coordinator) Stop() {
	c.debounce.stop()

	c.stateMu.Lock()
	stop := c.stopRun
	c.stateMu.Unlock()
	stop()

	c.bg.Wait()
	c.gate.wait()
}

func (c *Coordinator) debouncedDrain() {
	c.stateMu.Lock()
	ctx := c.runCtx
	c.stateMu.Unlock()

	if _, err := c.ProcessQueue(ctx); err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			c.logger.Debug("Debounced drain skipped", "reason", err)
			return
		}
		c.logger.Warn("Debounced drain failed", "error", err)
	}
}

// QueueDocumentSync ставит документ в очередь на push
func (c *Coordinator) QueueDocumentSync(ctx context.Context, doc *models.Entity) error {
	if doc.Type != models.EntityTypeDocument {
		return fmt.Errorf("queue document: unexpected entity type %q", doc.Type)
	}
	return c.enqueue(ctx, doc, true)
}

// QueueFolderSync ставит папку в очередь на push
func (c *Coordinator) QueueFolderSync(ctx context.Context, folder *models.Entity) error {
	if folder.Type != models.EntityTypeFolder {
		return fmt.Errorf("queue folder: unexpected entity type %q", folder.Type)
	}
	return c.enqueue(ctx, folder, true)
}

// enqueue возвращает apperrors.ErrStorageFull, если локальное хранилище заполнено
func (c *Coordinator) enqueue(ctx context.Context, e *models.Entity, trigger bool) error {
	queued, err := c.queueLocal(ctx, e)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", e.Key(), err)
	}

	c.logger.Debug("Enqueued local mutation",
		"id", queued.ID,
		"type", queued.Type,
		"operation", queued.Operation,
		"seq", queued.Seq)

	c.notify()
	if trigger {
		c.debounce.trigger()
	}

	return nil
}

func (c *Coordinator) queueLocal(ctx context.Context, e *models.Entity) (*models.SyncQueueItem, error) {
	c.localMu.Lock()
	defer c.localMu.Unlock()

	data := e.Clone()
	stored, err := c.store.GetEntity(ctx, e.Key())
	switch {
	case err != nil && !errors.Is(err, storage.ErrEntityNotFound):
		return nil, fmt.Errorf("failed to load local entity: %w", err)
	case err == nil && stored.UpdatedAt.Equal(data.UpdatedAt) && stored.SyncVersion > data.SyncVersion:
		// push завершился между сохранением правки и ее постановкой в очередь
		data.SyncVersion = stored.SyncVersion
	}

	item := &models.SyncQueueItem{
		ID:        data.ID,
		Type:      data.Type,
		Operation: models.OperationFor(data),
		Data:      *data,
	}

	return c.queue.Enqueue(ctx, item)
}

// ProcessQueue немедленно разгружает очередь и возвращается, когда drain завершен.
// Если drain уже идет, вызов ждет его вместе с одним догоняющим drain.
func (c *Coordinator) ProcessQueue(ctx context.Context) (DrainResult, error) {
	if !c.auth.IsAuthenticated(ctx) {
		return DrainResult{}, ErrNotAuthenticated
	}

	session, leader := c.gate.enter()
	if !leader {
		select {
		case <-session.done:
			return session.result, session.err
		case <-ctx.Done():
			return DrainResult{}, ctx.Err()
		}
	}

	for {
		res, err := c.drain(ctx)
		session.result.add(res)
		session.err = err

		if !c.gate.next(err != nil) {
			break
		}
	}

	return session.result, session.err
}

// drain один проход по очереди, элементы отправляются последовательно
func (c *Coordinator) drain(ctx context.Context) (DrainResult, error) {
	c.workMu.Lock()
	defer c.workMu.Unlock()

	var res DrainResult

	items := c.queue.Snapshot()
	c.stateMu.Lock()
	prevState, prevErr := c.state, c.lastErr
	c.stateMu.Unlock()
	c.setState(models.SyncStateSyncing, nil)
	c.logger.Info("Starting drain", "items", len(items))

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			// отмена не меняет итог предыдущего drain
			c.setState(prevState, prevErr)
			return res, err
		}

		key := item.Key()
		if c.conflicts.Has(key) || item.Retries >= c.cfg.MaxRetries {
			res.Skipped++
			continue
		}

		outcome, err := c.pushItem(ctx, item)
		if err != nil {
			c.logger.Error("Drain aborted",
				"id", item.ID,
				"type", item.Type,
				"error", err)
			c.setState(models.SyncStateError, err)
			return res, err
		}
		res.add(outcome)
	}

	now := c.now()
	c.stateMu.Lock()
	c.lastSyncedAt = now
	c.stateMu.Unlock()
	if err := c.store.SaveLastSyncedAt(ctx, now); err != nil {
		c.logger.Warn("Failed to save last sync time", "error", err)
	}

	c.logger.Info("Drain finished",
		"pushed", res.Pushed,
		"conflicts", res.Conflicts,
		"clean_pulls", res.CleanPulls,
		"retried", res.Retried,
		"skipped", res.Skipped)
	c.setState(models.SyncStateIdle, nil)

	return res, nil
}

// pushItem отправляет один элемент. Ошибка возвращается только для фатальных
// случаев, которые прерывают drain.
func (c *Coordinator) pushItem(ctx context.Context, item *models.SyncQueueItem) (DrainResult, error) {
	key := item.Key()
	expected := item.Data.SyncVersion

	pushed, err := c.transport.Push(ctx, &item.Data, expected)
	if err == nil && (pushed == nil || pushed.SyncVersion != expected+1 || pushed.Key() != key) {
		got := int64(-1)
		if pushed != nil {
			got = pushed.SyncVersion
		}
		c.logger.Warn("Rejecting push response with unexpected version",
			"id", item.ID,
			"expected", expected+1,
			"got", got)
		err = fmt.Errorf("push %s: server returned version %d, want %d: %w", key, got, expected+1, apperrors.ErrTransient)
	}

	switch {
	case err == nil:
		return DrainResult{Pushed: 1}, c.applyPushed(ctx, item, pushed)

	case apperrors.IsFatal(err):
		return DrainResult{}, err
	}

	if vc, ok := apperrors.AsVersionConflict(err); ok {
		return c.applyVersionConflict(ctx, item, &vc.Server)
	}

	// остальное считаем временным сбоем
	retries, rerr := c.queue.IncrementRetries(ctx, key)
	if rerr != nil {
		return DrainResult{}, rerr
	}
	if retries >= c.cfg.MaxRetries {
		c.logger.Warn("Sync item failed permanently",
			"id", item.ID,
			"type", item.Type,
			"retries", retries,
			"error", err)
	} else {
		c.logger.Info("Transient push failure",
			"id", item.ID,
			"retries", retries,
			"error", err)
	}

	return DrainResult{Retried: 1}, nil
}

func (c *Coordinator) applyPushed(ctx context.Context, item *models.SyncQueueItem, pushed *models.Entity) error {
	now := c.now()
	key := item.Key()

	server := pushed.Clone()
	server.MarkSynced(now)
	if err := c.cache.Apply(ctx, server); err != nil {
		return err
	}

	c.localMu.Lock()
	defer c.localMu.Unlock()

	requeued, err := c.queue.Settle(ctx, key, item.Seq, pushed.SyncVersion)
	if err != nil {
		return err
	}

	local, err := c.store.GetEntity(ctx, key)
	switch {
	case errors.Is(err, storage.ErrEntityNotFound):
		if requeued {
			return nil
		}
	case err != nil:
		return fmt.Errorf("failed to load local entity: %w", err)
	case requeued || local.UpdatedAt.After(item.Data.UpdatedAt):
		// пока шел push появилась новая правка: переносим только версию,
		// enqueue возьмет ее из хранилища
		local.SyncVersion = pushed.SyncVersion
		return c.saveLocal(ctx, local)
	}

	synced := item.Data.Clone()
	synced.SyncVersion = pushed.SyncVersion
	synced.MarkSynced(now)
	if synced.IsDeleted() {
		return c.purgeLocal(ctx, key)
	}

	c.logger.Debug("Pushed", "id", item.ID, "version", synced.SyncVersion)
	return c.saveLocal(ctx, synced)
}

func (c *Coordinator) applyVersionConflict(ctx context.Context, item *models.SyncQueueItem, server *models.Entity) (DrainResult, error) {
	key := item.Key()

	if err := c.cache.Apply(ctx, server); err != nil {
		return DrainResult{}, err
	}

	found := conflict.Detect(&item.Data, server)
	if found == nil && server.SyncVersion <= item.Data.SyncVersion && !item.Data.SamePayload(server) {
		// сервер позади нашей базы (например, восстановлен из бэкапа):
		// принять его значит молча потерять локальную правку
		found = &models.SyncConflict{
			DocumentID:     item.ID,
			Type:           item.Type,
			LocalDocument:  *item.Data.Clone(),
			ServerDocument: *server.Clone(),
		}
	}
	if found != nil {
		found.DetectedAt = c.now()
		if err := c.conflicts.Put(ctx, found); err != nil {
			return DrainResult{}, err
		}
		c.logger.Warn("Sync conflict detected",
			"id", item.ID,
			"type", item.Type,
			"local_version", item.Data.SyncVersion,
			"server_version", server.SyncVersion)
		return DrainResult{Conflicts: 1}, nil
	}

	// clean pull: серверная версия заменяет устаревшую локальную
	if err := c.adoptServer(ctx, server); err != nil {
		return DrainResult{}, err
	}
	if _, err := c.queue.RemoveIfCurrent(ctx, key, item.Seq); err != nil {
		return DrainResult{}, err
	}
	c.logger.Info("Server version adopted", "id", item.ID, "version", server.SyncVersion)

	return DrainResult{CleanPulls: 1}, nil
}

// adoptServer записывает серверную версию как локальную синхронизированную
func (c *Coordinator) adoptServer(ctx context.Context, server *models.Entity) error {
	if server.IsDeleted() {
		return c.purgeLocal(ctx, server.Key())
	}
	adopted := server.Clone()
	adopted.MarkSynced(c.now())
	return c.saveLocal(ctx, adopted)
}

func (c *Coordinator) saveLocal(ctx context.Context, e *models.Entity) error {
	if err := c.store.SaveEntity(ctx, e); err != nil {
		return fmt.Errorf("failed to save local entity: %w", err)
	}
	return nil
}

func (c *Coordinator) purgeLocal(ctx context.Context, key models.EntityKey) error {
	if err := c.store.PurgeEntity(ctx, key); err != nil {
		return fmt.Errorf("failed to purge local entity: %w", err)
	}
	return nil
}

// Pull забирает изменения сервера после сохраненного курсора
func (c *Coordinator) Pull(ctx context.Context) (PullSummary, error) {
	if !c.auth.IsAuthenticated(ctx) {
		return PullSummary{}, ErrNotAuthenticated
	}

	c.workMu.Lock()
	defer c.workMu.Unlock()

	var summary PullSummary

	since, err := c.store.GetPullCursor(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to load pull cursor: %w", err)
	}

	result, err := c.transport.Pull(ctx, since)
	if err != nil {
		if apperrors.IsFatal(err) {
			c.setState(models.SyncStateError, err)
		}
		return summary, fmt.Errorf("pull failed: %w", err)
	}

	for _, server := range result.Entities {
		if err := c.applyPulled(ctx, server, &summary); err != nil {
			return summary, err
		}
	}

	if err := c.store.SavePullCursor(ctx, result.Revision); err != nil {
		return summary, fmt.Errorf("failed to save pull cursor: %w", err)
	}
	summary.Revision = result.Revision

	c.logger.Info("Pull finished",
		"since", since,
		"revision", result.Revision,
		"applied", summary.Applied,
		"deleted", summary.Deleted,
		"conflicts", summary.Conflicts)
	c.notify()

	return summary, nil
}

func (c *Coordinator) applyPulled(ctx context.Context, server *models.Entity, summary *PullSummary) error {
	key := server.Key()

	if err := c.cache.Apply(ctx, server); err != nil {
		return err
	}

	if item, ok := c.queue.Get(key); ok {
		if found := conflict.Detect(&item.Data, server); found != nil {
			found.DetectedAt = c.now()
			if err := c.conflicts.Put(ctx, found); err != nil {
				return err
			}
			summary.Conflicts++
			return nil
		}
		if server.SyncVersion <= item.Data.SyncVersion {
			// наша правка основана на этой версии, push пройдет
			return nil
		}
		removed, err := c.queue.RemoveIfCurrent(ctx, key, item.Seq)
		if err != nil || !removed {
			return err
		}
	} else {
		local, err := c.store.GetEntity(ctx, key)
		switch {
		case errors.Is(err, storage.ErrEntityNotFound):
			if server.IsDeleted() {
				return nil
			}
		case err != nil:
			return fmt.Errorf("failed to load local entity: %w", err)
		case server.SyncVersion <= local.SyncVersion:
			return nil
		}
	}

	if err := c.adoptServer(ctx, server); err != nil {
		return err
	}
	if server.IsDeleted() {
		summary.Deleted++
	} else {
		summary.Applied++
	}

	return nil
}

// ResolveConflict применяет выбранную стратегию. local и server могут быть nil,
// тогда берутся последняя локальная правка из очереди и серверная версия конфликта.
func (c *Coordinator) ResolveConflict(ctx context.Context, id string, res models.Resolution, local, server *models.Entity) (*models.SyncConflict, error) {
	c.workMu.Lock()
	defer c.workMu.Unlock()

	found, ok := c.conflicts.ByID(id)
	if !ok {
		return nil, fmt.Errorf("resolve %s: %w", id, ErrConflictNotFound)
	}
	key := found.Key()

	switch {
	case local != nil:
		found.LocalDocument = *local.Clone()
	default:
		if item, ok := c.queue.Get(key); ok {
			found.LocalDocument = *item.Data.Clone()
		}
	}
	if server != nil {
		found.ServerDocument = *server.Clone()
	}

	now := c.now()
	plan, err := conflict.Plan(found, res, now, c.newID)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", id, err)
	}

	if err := c.cache.Apply(ctx, plan.Cache); err != nil {
		return nil, err
	}
	for _, e := range plan.Save {
		// принятый серверный tombstone удаляется локально
		if e.IsDeleted() && !e.HasUnsyncedChanges() {
			err = c.purgeLocal(ctx, e.Key())
		} else {
			err = c.saveLocal(ctx, e)
		}
		if err != nil {
			return nil, err
		}
	}
	if plan.DropQueued {
		if err := c.queue.Remove(ctx, key); err != nil {
			return nil, err
		}
	}
	for _, e := range plan.Enqueue {
		if err := c.enqueue(ctx, e, false); err != nil {
			return nil, err
		}
	}
	if err := c.conflicts.Remove(ctx, key); err != nil {
		return nil, err
	}

	found.Resolution = res
	found.ResolvedAt = &now

	c.logger.Info("Conflict resolved",
		"id", id,
		"resolution", res,
		"enqueued", len(plan.Enqueue))
	c.notify()
	c.debounce.trigger()

	return found, nil
}

// Conflicts returns unresolved conflicts ordered by detection time.
func (c *Coordinator) Conflicts() []*models.SyncConflict {
	return c.conflicts.List()
}

// Conflict returns the unresolved conflict for id.
func (c *Coordinator) Conflict(id string) (*models.SyncConflict, bool) {
	return c.conflicts.ByID(id)
}

// ActiveConflict returns the conflict currently presented to the user.
func (c *Coordinator) ActiveConflict() *models.SyncConflict {
	return c.conflicts.Active()
}

// SetActiveConflict выбирает конфликт для показа, "" очищает слот
func (c *Coordinator) SetActiveConflict(id string) error {
	if err := c.conflicts.SetActive(id); err != nil {
		return err
	}
	c.notify()
	return nil
}

// FailedItems возвращает элементы, исчерпавшие попытки
func (c *Coordinator) FailedItems() []*models.SyncQueueItem {
	var failed []*models.SyncQueueItem
	for _, item := range c.queue.Snapshot() {
		if item.Retries >= c.cfg.MaxRetries {
			failed = append(failed, item)
		}
	}
	return failed
}

// RetryFailed сбрасывает счетчик попыток элемента, чтобы следующий drain его отправил
func (c *Coordinator) RetryFailed(ctx context.Context, id string) error {
	for _, item := range c.queue.Snapshot() {
		if item.ID != id {
			continue
		}
		if err := c.queue.ResetRetries(ctx, item.Key()); err != nil {
			return err
		}
		c.notify()
		c.debounce.trigger()
		return nil
	}
	return fmt.Errorf("retry %s: %w", id, ErrNotQueued)
}

// HasPendingChanges reports whether anything waits to be pushed.
func (c *Coordinator) HasPendingChanges() bool {
	return c.queue.Len() > 0
}

// PendingCount returns the number of queued items.
func (c *Coordinator) PendingCount() int {
	return c.queue.Len()
}

// ConflictCount returns the number of unresolved conflicts.
func (c *Coordinator) ConflictCount() int {
	return c.conflicts.Len()
}

// State returns the current state.
func (c *Coordinator) State() models.SyncState {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	return c.state
}

// LastError returns the error that moved the coordinator into the error state.
func (c *Coordinator) LastError() error {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	return c.lastErr
}

// Status returns a snapshot for display.
func (c *Coordinator) Status() Status {
	c.stateMu.Lock()
	st := Status{
		State:        c.state,
		LastError:    c.lastErr,
		LastSyncedAt: c.lastSyncedAt,
	}
	c.stateMu.Unlock()

	st.Pending = c.queue.Len()
	st.Conflicts = c.conflicts.Len()
	st.Failed = len(c.FailedItems())

	return st
}

// Subscribe регистрирует наблюдателя. Возвращает функцию отписки.
func (c *Coordinator) Subscribe(fn func(Status)) func() {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = fn

	return func() {
		c.stateMu.Lock()
		defer c.stateMu.Unlock()
		delete(c.subscribers, id)
	}
}

// Disconnect полный сброс: очередь, конфликты, кэш и метаданные очищаются
// без попытки их отправить. Локальные документы остаются.
func (c *Coordinator) Disconnect(ctx context.Context) error {
	c.workMu.Lock()
	defer c.workMu.Unlock()

	if err := c.queue.Clear(ctx); err != nil {
		return err
	}
	if err := c.conflicts.Clear(ctx); err != nil {
		return err
	}
	if err := c.cache.Clear(ctx); err != nil {
		return err
	}
	if err := c.store.ClearMetadata(ctx); err != nil {
		return fmt.Errorf("failed to clear sync metadata: %w", err)
	}

	c.stateMu.Lock()
	c.lastSyncedAt = time.Time{}
	c.stateMu.Unlock()
	c.setState(models.SyncStateIdle, nil)

	c.logger.Info("Disconnected, sync state cleared")
	return nil
}

func (c *Coordinator) setState(state models.SyncState, err error) {
	c.stateMu.Lock()
	changed := c.state != state || c.lastErr != err
	c.state = state
	c.lastErr = err
	c.stateMu.Unlock()

	if changed {
		c.notify()
	}
}

func (c *Coordinator) notify() {
	c.stateMu.Lock()
	subs := make([]func(Status), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.stateMu.Unlock()

	if len(subs) == 0 {
		return
	}

	st := c.Status()
	for _, fn := range subs {
		fn(st)
	}
}
