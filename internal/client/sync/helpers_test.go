package sync

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/mdkeeper/internal/client/storage/boltdb"
	apperrors "github.com/iudanet/mdkeeper/internal/errors"
	"github.com/iudanet/mdkeeper/internal/models"
)

// testClock каждый вызов сдвигает время на секунду, чтобы правки были строго упорядочены
type testClock struct {
	t  time.Time
	mu sync.Mutex
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

// fakeServer версионированное хранилище с оптимистичной блокировкой
type fakeServer struct {
	entities  map[models.EntityKey]*models.Entity
	changes   []models.EntityKey
	mu        sync.Mutex
	transient int
}

func newFakeServer() *fakeServer {
	return &fakeServer{entities: make(map[models.EntityKey]*models.Entity)}
}

func (s *fakeServer) transport() *TransportMock {
	return &TransportMock{PushFunc: s.push, PullFunc: s.pull}
}

func (s *fakeServer) push(_ context.Context, e *models.Entity, expected int64) (*models.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.transient > 0 {
		s.transient--
		return nil, fmt.Errorf("dial tcp: connection refused: %w", apperrors.ErrTransient)
	}

	key := e.Key()
	cur := s.entities[key]
	var curVersion int64
	if cur != nil {
		curVersion = cur.SyncVersion
	}
	if curVersion != expected {
		if cur == nil {
			return nil, apperrors.ErrEntityGone
		}
		return nil, &apperrors.VersionConflictError{Server: *cur.Clone(), ExpectedVersion: expected}
	}

	stored := e.Clone()
	stored.SyncVersion = curVersion + 1
	stored.SyncedAt = nil
	s.entities[key] = stored
	s.changes = append(s.changes, key)

	return stored.Clone(), nil
}

func (s *fakeServer) pull(_ context.Context, since int64) (*PullResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := &PullResult{Revision: int64(len(s.changes))}
	seen := make(map[models.EntityKey]bool)
	for i := int(since); i < len(s.changes); i++ {
		key := s.changes[i]
		if seen[key] {
			continue
		}
		seen[key] = true
		result.Entities = append(result.Entities, s.entities[key].Clone())
	}
	return result, nil
}

// put записывает изменение "с другого устройства"
func (s *fakeServer) put(e *models.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities[e.Key()] = e.Clone()
	s.changes = append(s.changes, e.Key())
}

func (s *fakeServer) get(key models.EntityKey) *models.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entities[key].Clone()
}

type testEnv struct {
	c      *Coordinator
	store  *boltdb.Storage
	server *fakeServer
	tr     *TransportMock
	clock  *testClock
}

func newTestEnv(t *testing.T, cfg Config) *testEnv {
	t.Helper()
	ctx := context.Background()

	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "sync.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	server := newFakeServer()
	tr := server.transport()
	auth := &AuthenticatorMock{IsAuthenticatedFunc: func(context.Context) bool { return true }}

	c, err := NewCoordinator(ctx, tr, auth, store, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	clock := newTestClock()
	c.now = clock.Now
	t.Cleanup(c.Stop)

	return &testEnv{c: c, store: store, server: server, tr: tr, clock: clock}
}

// createDoc сохраняет новый документ локально и ставит его в очередь
func (e *testEnv) createDoc(t *testing.T, name, content string) *models.Entity {
	t.Helper()
	doc := models.NewDocument(name, "", content, e.clock.Now())
	e.saveAndQueue(t, doc)
	return doc
}

func (e *testEnv) saveAndQueue(t *testing.T, doc *models.Entity) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.store.SaveEntity(ctx, doc))
	if doc.Type == models.EntityTypeFolder {
		require.NoError(t, e.c.QueueFolderSync(ctx, doc))
		return
	}
	require.NoError(t, e.c.QueueDocumentSync(ctx, doc))
}

// editDoc изменяет локальную копию и ставит ее в очередь
func (e *testEnv) editDoc(t *testing.T, key models.EntityKey, content string) *models.Entity {
	t.Helper()
	doc := e.local(t, key)
	doc.Content = content
	doc.Touch(e.clock.Now())
	e.saveAndQueue(t, doc)
	return doc
}

func (e *testEnv) local(t *testing.T, key models.EntityKey) *models.Entity {
	t.Helper()
	doc, err := e.store.GetEntity(context.Background(), key)
	require.NoError(t, err)
	return doc
}
