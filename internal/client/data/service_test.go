package data

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/mdkeeper/internal/client/storage/boltdb"
	apperrors "github.com/iudanet/mdkeeper/internal/errors"
	"github.com/iudanet/mdkeeper/internal/models"
	"github.com/iudanet/mdkeeper/internal/validation"
)

type testEnv struct {
	svc   *service
	store *boltdb.Storage
	queue *QueuerMock
	clock time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	env := &testEnv{
		store: store,
		clock: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
		queue: &QueuerMock{
			QueueDocumentSyncFunc: func(ctx context.Context, doc *models.Entity) error { return nil },
			QueueFolderSyncFunc:   func(ctx context.Context, folder *models.Entity) error { return nil },
		},
	}
	env.svc = NewService(store, env.queue, slog.New(slog.NewTextHandler(io.Discard, nil))).(*service)
	env.svc.now = func() time.Time {
		env.clock = env.clock.Add(time.Second)
		return env.clock
	}
	return env
}

func TestService_CreateDocument(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc, err := env.svc.CreateDocument(ctx, "  Notes ", "", "# hello")
	require.NoError(t, err)

	assert.Equal(t, "Notes", doc.Name)
	assert.Equal(t, int64(0), doc.SyncVersion)
	assert.True(t, doc.HasUnsyncedChanges())

	stored, err := env.store.GetEntity(ctx, doc.Key())
	require.NoError(t, err)
	assert.Equal(t, "# hello", stored.Content)

	calls := env.queue.QueueDocumentSyncCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, doc.ID, calls[0].Doc.ID)
}

func TestService_CreateDocument_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.CreateDocument(ctx, "", "", "")
	assert.ErrorIs(t, err, validation.ErrInvalidName)

	_, err = env.svc.CreateDocument(ctx, "Doc", "missing-folder", "")
	assert.ErrorIs(t, err, ErrInvalidParent)

	assert.Empty(t, env.queue.QueueDocumentSyncCalls())
}

func TestService_UpdateContent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc, err := env.svc.CreateDocument(ctx, "Doc", "", "v1")
	require.NoError(t, err)

	updated, err := env.svc.UpdateContent(ctx, doc.ID, "v2")
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Content)
	assert.True(t, updated.UpdatedAt.After(doc.UpdatedAt))

	// одинаковый текст не создает мутацию
	_, err = env.svc.UpdateContent(ctx, doc.ID, "v2")
	require.NoError(t, err)
	assert.Len(t, env.queue.QueueDocumentSyncCalls(), 2)

	_, err = env.svc.UpdateContent(ctx, "nope", "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Folders(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	work, err := env.svc.CreateFolder(ctx, "Work", "", "blue")
	require.NoError(t, err)

	_, err = env.svc.CreateFolder(ctx, "Bad", "", "teal")
	assert.ErrorIs(t, err, validation.ErrInvalidColor)

	colored, err := env.svc.SetColor(ctx, work.ID, "#112233")
	require.NoError(t, err)
	assert.Equal(t, "#112233", colored.Color)

	folders, err := env.svc.ListFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Len(t, env.queue.QueueFolderSyncCalls(), 2)
}

func TestService_RenameAndMove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	parent, err := env.svc.CreateFolder(ctx, "Parent", "", "")
	require.NoError(t, err)
	child, err := env.svc.CreateFolder(ctx, "Child", parent.ID, "")
	require.NoError(t, err)
	doc, err := env.svc.CreateDocument(ctx, "Doc", "", "")
	require.NoError(t, err)

	renamed, err := env.svc.Rename(ctx, doc.Key(), "Renamed")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", renamed.Name)

	moved, err := env.svc.Move(ctx, doc.Key(), child.ID)
	require.NoError(t, err)
	assert.Equal(t, child.ID, moved.ParentID)

	inChild, err := env.svc.ListDocuments(ctx, child.ID, false)
	require.NoError(t, err)
	require.Len(t, inChild, 1)

	atRoot, err := env.svc.ListDocuments(ctx, "", false)
	require.NoError(t, err)
	assert.Empty(t, atRoot)

	underParent, err := env.svc.ListDocuments(ctx, parent.ID, true)
	require.NoError(t, err)
	require.Len(t, underParent, 1)
	assert.Equal(t, doc.ID, underParent[0].ID)

	directParent, err := env.svc.ListDocuments(ctx, parent.ID, false)
	require.NoError(t, err)
	assert.Empty(t, directParent)

	// папка не может оказаться внутри своего потомка
	_, err = env.svc.Move(ctx, parent.Key(), child.ID)
	assert.ErrorIs(t, err, ErrInvalidParent)

	_, err = env.svc.Move(ctx, parent.Key(), parent.ID)
	assert.ErrorIs(t, err, ErrInvalidParent)
}

func TestService_Delete_Cascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	folder, err := env.svc.CreateFolder(ctx, "Folder", "", "")
	require.NoError(t, err)
	sub, err := env.svc.CreateFolder(ctx, "Sub", folder.ID, "")
	require.NoError(t, err)
	doc, err := env.svc.CreateDocument(ctx, "Doc", sub.ID, "x")
	require.NoError(t, err)
	other, err := env.svc.CreateDocument(ctx, "Other", "", "y")
	require.NoError(t, err)

	require.NoError(t, env.svc.Delete(ctx, folder.Key()))

	for _, key := range []models.EntityKey{folder.Key(), sub.Key(), doc.Key()} {
		_, err := env.svc.Get(ctx, key)
		assert.ErrorIs(t, err, ErrNotFound, key.String())

		stored, err := env.store.GetEntity(ctx, key)
		require.NoError(t, err)
		assert.True(t, stored.IsDeleted(), "tombstone остается до подтверждения сервером")
	}

	_, err = env.svc.Get(ctx, other.Key())
	require.NoError(t, err)

	var deletedDocs int
	for _, c := range env.queue.QueueDocumentSyncCalls() {
		if c.Doc.IsDeleted() {
			deletedDocs++
		}
	}
	assert.Equal(t, 1, deletedDocs)

	assert.ErrorIs(t, env.svc.Delete(ctx, folder.Key()), ErrNotFound)
}

func TestService_Resolve(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a, err := env.svc.CreateDocument(ctx, "Alpha", "", "")
	require.NoError(t, err)
	_, err = env.svc.CreateDocument(ctx, "Beta", "", "")
	require.NoError(t, err)

	got, err := env.svc.Resolve(ctx, models.EntityTypeDocument, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	got, err = env.svc.Resolve(ctx, models.EntityTypeDocument, "Alpha")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	got, err = env.svc.Resolve(ctx, models.EntityTypeDocument, a.ID[:8])
	if err == nil {
		assert.Equal(t, a.ID, got.ID)
	} else {
		// uuid префиксы могли совпасть
		assert.ErrorIs(t, err, ErrAmbiguous)
	}

	_, err = env.svc.Resolve(ctx, models.EntityTypeDocument, "Gamma")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.svc.Resolve(ctx, models.EntityTypeDocument, "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.svc.CreateDocument(ctx, "Alpha", "", "")
	require.NoError(t, err)
	_, err = env.svc.Resolve(ctx, models.EntityTypeDocument, "Alpha")
	assert.ErrorIs(t, err, ErrAmbiguous)
}

func TestService_QueueError(t *testing.T) {
	env := newTestEnv(t)
	env.queue.QueueDocumentSyncFunc = func(ctx context.Context, doc *models.Entity) error {
		return errors.New("storage full")
	}

	_, err := env.svc.CreateDocument(context.Background(), "Doc", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to queue")

	docs, err := env.store.ListEntities(context.Background(), models.EntityTypeDocument, true)
	require.NoError(t, err)
	assert.Empty(t, docs, "unqueued document is not kept locally")
}

func TestService_QueueFullRollsBackEdit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	doc, err := env.svc.CreateDocument(ctx, "Doc", "", "saved")
	require.NoError(t, err)

	env.queue.QueueDocumentSyncFunc = func(ctx context.Context, doc *models.Entity) error {
		return fmt.Errorf("failed to enqueue: %w", apperrors.ErrStorageFull)
	}

	_, err = env.svc.UpdateContent(ctx, doc.ID, "lost edit")
	require.ErrorIs(t, err, apperrors.ErrStorageFull)

	got, err := env.svc.Get(ctx, doc.Key())
	require.NoError(t, err)
	assert.Equal(t, "saved", got.Content)
	assert.Equal(t, doc.UpdatedAt.UTC(), got.UpdatedAt.UTC())
}

func TestSortByUpdated(t *testing.T) {
	now := time.Now()
	old := models.NewDocument("old", "", "", now.Add(-time.Hour))
	fresh := models.NewDocument("fresh", "", "", now)

	list := []*models.Entity{old, fresh}
	SortByUpdated(list)
	assert.Equal(t, "fresh", list[0].Name)
}
