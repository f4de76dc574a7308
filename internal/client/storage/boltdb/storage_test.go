package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/mdkeeper/internal/client/storage"
	"github.com/iudanet/mdkeeper/internal/models"
)

// createTestStorage создает временное BoltDB хранилище
func createTestStorage(t *testing.T, opts ...Option) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(context.Background(), dbPath, opts...)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакеты существуют
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range allBuckets {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	// На некоторых системах путь с нулевым символом даст ошибку
	store, err := New(context.Background(), string([]byte{0}))
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "testdb.db"))
	require.NoError(t, err)

	require.NoError(t, store.Close())
	assert.Nil(t, store.db)

	// Второй вызов Close ничего не делает
	require.NoError(t, store.Close())

	// После закрытия операции возвращают ErrStorageClosed
	_, err = store.GetEntity(ctx, models.EntityKey{ID: "x", Type: models.EntityTypeDocument})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.ClearQueue(ctx), storage.ErrStorageClosed)
}

func TestStorage_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketEntities)
	})
	require.NoError(t, err)

	err = store.SaveEntity(ctx, models.NewDocument("a", "", "", timeNow()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entities bucket not found")

	// initBuckets восстанавливает bucket
	require.NoError(t, store.initBuckets())
	require.NoError(t, store.SaveEntity(ctx, models.NewDocument("a", "", "", timeNow())))
}
