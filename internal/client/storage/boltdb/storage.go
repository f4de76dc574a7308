package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.etcd.io/bbolt"

	"github.com/iudanet/mdkeeper/internal/client/storage"
	apperrors "github.com/iudanet/mdkeeper/internal/errors"
)

var (
	// BoltDB bucket names
	bucketAuth      = []byte("auth")
	bucketEntities  = []byte("entities")
	bucketQueue     = []byte("queue")
	bucketCache     = []byte("server_cache")
	bucketConflicts = []byte("conflicts")
	bucketMetadata  = []byte("metadata")

	allBuckets = [][]byte{bucketAuth, bucketEntities, bucketQueue, bucketCache, bucketConflicts, bucketMetadata}
)

var (
	_ storage.AuthStorage        = (*Storage)(nil)
	_ storage.EntityStorage      = (*Storage)(nil)
	_ storage.QueueStorage       = (*Storage)(nil)
	_ storage.ServerCacheStorage = (*Storage)(nil)
	_ storage.ConflictStorage    = (*Storage)(nil)
	_ storage.MetadataStorage    = (*Storage)(nil)
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db      *bbolt.DB
	mu      sync.RWMutex
	maxSize int64
}

// Option настраивает Storage
type Option func(*Storage)

// WithMaxSize ограничивает размер базы в байтах. Запись документа или элемента
// очереди сверх лимита возвращает apperrors.ErrStorageFull. 0 = без лимита.
func WithMaxSize(bytes int64) Option {
	return func(s *Storage) {
		s.maxSize = bytes
	}
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string, opts ...Option) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	store := &Storage{db: db}
	for _, opt := range opts {
		opt(store)
	}

	// Инициализируем buckets
	if err := store.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

func (s *Storage) update(fn func(tx *bbolt.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.Update(fn)
}

func (s *Storage) view(fn func(tx *bbolt.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.View(fn)
}

func getBucket(tx *bbolt.Tx, name []byte) (*bbolt.Bucket, error) {
	bucket := tx.Bucket(name)
	if bucket == nil {
		return nil, fmt.Errorf("%s bucket not found", name)
	}
	return bucket, nil
}

// putJSON сериализует value и сохраняет по ключу. При quota=true проверяется лимит размера.
func (s *Storage) putJSON(name []byte, key string, value any, quota bool) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", name, err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		bucket, err := getBucket(tx, name)
		if err != nil {
			return err
		}

		if quota && s.maxSize > 0 {
			grow := int64(len(data)) - int64(len(bucket.Get([]byte(key))))
			if grow > 0 && tx.Size()+grow > s.maxSize {
				return apperrors.ErrStorageFull
			}
		}

		if err := bucket.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to save %s record: %w", name, err)
		}
		return nil
	})
}

func (s *Storage) getJSON(name []byte, key string, value any, notFound error) error {
	return s.view(func(tx *bbolt.Tx) error {
		bucket, err := getBucket(tx, name)
		if err != nil {
			return err
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return notFound
		}

		if err := json.Unmarshal(data, value); err != nil {
			return fmt.Errorf("failed to unmarshal %s record: %w", name, err)
		}
		return nil
	})
}

func (s *Storage) deleteKey(name []byte, key string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket, err := getBucket(tx, name)
		if err != nil {
			return err
		}
		return bucket.Delete([]byte(key))
	})
}

// forEachJSON вызывает fn для каждого значения bucket
func (s *Storage) forEachJSON(name []byte, fn func(data []byte) error) error {
	return s.view(func(tx *bbolt.Tx) error {
		bucket, err := getBucket(tx, name)
		if err != nil {
			return err
		}
		return bucket.ForEach(func(_, v []byte) error {
			return fn(v)
		})
	})
}

// clearBucket пересоздает bucket
func (s *Storage) clearBucket(name []byte) error {
	return s.update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(name); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete %s bucket: %w", name, err)
		}
		if _, err := tx.CreateBucket(name); err != nil {
			return fmt.Errorf("failed to create %s bucket: %w", name, err)
		}
		return nil
	})
}
