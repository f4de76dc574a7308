package boltdb

import (
	"context"

	"github.com/iudanet/mdkeeper/internal/client/storage"
)

const authKey = "current"

// SaveAuth stores authentication data
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	return s.putJSON(bucketAuth, authKey, auth, false)
}

// GetAuth retrieves stored authentication data
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	auth := &storage.AuthData{}
	if err := s.getJSON(bucketAuth, authKey, auth, storage.ErrAuthNotFound); err != nil {
		return nil, err
	}
	return auth, nil
}

// DeleteAuth removes stored authentication data (logout).
// Returns ErrAuthNotFound if there is nothing to delete.
func (s *Storage) DeleteAuth(ctx context.Context) error {
	if _, err := s.GetAuth(ctx); err != nil {
		return err
	}
	return s.deleteKey(bucketAuth, authKey)
}
