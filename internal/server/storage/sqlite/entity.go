package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/mdkeeper/internal/models"
	"github.com/iudanet/mdkeeper/internal/server/storage"
)

const entityColumns = `id, type, name, parent_id, content, color, sync_version, created_at, updated_at, deleted_at`

type rowScanner interface {
	Scan(dest ...any) error
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PushEntity stores e if the stored version equals expectedVersion
func (s *Storage) PushEntity(ctx context.Context, userID string, e *models.Entity, expectedVersion int64) (*models.Entity, error) {
	var stored *models.Entity

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := getEntity(ctx, tx, userID, e.Key())
		switch {
		case errors.Is(err, storage.ErrEntityNotFound):
			if expectedVersion > 0 {
				return storage.ErrEntityGone
			}
		case err != nil:
			return err
		case current.SyncVersion != expectedVersion:
			return &storage.ConflictError{Current: current, ExpectedVersion: expectedVersion}
		}

		var revision int64
		if err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(revision), 0) + 1 FROM entities WHERE user_id = ?`, userID,
		).Scan(&revision); err != nil {
			return fmt.Errorf("failed to allocate revision: %w", err)
		}

		next := e.Clone()
		next.SyncedAt = nil
		next.SyncVersion = expectedVersion + 1
		if current != nil {
			next.CreatedAt = current.CreatedAt
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO entities (user_id, `+entityColumns+`, revision)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (user_id, type, id) DO UPDATE SET
				name = excluded.name,
				parent_id = excluded.parent_id,
				content = excluded.content,
				color = excluded.color,
				sync_version = excluded.sync_version,
				updated_at = excluded.updated_at,
				deleted_at = excluded.deleted_at,
				revision = excluded.revision`,
			userID, next.ID, string(next.Type), next.Name, next.ParentID, next.Content, next.Color,
			next.SyncVersion, next.CreatedAt.UnixNano(), next.UpdatedAt.UnixNano(), nullTime(next.DeletedAt),
			revision,
		)
		if err != nil {
			return fmt.Errorf("failed to store entity: %w", err)
		}

		stored = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// GetEntity retrieves an entity including tombstones
func (s *Storage) GetEntity(ctx context.Context, userID string, key models.EntityKey) (*models.Entity, error) {
	return getEntity(ctx, s.db, userID, key)
}

// PullSince returns entities changed after revision and the latest revision
func (s *Storage) PullSince(ctx context.Context, userID string, revision int64) ([]*models.Entity, int64, error) {
	var latest int64
	if err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(revision), 0) FROM entities WHERE user_id = ?`, userID,
	).Scan(&latest); err != nil {
		return nil, 0, fmt.Errorf("failed to get revision: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entityColumns+` FROM entities WHERE user_id = ? AND revision > ? ORDER BY revision`,
		userID, revision,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query entities: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	entities := make([]*models.Entity, 0)
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, 0, err
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate entities: %w", err)
	}

	return entities, latest, nil
}

func getEntity(ctx context.Context, q queryRower, userID string, key models.EntityKey) (*models.Entity, error) {
	row := q.QueryRowContext(ctx,
		`SELECT `+entityColumns+` FROM entities WHERE user_id = ? AND type = ? AND id = ?`,
		userID, string(key.Type), key.ID,
	)
	e, err := scanEntity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrEntityNotFound
	}
	return e, err
}

func scanEntity(row rowScanner) (*models.Entity, error) {
	var (
		e                    models.Entity
		typ                  string
		createdAt, updatedAt int64
		deletedAt            sql.NullInt64
	)
	err := row.Scan(&e.ID, &typ, &e.Name, &e.ParentID, &e.Content, &e.Color,
		&e.SyncVersion, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan entity: %w", err)
	}

	e.Type = models.EntityType(typ)
	e.CreatedAt = time.Unix(0, createdAt).UTC()
	e.UpdatedAt = time.Unix(0, updatedAt).UTC()
	if deletedAt.Valid {
		t := time.Unix(0, deletedAt.Int64).UTC()
		e.DeletedAt = &t
	}
	return &e, nil
}

func nullTime(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixNano(), Valid: true}
}
