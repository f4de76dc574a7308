package models

import (
	"time"

	"github.com/google/uuid"
)

// EntityType тип синхронизируемой сущности
type EntityType string

const (
	EntityTypeDocument EntityType = "document" // markdown документ
	EntityTypeFolder   EntityType = "folder"   // папка
)

// Valid reports whether t is a known entity type.
func (t EntityType) Valid() bool {
	return t == EntityTypeDocument || t == EntityTypeFolder
}

// EntityKey идентифицирует сущность в очереди и кэшах: пара (id, type)
type EntityKey struct {
	ID   string
	Type EntityType
}

// String returns "type:id", the key layout used in persistent storage.
func (k EntityKey) String() string {
	return string(k.Type) + ":" + k.ID
}

// Entity представляет версионируемую сущность (документ или папку).
// Документ: Name - заголовок, ParentID - папка, Content - markdown текст.
// Папка: Name - имя, ParentID - родительская папка, Color - цвет.
type Entity struct {
	CreatedAt   time.Time  `json:"created_at"`             // CreatedAt время создания (клиент)
	UpdatedAt   time.Time  `json:"updated_at"`             // UpdatedAt время последней локальной мутации
	SyncedAt    *time.Time `json:"synced_at,omitempty"`    // SyncedAt время последней успешной синхронизации, nil если никогда
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`   // DeletedAt soft delete маркер (tombstone)
	ID          string     `json:"id"`                     // ID UUID, назначается клиентом
	Type        EntityType `json:"type"`                   // Type document | folder
	Name        string     `json:"name"`                   // Name заголовок документа или имя папки
	ParentID    string     `json:"parent_id,omitempty"`    // ParentID папка-владелец, пусто для корня
	Content     string     `json:"content,omitempty"`      // Content текст документа
	Color       string     `json:"color,omitempty"`        // Color цвет папки
	SyncVersion int64      `json:"sync_version"`           // SyncVersion 0 = никогда не синхронизировалась
}

// NewDocument creates a never-synced document with a fresh id.
func NewDocument(name, parentID, content string, now time.Time) *Entity {
	return &Entity{
		ID:        uuid.New().String(),
		Type:      EntityTypeDocument,
		Name:      name,
		ParentID:  parentID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewFolder creates a never-synced folder with a fresh id.
func NewFolder(name, parentID, color string, now time.Time) *Entity {
	return &Entity{
		ID:        uuid.New().String(),
		Type:      EntityTypeFolder,
		Name:      name,
		ParentID:  parentID,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Key returns the (id, type) pair of the entity.
func (e *Entity) Key() EntityKey {
	return EntityKey{ID: e.ID, Type: e.Type}
}

// IsDeleted reports whether the entity is tombstoned.
func (e *Entity) IsDeleted() bool {
	return e.DeletedAt != nil
}

// HasUnsyncedChanges reports whether the entity was mutated locally after
// its last successful reconciliation.
func (e *Entity) HasUnsyncedChanges() bool {
	if e.SyncedAt == nil {
		return true
	}
	return e.UpdatedAt.After(*e.SyncedAt)
}

// SamePayload сравнивает только пользовательские данные (без версий и времени)
func (e *Entity) SamePayload(other *Entity) bool {
	if other == nil {
		return false
	}
	return e.Type == other.Type &&
		e.Name == other.Name &&
		e.ParentID == other.ParentID &&
		e.Content == other.Content &&
		e.Color == other.Color &&
		e.IsDeleted() == other.IsDeleted()
}

// MarkSynced stamps the entity as reconciled at the given time.
func (e *Entity) MarkSynced(at time.Time) {
	t := at
	e.SyncedAt = &t
}

// Touch обновляет UpdatedAt после локальной мутации
func (e *Entity) Touch(now time.Time) {
	e.UpdatedAt = now
}

// SoftDelete tombstones the entity.
func (e *Entity) SoftDelete(now time.Time) {
	t := now
	e.DeletedAt = &t
	e.UpdatedAt = now
}

// Clone создает глубокую копию сущности
func (e *Entity) Clone() *Entity {
	if e == nil {
		return nil
	}
	c := *e
	if e.SyncedAt != nil {
		t := *e.SyncedAt
		c.SyncedAt = &t
	}
	if e.DeletedAt != nil {
		t := *e.DeletedAt
		c.DeletedAt = &t
	}
	return &c
}
