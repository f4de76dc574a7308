package models

import "time"

// Operation тип отложенной мутации
type Operation string

const (
	OperationUpsert Operation = "upsert"
	OperationDelete Operation = "delete"
)

// OperationFor returns the queue operation matching the entity state.
func OperationFor(e *Entity) Operation {
	if e.IsDeleted() {
		return OperationDelete
	}
	return OperationUpsert
}

// SyncQueueItem представляет отложенную локальную мутацию.
// На каждую пару (ID, Type) в очереди существует ровно один элемент.
type SyncQueueItem struct {
	Timestamp time.Time  `json:"timestamp"` // Timestamp время последнего enqueue
	Data      Entity     `json:"data"`      // Data последнее известное локальное состояние
	ID        string     `json:"id"`
	Type      EntityType `json:"type"`
	Operation Operation  `json:"operation"`
	Retries   int        `json:"retries"` // Retries количество неудачных попыток push
	Seq       uint64     `json:"seq"`     // Seq порядок вставки (последняя мутация - в конце)
}

// Key returns the (id, type) pair of the queued entity.
func (i *SyncQueueItem) Key() EntityKey {
	return EntityKey{ID: i.ID, Type: i.Type}
}

// Clone returns a deep copy of the item.
func (i *SyncQueueItem) Clone() *SyncQueueItem {
	c := *i
	c.Data = *i.Data.Clone()
	return &c
}

// Resolution стратегия разрешения конфликта
type Resolution string

const (
	ResolutionLocal  Resolution = "local"  // перезаписать сервер локальной версией
	ResolutionServer Resolution = "server" // принять серверную версию
	ResolutionBoth   Resolution = "both"   // оставить серверную и создать копию локальной
)

// Valid reports whether r is a known resolution strategy.
func (r Resolution) Valid() bool {
	switch r {
	case ResolutionLocal, ResolutionServer, ResolutionBoth:
		return true
	}
	return false
}

// SyncConflict представляет конфликт между локальной и серверной версией.
// Для одного DocumentID существует не более одного неразрешенного конфликта.
type SyncConflict struct {
	DetectedAt     time.Time  `json:"detected_at"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	LocalDocument  Entity     `json:"local_document"`
	ServerDocument Entity     `json:"server_document"`
	DocumentID     string     `json:"document_id"`
	Type           EntityType `json:"type"`
	Resolution     Resolution `json:"resolution,omitempty"`
}

// Key returns the (id, type) pair the conflict is about.
func (c *SyncConflict) Key() EntityKey {
	return EntityKey{ID: c.DocumentID, Type: c.Type}
}

// IsResolved reports whether a resolution was applied.
func (c *SyncConflict) IsResolved() bool {
	return c.ResolvedAt != nil
}

// Clone returns a deep copy of the conflict.
func (c *SyncConflict) Clone() *SyncConflict {
	cp := *c
	cp.LocalDocument = *c.LocalDocument.Clone()
	cp.ServerDocument = *c.ServerDocument.Clone()
	if c.ResolvedAt != nil {
		t := *c.ResolvedAt
		cp.ResolvedAt = &t
	}
	return &cp
}

// SyncState состояние координатора синхронизации
type SyncState string

const (
	SyncStateIdle    SyncState = "idle"
	SyncStateSyncing SyncState = "syncing"
	SyncStateError   SyncState = "error"
)
