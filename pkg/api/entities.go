package api

import (
	"time"

	"github.com/iudanet/mdkeeper/internal/models"
)

// Коды ошибок в ErrorResponse.Code
const (
	CodeVersionConflict = "version_conflict" // 409, в ответе server_entity
	CodeEntityGone      = "entity_gone"      // 410
	CodeQuotaExceeded   = "quota_exceeded"   // 413
	CodeInvalidEntity   = "invalid_entity"   // 400
)

// EntityDTO документ или папка в формате API
type EntityDTO struct {
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Name        string     `json:"name"`
	ParentID    string     `json:"parent_id,omitempty"`
	Content     string     `json:"content,omitempty"`
	Color       string     `json:"color,omitempty"`
	SyncVersion int64      `json:"sync_version"`
}

// PushRequest тело PUT /api/v1/entities/{type}/{id}
type PushRequest struct {
	Entity          EntityDTO `json:"entity"`
	ExpectedVersion int64     `json:"expected_version"` // версия, на которой основана правка
}

// PushResponse ответ на принятую запись, sync_version = expected_version + 1
type PushResponse struct {
	Entity EntityDTO `json:"entity"`
}

// PullResponse ответ GET /api/v1/entities?since=N
type PullResponse struct {
	Entities []EntityDTO `json:"entities"`
	Revision int64       `json:"revision"` // курсор для следующего запроса
}

// FromEntity converts a model to its wire form.
func FromEntity(e *models.Entity) EntityDTO {
	dto := EntityDTO{
		ID:          e.ID,
		Type:        string(e.Type),
		Name:        e.Name,
		ParentID:    e.ParentID,
		Content:     e.Content,
		Color:       e.Color,
		SyncVersion: e.SyncVersion,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.DeletedAt != nil {
		t := *e.DeletedAt
		dto.DeletedAt = &t
	}
	return dto
}

// ToEntity converts the wire form back to a model. SyncedAt is client-only
// and stays nil.
func (d EntityDTO) ToEntity() *models.Entity {
	e := &models.Entity{
		ID:          d.ID,
		Type:        models.EntityType(d.Type),
		Name:        d.Name,
		ParentID:    d.ParentID,
		Content:     d.Content,
		Color:       d.Color,
		SyncVersion: d.SyncVersion,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.DeletedAt != nil {
		t := *d.DeletedAt
		e.DeletedAt = &t
	}
	return e
}
