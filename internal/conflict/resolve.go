package conflict

import (
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/mdkeeper/internal/models"
)

// LocalCopySuffix добавляется к имени копии при разрешении "both"
const LocalCopySuffix = " (local copy)"

var (
	// ErrUnknownResolution неизвестная стратегия разрешения
	ErrUnknownResolution = errors.New("unknown conflict resolution")
	// ErrConflictMismatch локальная и серверная версии относятся к разным сущностям
	ErrConflictMismatch = errors.New("local and server versions describe different entities")
)

// ResolutionPlan описывает мутации, которые нужно применить для разрешения
// конфликта. Plan не имеет побочных эффектов, применяет план координатор.
type ResolutionPlan struct {
	// Save сущности для записи в локальное хранилище
	Save []*models.Entity
	// Enqueue сущности, которые нужно поставить в очередь на push
	Enqueue []*models.Entity
	// Cache серверная версия для ServerDataCache
	Cache *models.Entity
	// DropQueued удалить элемент очереди исходной сущности
	DropQueued bool
}

// Plan строит план разрешения конфликта.
//
//   - local: локальные данные поверх серверной версии, push перезапишет сервер
//   - server: принимается серверная версия, локальная очередь сбрасывается
//   - both: серверная версия остается под исходным id, локальные данные
//     сохраняются как новая сущность с новым id
func Plan(c *models.SyncConflict, res models.Resolution, now time.Time, newID func() string) (ResolutionPlan, error) {
	if c == nil {
		return ResolutionPlan{}, errors.New("nil conflict")
	}
	if !res.Valid() {
		return ResolutionPlan{}, fmt.Errorf("%w: %q", ErrUnknownResolution, res)
	}

	local := c.LocalDocument.Clone()
	server := c.ServerDocument.Clone()
	if local.ID != server.ID || local.Type != server.Type {
		return ResolutionPlan{}, ErrConflictMismatch
	}

	plan := ResolutionPlan{Cache: server.Clone()}

	switch res {
	case models.ResolutionLocal:
		rebased := local.Clone()
		rebased.SyncVersion = server.SyncVersion
		rebased.CreatedAt = server.CreatedAt
		rebased.Touch(now)
		plan.Save = []*models.Entity{rebased}
		plan.Enqueue = []*models.Entity{rebased.Clone()}

	case models.ResolutionServer:
		adopted := server.Clone()
		adopted.MarkSynced(now)
		plan.Save = []*models.Entity{adopted}
		plan.DropQueued = true

	case models.ResolutionBoth:
		adopted := server.Clone()
		adopted.MarkSynced(now)

		cp := &models.Entity{
			ID:        newID(),
			Type:      local.Type,
			Name:      local.Name + LocalCopySuffix,
			ParentID:  local.ParentID,
			Content:   local.Content,
			Color:     local.Color,
			CreatedAt: now,
			UpdatedAt: now,
		}
		plan.Save = []*models.Entity{adopted, cp}
		plan.Enqueue = []*models.Entity{cp.Clone()}
		plan.DropQueued = true
	}

	return plan, nil
}
