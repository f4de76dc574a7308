// Package conflict содержит чистые функции для работы с конфликтами синхронизации:
// обнаружение, построчный diff, hunks для просмотра и план разрешения.
package conflict

import "github.com/iudanet/mdkeeper/internal/models"

// Detect решает, является ли отказ сервера настоящим конфликтом.
//
// Конфликт есть только если сервер ушел вперед, локальная копия содержит
// несинхронизированные правки и данные действительно различаются.
// Во всех остальных случаях возвращается nil: серверную версию можно
// принять без потери локальной работы (clean pull).
func Detect(local, server *models.Entity) *models.SyncConflict {
	if local == nil || server == nil {
		return nil
	}
	if server.SyncVersion <= local.SyncVersion {
		return nil
	}
	if !local.HasUnsyncedChanges() {
		return nil
	}
	if local.SamePayload(server) {
		return nil
	}

	return &models.SyncConflict{
		DocumentID:     local.ID,
		Type:           local.Type,
		LocalDocument:  *local.Clone(),
		ServerDocument: *server.Clone(),
	}
}
