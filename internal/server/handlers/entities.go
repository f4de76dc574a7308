package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/mdkeeper/internal/server/storage"
	"github.com/iudanet/mdkeeper/internal/validation"
	"github.com/iudanet/mdkeeper/pkg/api"
)

// запас на JSON обертку и экранирование поверх максимального размера документа
const bodyOverhead = 64 << 10

// EntityHandler обслуживает push и pull документов и папок
type EntityHandler struct {
	logger     *slog.Logger
	storage    storage.EntityStorage
	maxContent int
}

// NewEntityHandler создает handler. maxContent <= 0 отключает лимит размера.
func NewEntityHandler(logger *slog.Logger, entityStorage storage.EntityStorage, maxContent int) *EntityHandler {
	return &EntityHandler{
		logger:     logger,
		storage:    entityStorage,
		maxContent: maxContent,
	}
}

// Push обрабатывает PUT /api/v1/entities/{type}/{id}
func (h *EntityHandler) Push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user id not found in context")
		WriteError(h.logger, w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	body := r.Body
	if h.maxContent > 0 {
		// json экранирование раздувает текст максимум в 6 раз (\u00XX)
		body = http.MaxBytesReader(w, r.Body, int64(h.maxContent)*6+bodyOverhead)
	}

	var req api.PushRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(h.logger, w, http.StatusRequestEntityTooLarge, "request body too large", api.CodeQuotaExceeded)
			return
		}
		WriteError(h.logger, w, http.StatusBadRequest, "invalid request body", api.CodeInvalidEntity)
		return
	}

	entity := req.Entity.ToEntity()
	if string(entity.Type) != r.PathValue("type") || entity.ID != r.PathValue("id") {
		WriteError(h.logger, w, http.StatusBadRequest, "entity does not match request path", api.CodeInvalidEntity)
		return
	}
	if req.ExpectedVersion < 0 {
		WriteError(h.logger, w, http.StatusBadRequest, "expected_version must not be negative", api.CodeInvalidEntity)
		return
	}

	if err := validation.ValidateEntity(entity, h.maxContent); err != nil {
		if errors.Is(err, validation.ErrContentTooLong) {
			h.logger.WarnContext(ctx, "document exceeds size limit",
				slog.String("user_id", userID),
				slog.String("id", entity.ID),
				slog.Int("size", len(entity.Content)))
			WriteError(h.logger, w, http.StatusRequestEntityTooLarge, err.Error(), api.CodeQuotaExceeded)
			return
		}
		WriteError(h.logger, w, http.StatusBadRequest, err.Error(), api.CodeInvalidEntity)
		return
	}

	stored, err := h.storage.PushEntity(ctx, userID, entity, req.ExpectedVersion)
	if err != nil {
		var conflict *storage.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.InfoContext(ctx, "version conflict",
				slog.String("user_id", userID),
				slog.String("id", entity.ID),
				slog.Int64("expected", req.ExpectedVersion),
				slog.Int64("stored", conflict.Current.SyncVersion))
			server := api.FromEntity(conflict.Current)
			WriteJSON(h.logger, w, http.StatusConflict, api.ErrorResponse{
				Error:        http.StatusText(http.StatusConflict),
				Message:      err.Error(),
				Code:         api.CodeVersionConflict,
				ServerEntity: &server,
			})
		case errors.Is(err, storage.ErrEntityGone):
			WriteError(h.logger, w, http.StatusGone, "entity no longer exists on server", api.CodeEntityGone)
		default:
			h.logger.ErrorContext(ctx, "failed to push entity", slog.Any("error", err))
			WriteError(h.logger, w, http.StatusInternalServerError, "internal server error", "")
		}
		return
	}

	h.logger.DebugContext(ctx, "entity stored",
		slog.String("user_id", userID),
		slog.String("type", string(stored.Type)),
		slog.String("id", stored.ID),
		slog.Int64("version", stored.SyncVersion))

	WriteJSON(h.logger, w, http.StatusOK, api.PushResponse{Entity: api.FromEntity(stored)})
}

// Pull обрабатывает GET /api/v1/entities?since=N
func (h *EntityHandler) Pull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user id not found in context")
		WriteError(h.logger, w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var since int64
	if raw := r.URL.Query().Get("since"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			WriteError(h.logger, w, http.StatusBadRequest, "invalid since parameter", "")
			return
		}
		since = v
	}

	entities, revision, err := h.storage.PullSince(ctx, userID, since)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to pull entities", slog.Any("error", err))
		WriteError(h.logger, w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	resp := api.PullResponse{
		Entities: make([]api.EntityDTO, 0, len(entities)),
		Revision: revision,
	}
	for _, e := range entities {
		resp.Entities = append(resp.Entities, api.FromEntity(e))
	}

	h.logger.DebugContext(ctx, "pull served",
		slog.String("user_id", userID),
		slog.Int64("since", since),
		slog.Int("count", len(resp.Entities)))

	WriteJSON(h.logger, w, http.StatusOK, resp)
}
