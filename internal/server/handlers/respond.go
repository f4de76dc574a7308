package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/mdkeeper/pkg/api"
)

// WriteJSON отправляет JSON ответ
func WriteJSON(logger *slog.Logger, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// WriteError отправляет api.ErrorResponse; code может быть пустым
func WriteError(logger *slog.Logger, w http.ResponseWriter, statusCode int, message, code string) {
	WriteJSON(logger, w, statusCode, api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    code,
	})
}
