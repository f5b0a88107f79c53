package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ogurasousui/staff-directory/internal/core/directory"
	"github.com/ogurasousui/staff-directory/internal/core/session"
)

type errorResponse struct {
	Error string `json:"error"`
}

var errInvalidBody = errors.New("httpapi: invalid request body")

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError はドメインエラーを HTTP ステータスへ対応付けます。
// 検証エラー → 400、対象なし → 404、永続化失敗 → 502。
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, directory.ErrEmployeeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errInvalidBody),
		errors.Is(err, directory.ErrInvalidID),
		errors.Is(err, directory.ErrFullNameRequired),
		errors.Is(err, directory.ErrInvalidGender),
		errors.Is(err, directory.ErrInvalidState),
		errors.Is(err, directory.ErrInvalidDateOfBirth):
		status = http.StatusBadRequest
	case errors.Is(err, directory.ErrPersistence), errors.Is(err, session.ErrPersistence):
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", zap.Error(err))
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}
