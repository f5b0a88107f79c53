// Package httpapi はダッシュボードが利用する JSON API を提供します。
package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ogurasousui/staff-directory/internal/core/directory"
	"github.com/ogurasousui/staff-directory/internal/core/notify"
	"github.com/ogurasousui/staff-directory/internal/core/session"
)

// Handler は Record Store と Session Gate を公開操作経由でのみ利用する
// プレゼンテーション層です。
type Handler struct {
	store    *directory.Store
	gate     *session.Gate
	notifier notify.Notifier
	log      *zap.Logger
}

// NewHandler は Handler を生成します。notifier が nil の場合は通知を行いません。
func NewHandler(store *directory.Store, gate *session.Gate, notifier notify.Notifier, log *zap.Logger) *Handler {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{store: store, gate: gate, notifier: notifier, log: log}
}

// Router は全エンドポイントを登録した http.Handler を返します。
// 社員系のルートは認証ゲートを通過した場合のみ到達できます。
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", h.login)
	mux.HandleFunc("POST /api/auth/logout", h.logout)
	mux.HandleFunc("GET /api/auth/me", h.me)

	mux.Handle("GET /api/employees", h.requireAuth(h.listEmployees))
	mux.Handle("POST /api/employees", h.requireAuth(h.createEmployee))
	mux.Handle("PUT /api/employees/{id}", h.requireAuth(h.updateEmployee))
	mux.Handle("DELETE /api/employees/{id}", h.requireAuth(h.deleteEmployee))
	mux.Handle("POST /api/employees/{id}/toggle", h.requireAuth(h.toggleEmployee))
	mux.Handle("GET /api/employees/export", h.requireAuth(h.exportEmployees))
	mux.Handle("GET /api/employees/{id}/export", h.requireAuth(h.exportEmployee))
	mux.Handle("POST /api/profile-image", h.requireAuth(h.encodeProfileImage))

	return mux
}

// requireAuth はナビゲーションごとに Session Gate を参照するゲートです。
func (h *Handler) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := h.gate.Current(); !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}
		next(w, r)
	})
}
