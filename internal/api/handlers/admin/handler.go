// Package admin serves the role-gated dashboard.
package admin

import (
	"log/slog"
	"net/http"

	"github.com/bookhaven/bookhaven/internal/api/apperr"
	adminstore "github.com/bookhaven/bookhaven/internal/store/admin"
	"github.com/bookhaven/bookhaven/internal/web"
)

type Handler struct {
	Store  *adminstore.Store
	Render *web.Renderer
	Log    *slog.Logger
}

func NewHandler(store *adminstore.Store, render *web.Renderer, log *slog.Logger) *Handler {
	return &Handler{Store: store, Render: render, Log: log}
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Store.Counts(r.Context())
	if err != nil {
		h.Log.Error("admin counts failed", "err", err)
		apperr.HandleDBError(w, r, err, "Failed to load dashboard")
		return
	}
	h.Render.HTML(w, http.StatusOK, "admin.html", struct {
		Counts adminstore.Counts
	}{Counts: counts})
}
