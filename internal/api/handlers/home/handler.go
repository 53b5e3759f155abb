// Package home serves the landing page and the stock lookup proxy.
package home

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bookhaven/bookhaven/internal/api/httpx"
	"github.com/bookhaven/bookhaven/internal/stockclient"
	"github.com/bookhaven/bookhaven/internal/web"
)

type Handler struct {
	Stock  *stockclient.Client
	Render *web.Renderer
	Log    *slog.Logger
}

func NewHandler(stock *stockclient.Client, render *web.Renderer, log *slog.Logger) *Handler {
	return &Handler{Stock: stock, Render: render, Log: log}
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.Render.HTML(w, http.StatusOK, "home.html", struct {
		APIOnline bool
	}{APIOnline: h.Stock.IsOnline(r.Context())})
}

// CheckStock proxies a stock lookup for the browser so the page's script
// never talks to the stock API origin directly.
func (h *Handler) CheckStock(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("bookId"), 10, 64)
	if err != nil {
		httpx.ErrorJSON(w, http.StatusBadRequest, "bookId must be a number")
		return
	}

	info := h.Stock.CheckStock(r.Context(), id)
	if info == nil {
		httpx.ErrorJSON(w, http.StatusServiceUnavailable, "stock service unavailable")
		return
	}
	httpx.OK(w, info)
}
