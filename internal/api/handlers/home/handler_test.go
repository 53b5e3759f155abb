package home_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bookhaven/bookhaven/internal/api/handlers/home"
	"github.com/bookhaven/bookhaven/internal/api/handlers/stockapi"
	"github.com/bookhaven/bookhaven/internal/stockclient"
	"github.com/bookhaven/bookhaven/internal/web"
)

func newHandler(t *testing.T, stockURL string) *home.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	render, err := web.NewRenderer(log)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	return home.NewHandler(stockclient.New(stockURL, log), render, log)
}

func TestIndexShowsOnlineBadge(t *testing.T) {
	srv := httptest.NewServer(stockapi.Router())
	defer srv.Close()
	h := newHandler(t, srv.URL)

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Online") {
		t.Errorf("body missing online badge")
	}
}

func TestIndexShowsOfflineBadge(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	h := newHandler(t, srv.URL)

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !strings.Contains(rec.Body.String(), "Offline") {
		t.Errorf("body missing offline badge")
	}
}

func TestCheckStockProxies(t *testing.T) {
	srv := httptest.NewServer(stockapi.Router())
	defer srv.Close()
	h := newHandler(t, srv.URL)

	rec := httptest.NewRecorder()
	h.CheckStock(rec, httptest.NewRequest(http.MethodGet, "/stock/check?bookId=3", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["BookId"] != float64(3) {
		t.Errorf("BookId = %v, want 3", got["BookId"])
	}
}

func TestCheckStockBadID(t *testing.T) {
	h := newHandler(t, "http://localhost:0")

	rec := httptest.NewRecorder()
	h.CheckStock(rec, httptest.NewRequest(http.MethodGet, "/stock/check?bookId=abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCheckStockServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	h := newHandler(t, srv.URL)

	rec := httptest.NewRecorder()
	h.CheckStock(rec, httptest.NewRequest(http.MethodGet, "/stock/check?bookId=3", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
