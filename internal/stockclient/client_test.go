package stockclient_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bookhaven/bookhaven/internal/stockclient"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestCheckStockParsesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stock/check/3" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		// PascalCase keys, as served by the stock API.
		_, _ = w.Write([]byte(`{"BookId":3,"StockLevel":12,"IsInStock":true,"Status":"High","LastChecked":"2025-03-01T10:00:00Z"}`))
	}))
	defer srv.Close()

	info := stockclient.New(srv.URL, discard()).CheckStock(context.Background(), 3)
	if info == nil {
		t.Fatal("want stock info, got nil")
	}
	if info.BookID != 3 || info.StockLevel != 12 || !info.IsInStock || info.Status != "High" {
		t.Fatalf("bad parse: %+v", info)
	}
}

func TestCheckStockCaseInsensitiveFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"bookid":4,"stocklevel":1,"isinstock":true,"status":"Low"}`))
	}))
	defer srv.Close()

	info := stockclient.New(srv.URL, discard()).CheckStock(context.Background(), 4)
	if info == nil || info.BookID != 4 || info.Status != "Low" {
		t.Fatalf("case-insensitive decode failed: %+v", info)
	}
}

func TestCheckStockSwallowsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if info := stockclient.New(srv.URL, discard()).CheckStock(context.Background(), 1); info != nil {
		t.Fatalf("want nil on 500, got %+v", info)
	}
}

func TestCheckStockSwallowsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := stockclient.New(srv.URL, discard())
	if info := c.CheckStock(context.Background(), 1); info != nil {
		t.Fatalf("want nil on transport error, got %+v", info)
	}
	if c.IsOnline(context.Background()) {
		t.Fatal("want offline on transport error")
	}
}

func TestIsOnline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stock/status" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if !stockclient.New(srv.URL, discard()).IsOnline(context.Background()) {
		t.Fatal("want online")
	}
}
