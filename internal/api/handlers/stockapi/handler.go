// Package stockapi exposes the synthetic stock endpoints served by the
// stand-alone stock binary.
package stockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bookhaven/bookhaven/internal/api/apperr"
	"github.com/bookhaven/bookhaven/internal/api/httpx"
	"github.com/bookhaven/bookhaven/internal/stock"
)

const (
	ServiceName = "BookHaven Stock API"
	Version     = "1.0.0"
)

// StatusPayload is the liveness descriptor. JSON keys mirror the stock
// check payload's casing.
type StatusPayload struct {
	Service   string    `json:"Service"`
	Status    string    `json:"Status"`
	Version   string    `json:"Version"`
	Endpoints []string  `json:"Endpoints"`
	Timestamp time.Time `json:"Timestamp"`
}

// CheckStock handles GET /api/stock/check/{bookId}. The response is
// synthetic regardless of whether the book exists in the catalog.
func CheckStock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.PathValue("bookId")
		bookID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "bookId must be an integer")
			return
		}
		httpx.OK(w, stock.Check(bookID, time.Now()))
	}
}

// GetStatus handles GET /api/stock/status.
func GetStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.OK(w, StatusPayload{
			Service: ServiceName,
			Status:  "Online",
			Version: Version,
			Endpoints: []string{
				"GET /api/stock/check/{bookId} - Check stock for a book",
				"GET /api/stock/status - API health check",
			},
			Timestamp: time.Now().UTC(),
		})
	}
}

// Router wires the stock API routes on a fresh mux.
func Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stock/check/{bookId}", CheckStock())
	mux.HandleFunc("GET /api/stock/status", GetStatus())
	return mux
}
