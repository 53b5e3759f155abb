// Package stock derives synthetic per-book stock levels. The numbers are
// seeded by the book id and are intentionally unrelated to the persisted
// stock_quantity column.
package stock

import (
	"math/rand"
	"time"
)

const seedFactor = 42

// Status labels, thresholded on the generated level.
const (
	StatusHigh = "High"
	StatusLow  = "Low"
	StatusOut  = "Out of Stock"
)

// Info is the transient stock snapshot for a single book. It is recomputed
// on every request and never persisted. JSON keys match the wire contract
// of the stock API.
type Info struct {
	BookID      int64     `json:"BookId"`
	StockLevel  int       `json:"StockLevel"`
	IsInStock   bool      `json:"IsInStock"`
	Status      string    `json:"Status"`
	LastChecked time.Time `json:"LastChecked"`
}

// Check computes the stock snapshot for bookID at the given instant.
// The level is drawn from a PRNG seeded with bookID*42, so the same id
// always yields the same level within a build. Any id is valid, including
// zero and negative values.
func Check(bookID int64, now time.Time) Info {
	level := Level(bookID)
	return Info{
		BookID:      bookID,
		StockLevel:  level,
		IsInStock:   level > 0,
		Status:      StatusFor(level),
		LastChecked: now.UTC(),
	}
}

// Level returns the deterministic stock level for bookID, in [0,50).
func Level(bookID int64) int {
	return rand.New(rand.NewSource(bookID * seedFactor)).Intn(50)
}

// StatusFor maps a level to its label: >10 High, >0 Low, else Out of Stock.
func StatusFor(level int) string {
	switch {
	case level > 10:
		return StatusHigh
	case level > 0:
		return StatusLow
	default:
		return StatusOut
	}
}
