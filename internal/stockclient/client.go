// Package stockclient is the catalog app's outbound client for the stock
// API. Failures are logged and swallowed; callers see an absent result or
// an offline flag, never an error.
package stockclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bookhaven/bookhaven/internal/stock"
)

type Client struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

func New(baseURL string, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 5 * time.Second},
		log:     log,
	}
}

// CheckStock returns the stock snapshot for bookID, or nil when the API is
// unreachable, errors, or responds with something unparseable.
func (c *Client) CheckStock(ctx context.Context, bookID int64) *stock.Info {
	url := fmt.Sprintf("%s/api/stock/check/%d", c.baseURL, bookID)
	resp, err := c.get(ctx, url)
	if err != nil {
		c.log.Error("stock check failed", "book_id", bookID, "err", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("stock API returned error", "book_id", bookID, "status", resp.StatusCode)
		return nil
	}

	// encoding/json matches field names case-insensitively, which covers
	// both PascalCase and camelCase payloads.
	var info stock.Info
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		c.log.Error("stock response decode failed", "book_id", bookID, "err", err)
		return nil
	}
	c.log.Info("stock check ok", "book_id", bookID, "status", info.Status)
	return &info
}

// IsOnline reports whether the stock API status endpoint answers with a
// success code. Any failure reads as offline.
func (c *Client) IsOnline(ctx context.Context) bool {
	resp, err := c.get(ctx, c.baseURL+"/api/stock/status")
	if err != nil {
		c.log.Error("stock API status check failed", "err", err)
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.client.Do(req)
}
