// Package models holds the catalog domain records shared by the stores and
// handlers.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Book struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	ISBN          string          `json:"isbn"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	PublishedDate time.Time       `json:"published_date"`
	IsActive      bool            `json:"is_active"`
	ImageURL      string          `json:"image_url"`
	AuthorID      int64           `json:"author_id"`
	CategoryID    int64           `json:"category_id"`

	// Version backs optimistic locking on updates.
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Populated on reads that join the related rows.
	Author   *Author   `json:"author,omitempty"`
	Category *Category `json:"category,omitempty"`
}

type Author struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Biography string    `json:"biography"`
	BirthDate time.Time `json:"birth_date"`
	Email     string    `json:"email"`
	Website   string    `json:"website"`
}

// FullName is the display name used in selectors and search results.
func (a Author) FullName() string { return a.FirstName + " " + a.LastName }

type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

// User is the identity record. Roles come from the role-membership table.
type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
