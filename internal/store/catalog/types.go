// Package catalog is the persistence layer for books plus their author and
// category associations.
package catalog

import "github.com/shopspring/decimal"

// Filter holds the optional list predicates. All supplied filters combine
// with AND; the search clause ORs over title, description and author names.
type Filter struct {
	Search     string
	CategoryID *int64
	AuthorID   *int64
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

const bookColumns = `
b.id, b.title, b.description, b.isbn, b.price, b.stock_quantity,
b.published_date, b.is_active, b.image_url, b.author_id, b.category_id,
b.version, b.created_at, b.updated_at,
a.id, a.first_name, a.last_name, a.biography, a.birth_date, a.email, a.website,
c.id, c.name, c.description, c.display_order, c.is_active`

const bookJoins = `
FROM books b
JOIN authors a ON a.id = b.author_id
JOIN categories c ON c.id = b.category_id`
