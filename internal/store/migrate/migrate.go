// Package migrate applies the catalog schema on startup. Statements are
// guarded with IF NOT EXISTS so repeated runs are no-ops.
package migrate

import (
	"context"
	"fmt"

	"github.com/bookhaven/bookhaven/internal/store/dbx"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		email         text NOT NULL UNIQUE,
		first_name    text,
		last_name     text,
		password_hash text NOT NULL,
		created_at    timestamptz NOT NULL DEFAULT now(),
		updated_at    timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS roles (
		id   serial PRIMARY KEY,
		name text NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS user_roles (
		user_id uuid NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		role_id int  NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, role_id)
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id            bigserial PRIMARY KEY,
		name          text NOT NULL UNIQUE,
		description   text NOT NULL DEFAULT '',
		display_order int  NOT NULL DEFAULT 0,
		is_active     boolean NOT NULL DEFAULT true
	)`,
	`CREATE TABLE IF NOT EXISTS authors (
		id         bigserial PRIMARY KEY,
		first_name text NOT NULL,
		last_name  text NOT NULL,
		biography  text NOT NULL DEFAULT '',
		birth_date date,
		email      text NOT NULL DEFAULT '',
		website    text NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id             bigserial PRIMARY KEY,
		title          text NOT NULL,
		description    text NOT NULL DEFAULT '',
		isbn           text NOT NULL,
		price          numeric(10,2) NOT NULL CONSTRAINT books_price_check CHECK (price >= 0),
		stock_quantity int NOT NULL DEFAULT 0 CONSTRAINT books_stock_check CHECK (stock_quantity >= 0),
		published_date date,
		is_active      boolean NOT NULL DEFAULT true,
		image_url      text NOT NULL DEFAULT '',
		author_id      bigint NOT NULL REFERENCES authors(id),
		category_id    bigint NOT NULL REFERENCES categories(id),
		version        int NOT NULL DEFAULT 1,
		created_at     timestamptz NOT NULL DEFAULT now(),
		updated_at     timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS books_title_idx ON books (title)`,
	`CREATE INDEX IF NOT EXISTS books_category_id_idx ON books (category_id)`,
	`CREATE INDEX IF NOT EXISTS books_author_id_idx ON books (author_id)`,
}

// Apply runs every schema statement in order.
func Apply(ctx context.Context, db dbx.Execer) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}

// Count reports how many statements Apply will run. Used by tests.
func Count() int { return len(statements) }
