// Package seed populates reference data on startup: roles, the admin
// account, categories, authors and books. Every step is idempotent, so it
// is safe to run on every process start. Steps are order-dependent:
// categories and authors must exist before books.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bookhaven/bookhaven/internal/security/password"
	"github.com/bookhaven/bookhaven/internal/store/dbx"
)

// Run executes all seed steps in order. A missing lookup key while seeding
// books is fatal and propagates, aborting startup.
func Run(ctx context.Context, db dbx.DB, log *slog.Logger) error {
	if err := ensureRoles(ctx, db, log); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	if err := ensureAdmin(ctx, db, log); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := seedCategories(ctx, db, log); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := seedAuthors(ctx, db, log); err != nil {
		return fmt.Errorf("seed authors: %w", err)
	}
	if err := seedBooks(ctx, db, log); err != nil {
		return fmt.Errorf("seed books: %w", err)
	}
	return nil
}

func ensureRoles(ctx context.Context, db dbx.DB, log *slog.Logger) error {
	for _, name := range roleNames {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			return err
		}
	}
	log.Info("roles ensured", "roles", roleNames)
	return nil
}

func ensureAdmin(ctx context.Context, db dbx.DB, log *slog.Logger) error {
	var id string
	err := db.QueryRowContext(ctx, `SELECT id FROM users WHERE email = $1`, AdminEmail).Scan(&id)
	if err == nil {
		log.Info("admin user already exists", "email", AdminEmail)
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := password.Hash(adminPassword)
	if err != nil {
		return err
	}
	err = db.QueryRowContext(ctx, `
INSERT INTO users (email, first_name, last_name, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING id`, AdminEmail, "Admin", "User", hash).Scan(&id)
	if err != nil {
		log.Error("failed to create admin user", "email", AdminEmail, "err", err)
		return err
	}
	if _, err := db.ExecContext(ctx, `
INSERT INTO user_roles (user_id, role_id)
SELECT $1, id FROM roles WHERE name = 'Admin'`, id); err != nil {
		return err
	}
	log.Info("admin user created", "email", AdminEmail)
	return nil
}

func seedCategories(ctx context.Context, db dbx.DB, log *slog.Logger) error {
	any, err := anyRows(ctx, db, "categories")
	if err != nil {
		return err
	}
	if any {
		log.Info("categories already exist, skipping")
		return nil
	}
	for _, c := range categories {
		if _, err := db.ExecContext(ctx, `
INSERT INTO categories (name, description, display_order, is_active)
VALUES ($1, $2, $3, $4)`, c.Name, c.Description, c.DisplayOrder, c.IsActive); err != nil {
			return err
		}
	}
	log.Info("categories seeded", "count", len(categories))
	return nil
}

func seedAuthors(ctx context.Context, db dbx.DB, log *slog.Logger) error {
	any, err := anyRows(ctx, db, "authors")
	if err != nil {
		return err
	}
	if any {
		log.Info("authors already exist, skipping")
		return nil
	}
	for _, a := range authors {
		if _, err := db.ExecContext(ctx, `
INSERT INTO authors (first_name, last_name, biography, birth_date, email, website)
VALUES ($1, $2, $3, $4, $5, $6)`,
			a.FirstName, a.LastName, a.Biography, a.BirthDate, a.Email, a.Website); err != nil {
			return err
		}
	}
	log.Info("authors seeded", "count", len(authors))
	return nil
}

func seedBooks(ctx context.Context, db dbx.DB, log *slog.Logger) error {
	any, err := anyRows(ctx, db, "books")
	if err != nil {
		return err
	}
	if any {
		log.Info("books already exist, skipping")
		return nil
	}

	authorIDs, err := idsBy(ctx, db, `SELECT last_name, id FROM authors`)
	if err != nil {
		return err
	}
	categoryIDs, err := idsBy(ctx, db, `SELECT name, id FROM categories`)
	if err != nil {
		return err
	}

	for _, b := range books {
		authorID, ok := authorIDs[b.AuthorSurname]
		if !ok {
			return fmt.Errorf("seed books: no author with surname %q", b.AuthorSurname)
		}
		categoryID, ok := categoryIDs[b.CategoryName]
		if !ok {
			return fmt.Errorf("seed books: no category named %q", b.CategoryName)
		}
		if _, err := db.ExecContext(ctx, `
INSERT INTO books (title, description, isbn, price, stock_quantity,
                   published_date, is_active, image_url, author_id, category_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			b.Title, b.Description, b.ISBN, b.Price, b.StockQuantity,
			b.PublishedDate, b.IsActive, b.ImageURL, authorID, categoryID); err != nil {
			return err
		}
	}
	log.Info("books seeded", "count", len(books))
	return nil
}

func anyRows(ctx context.Context, db dbx.Getter, table string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+`)`).Scan(&exists)
	return exists, err
}

func idsBy(ctx context.Context, db dbx.Queryer, query string) (map[string]int64, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int64{}
	for rows.Next() {
		var key string
		var id int64
		if err := rows.Scan(&key, &id); err != nil {
			return nil, err
		}
		out[key] = id
	}
	return out, rows.Err()
}
