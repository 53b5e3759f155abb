package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bookhaven/bookhaven/internal/models"
	"github.com/bookhaven/bookhaven/internal/store/dbx"
)

// GetBook fetches a single book with its author and category.
func GetBook(ctx context.Context, db dbx.Getter, id int64) (models.Book, error) {
	row := db.QueryRowContext(ctx, "SELECT "+bookColumns+bookJoins+"\nWHERE b.id = $1", id)
	b, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, ErrNotFound
	}
	return b, err
}

// BookExists reports whether a book row with id is present.
func BookExists(ctx context.Context, db dbx.Getter, id int64) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
