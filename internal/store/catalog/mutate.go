package catalog

import (
	"context"

	"github.com/bookhaven/bookhaven/internal/models"
	"github.com/bookhaven/bookhaven/internal/store/dbx"
)

// CreateBook inserts b and fills its generated fields.
func CreateBook(ctx context.Context, db dbx.Getter, b *models.Book) error {
	return db.QueryRowContext(ctx, `
INSERT INTO books (title, description, isbn, price, stock_quantity,
                   published_date, is_active, image_url, author_id, category_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, version, created_at, updated_at`,
		b.Title, b.Description, b.ISBN, b.Price, b.StockQuantity,
		b.PublishedDate, b.IsActive, b.ImageURL, b.AuthorID, b.CategoryID,
	).Scan(&b.ID, &b.Version, &b.CreatedAt, &b.UpdatedAt)
}

// UpdateBook applies b under optimistic locking on b.Version. When the
// guarded update matches no row, the loser of the race gets ErrConflict if
// the row still exists and ErrNotFound if it is gone.
func UpdateBook(ctx context.Context, db dbx.DB, b *models.Book) error {
	res, err := db.ExecContext(ctx, `
UPDATE books
SET title = $1, description = $2, isbn = $3, price = $4, stock_quantity = $5,
    published_date = $6, is_active = $7, image_url = $8, author_id = $9,
    category_id = $10, version = version + 1, updated_at = now()
WHERE id = $11 AND version = $12`,
		b.Title, b.Description, b.ISBN, b.Price, b.StockQuantity,
		b.PublishedDate, b.IsActive, b.ImageURL, b.AuthorID, b.CategoryID,
		b.ID, b.Version,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		exists, err := BookExists(ctx, db, b.ID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		return ErrConflict
	}
	b.Version++
	return nil
}

// DeleteBook removes the row if present. Deleting an absent id is a no-op,
// not an error.
func DeleteBook(ctx context.Context, db dbx.Execer, id int64) error {
	_, err := db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	return err
}
