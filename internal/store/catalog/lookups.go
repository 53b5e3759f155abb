package catalog

import (
	"context"
	"database/sql"

	"github.com/bookhaven/bookhaven/internal/models"
	"github.com/bookhaven/bookhaven/internal/store/dbx"
)

// ListCategories returns all categories ordered for display. Used to build
// the filter selectors and admin counts.
func ListCategories(ctx context.Context, db dbx.Queryer) ([]models.Category, error) {
	rows, err := db.QueryContext(ctx, `
SELECT id, name, description, display_order, is_active
FROM categories
ORDER BY display_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.DisplayOrder, &c.IsActive); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListAuthors returns all authors ordered by surname.
func ListAuthors(ctx context.Context, db dbx.Queryer) ([]models.Author, error) {
	rows, err := db.QueryContext(ctx, `
SELECT id, first_name, last_name, biography, birth_date, email, website
FROM authors
ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Author
	for rows.Next() {
		var (
			a     models.Author
			birth sql.NullTime
		)
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Biography, &birth, &a.Email, &a.Website); err != nil {
			return nil, err
		}
		a.BirthDate = timeOrZero(birth)
		out = append(out, a)
	}
	return out, rows.Err()
}
