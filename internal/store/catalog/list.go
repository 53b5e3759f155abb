package catalog

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/bookhaven/bookhaven/internal/models"
	"github.com/bookhaven/bookhaven/internal/store/dbx"
)

// List returns the filtered catalog, ordered ascending by title. The whole
// filtered set is materialized; this catalog is small by design.
func List(ctx context.Context, db dbx.Queryer, f Filter) ([]models.Book, error) {
	where := []string{}
	args := []any{}
	i := 1

	if s := strings.TrimSpace(f.Search); s != "" {
		p := "$" + strconv.Itoa(i)
		where = append(where, `(
  b.title ILIKE '%' || `+p+` || '%'
  OR b.description ILIKE '%' || `+p+` || '%'
  OR a.first_name ILIKE '%' || `+p+` || '%'
  OR a.last_name ILIKE '%' || `+p+` || '%'
)`)
		args = append(args, s)
		i++
	}
	if f.CategoryID != nil {
		where = append(where, "b.category_id = $"+strconv.Itoa(i))
		args = append(args, *f.CategoryID)
		i++
	}
	if f.AuthorID != nil {
		where = append(where, "b.author_id = $"+strconv.Itoa(i))
		args = append(args, *f.AuthorID)
		i++
	}
	if f.MinPrice != nil {
		where = append(where, "b.price >= $"+strconv.Itoa(i))
		args = append(args, *f.MinPrice)
		i++
	}
	if f.MaxPrice != nil {
		where = append(where, "b.price <= $"+strconv.Itoa(i))
		args = append(args, *f.MaxPrice)
		i++
	}

	q := "SELECT " + bookColumns + bookJoins + "\n"
	if len(where) > 0 {
		q += "WHERE " + strings.Join(where, " AND ") + "\n"
	}
	q += "ORDER BY b.title ASC"

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(r rowScanner) (models.Book, error) {
	var (
		b         models.Book
		a         models.Author
		c         models.Category
		published sql.NullTime
		birth     sql.NullTime
	)
	err := r.Scan(
		&b.ID, &b.Title, &b.Description, &b.ISBN, &b.Price, &b.StockQuantity,
		&published, &b.IsActive, &b.ImageURL, &b.AuthorID, &b.CategoryID,
		&b.Version, &b.CreatedAt, &b.UpdatedAt,
		&a.ID, &a.FirstName, &a.LastName, &a.Biography, &birth, &a.Email, &a.Website,
		&c.ID, &c.Name, &c.Description, &c.DisplayOrder, &c.IsActive,
	)
	if err != nil {
		return models.Book{}, err
	}
	b.PublishedDate = timeOrZero(published)
	a.BirthDate = timeOrZero(birth)
	b.Author = &a
	b.Category = &c
	return b, nil
}

func timeOrZero(t sql.NullTime) (zero time.Time) {
	if t.Valid {
		return t.Time
	}
	return zero
}
