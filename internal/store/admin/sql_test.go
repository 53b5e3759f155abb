package adminstore_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	adminstore "github.com/bookhaven/bookhaven/internal/store/admin"
)

func TestCounts(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	store := adminstore.New(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).WillReturnRows(
		sqlmock.NewRows([]string{"users", "books", "authors", "categories"}).
			AddRow(1, 5, 5, 5),
	)

	c, err := store.Counts(context.Background())
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if c.Users != 1 || c.Books != 5 || c.Authors != 5 || c.Categories != 5 {
		t.Fatalf("unexpected counts: %+v", c)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
