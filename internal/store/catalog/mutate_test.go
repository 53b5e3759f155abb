package catalog_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bookhaven/bookhaven/internal/models"
	"github.com/bookhaven/bookhaven/internal/store/catalog"
	"github.com/shopspring/decimal"
)

func testBook() *models.Book {
	return &models.Book{
		ID:            5,
		Title:         "Foundation",
		Description:   "galactic empire",
		ISBN:          "978-0553293357",
		Price:         decimal.RequireFromString("15.99"),
		StockQuantity: 40,
		IsActive:      true,
		AuthorID:      4,
		CategoryID:    3,
		Version:       2,
	}
}

func TestUpdateBookOK(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE books(?s:.*)version = version \+ 1(?s:.*)WHERE id = \$11 AND version = \$12`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	b := testBook()
	if err := catalog.UpdateBook(context.Background(), db, b); err != nil {
		t.Fatalf("update: %v", err)
	}
	if b.Version != 3 {
		t.Fatalf("version not bumped: %d", b.Version)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateBookConflictRowStillThere(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE books`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err = catalog.UpdateBook(context.Background(), db, testBook())
	if !errors.Is(err, catalog.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateBookConflictRowGone(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE books`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	err = catalog.UpdateBook(context.Background(), db, testBook())
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteBookIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	// Two deletes of the same id: second matches nothing and still succeeds.
	del := regexp.QuoteMeta(`DELETE FROM books WHERE id = $1`)
	mock.ExpectExec(del).WithArgs(int64(99)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(del).WithArgs(int64(99)).WillReturnResult(sqlmock.NewResult(0, 0))

	for i := 0; i < 2; i++ {
		if err := catalog.DeleteBook(context.Background(), db, 99); err != nil {
			t.Fatalf("delete %d: %v", i+1, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGetBookNotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`WHERE b\.id = \$1`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(bookCols))

	_, err = catalog.GetBook(context.Background(), db, 404)
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
