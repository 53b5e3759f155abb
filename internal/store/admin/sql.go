// Package adminstore backs the admin dashboard with aggregate counts.
package adminstore

import (
	"context"

	"github.com/bookhaven/bookhaven/internal/store/dbx"
)

type Counts struct {
	Users      int
	Books      int
	Authors    int
	Categories int
}

type Store struct{ db dbx.Getter }

func New(db dbx.Getter) *Store { return &Store{db: db} }

func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	err := s.db.QueryRowContext(ctx, `
SELECT
  (SELECT COUNT(*) FROM users),
  (SELECT COUNT(*) FROM books),
  (SELECT COUNT(*) FROM authors),
  (SELECT COUNT(*) FROM categories)`).
		Scan(&c.Users, &c.Books, &c.Authors, &c.Categories)
	return c, err
}
