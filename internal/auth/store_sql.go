package auth

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bookhaven/bookhaven/internal/models"
	"github.com/bookhaven/bookhaven/internal/store/dbx"
)

var ErrUserNotFound = errors.New("user not found")

type SQLStore struct {
	DB dbx.DB
}

func NewSQLStore(db dbx.DB) *SQLStore { return &SQLStore{DB: db} }

// FindUserByEmail loads the identity record plus its role memberships.
func (s *SQLStore) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	const q = `
SELECT id, email, COALESCE(first_name, ''), COALESCE(last_name, ''),
       password_hash, created_at, updated_at
FROM users
WHERE email = $1`
	var u models.User
	err := s.DB.QueryRowContext(ctx, q, email).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName,
		&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}

	rows, err := s.DB.QueryContext(ctx, `
SELECT r.name
FROM user_roles ur
JOIN roles r ON r.id = ur.role_id
WHERE ur.user_id = $1
ORDER BY r.name`, u.ID)
	if err != nil {
		return models.User{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return models.User{}, err
		}
		u.Roles = append(u.Roles, role)
	}
	return u, rows.Err()
}
