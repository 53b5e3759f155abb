package apperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgconn"
)

// Constraint names from the catalog schema, mapped to the offending field.
var constraintField = map[string]string{
	"books_isbn_key":          "isbn",
	"books_author_id_fkey":    "author_id",
	"books_category_id_fkey":  "category_id",
	"books_price_check":       "price",
	"books_stock_check":       "stock_quantity",
	"categories_name_key":     "name",
	"users_email_key":         "email",
	"user_roles_user_id_fkey": "user_id",
	"user_roles_role_id_fkey": "role_id",
}

func fieldFromDetail(detail string) string {
	for _, k := range []string{"isbn", "title", "author_id", "category_id", "price", "email", "id"} {
		if strings.Contains(detail, k) {
			return k
		}
	}
	return ""
}

// FromPG maps a pgconn.PgError to a Problem. Returns (Problem, true) if mapped.
func FromPG(err error) (Problem, bool) {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return Problem{}, false
	}

	p := Problem{
		Title:  "Database error",
		Status: http.StatusInternalServerError,
		Detail: strings.TrimSpace(pg.Message),
	}

	field := constraintField[pg.ConstraintName]
	if field == "" && pg.Detail != "" {
		field = fieldFromDetail(pg.Detail)
	}

	switch pg.Code {
	case "23505": // unique_violation
		p.Status = http.StatusConflict
		p.Title = "Conflict"
		if field == "" {
			field = "resource"
		}
		p.FieldErrors = []FieldError{{Field: field, Code: "unique", Message: "value already exists"}}
		p.Detail = ""
	case "23503": // foreign_key_violation
		p.Status = http.StatusConflict
		p.Title = "Conflict"
		if field == "" {
			field = "resource"
		}
		p.FieldErrors = []FieldError{{Field: field, Code: "fk", Message: "referenced record is missing or in use"}}
		p.Detail = ""
	case "23502": // not_null_violation
		p.Status = http.StatusBadRequest
		p.Title = "Bad Request"
		if field == "" && pg.ColumnName != "" {
			field = pg.ColumnName
		}
		if field == "" {
			field = "field"
		}
		p.FieldErrors = []FieldError{{Field: field, Code: "not_null", Message: "required field is missing"}}
		p.Detail = ""
	case "23514": // check_violation
		p.Status = http.StatusUnprocessableEntity
		p.Title = "Unprocessable Entity"
		if field == "" {
			field = "field"
		}
		p.FieldErrors = []FieldError{{Field: field, Code: "check", Message: "constraint failed"}}
		p.Detail = ""
	case "22001": // string_data_right_truncation
		p.Status = http.StatusBadRequest
		p.Title = "Bad Request"
		if field == "" {
			field = "field"
		}
		p.FieldErrors = []FieldError{{Field: field, Code: "too_long", Message: "value is too long"}}
		p.Detail = ""
	case "40001", "40P01": // serialization_failure, deadlock_detected
		p.Status = http.StatusConflict
		p.Title = "Conflict"
		p.Detail = "transaction conflict, please retry"
		p.Retryable = true
	default:
		p.Detail = ""
	}

	return p, true
}

// HandleDBError maps err to a Problem and writes it. Returns true if handled.
func HandleDBError(w http.ResponseWriter, r *http.Request, err error, fallbackTitle string) bool {
	if err == nil {
		return false
	}
	if p, ok := FromPG(err); ok {
		Write(w, r, p)
		return true
	}
	Write(w, r, Problem{Status: http.StatusInternalServerError, Title: fallbackTitle})
	return true
}
