package books

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bookhaven/bookhaven/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// BookForm mirrors the create/edit form fields. Price and date stay strings
// until validation so bad input can be echoed back verbatim.
type BookForm struct {
	ID            int64
	Title         string `validate:"required,max=200"`
	Description   string `validate:"max=4000"`
	ISBN          string `validate:"required,max=20"`
	Price         string `validate:"required"`
	StockQuantity int    `validate:"min=0"`
	PublishedDate string
	IsActive      bool
	ImageURL      string `validate:"omitempty,max=300"`
	AuthorID      int64  `validate:"required"`
	CategoryID    int64  `validate:"required"`
	Version       int
}

func parseBookForm(r *http.Request) BookForm {
	_ = r.ParseForm()
	return BookForm{
		ID:            parseInt64(r.PostFormValue("id")),
		Title:         strings.TrimSpace(r.PostFormValue("title")),
		Description:   strings.TrimSpace(r.PostFormValue("description")),
		ISBN:          strings.TrimSpace(r.PostFormValue("isbn")),
		Price:         strings.TrimSpace(r.PostFormValue("price")),
		StockQuantity: int(parseInt64(r.PostFormValue("stockQuantity"))),
		PublishedDate: strings.TrimSpace(r.PostFormValue("publishedDate")),
		IsActive:      r.PostFormValue("isActive") != "",
		ImageURL:      strings.TrimSpace(r.PostFormValue("imageUrl")),
		AuthorID:      parseInt64(r.PostFormValue("authorId")),
		CategoryID:    parseInt64(r.PostFormValue("categoryId")),
		Version:       int(parseInt64(r.PostFormValue("version"))),
	}
}

func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

// check runs struct validation plus the price/date parses, returning field
// errors keyed by form field and the converted record when clean.
func (h *Handler) check(f BookForm) (models.Book, map[string]string) {
	errs := map[string]string{}

	if err := h.validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs[fe.Field()] = msgFor(fe)
			}
		} else {
			errs["form"] = "invalid input"
		}
	}

	var price decimal.Decimal
	if f.Price != "" {
		p, err := decimal.NewFromString(f.Price)
		switch {
		case err != nil:
			errs["Price"] = "must be a decimal number"
		case p.IsNegative():
			errs["Price"] = "must not be negative"
		default:
			price = p
		}
	}

	var published time.Time
	if f.PublishedDate != "" {
		d, err := time.Parse("2006-01-02", f.PublishedDate)
		if err != nil {
			errs["PublishedDate"] = "must be a date (YYYY-MM-DD)"
		} else {
			published = d
		}
	}

	if len(errs) > 0 {
		return models.Book{}, errs
	}

	imageURL := f.ImageURL
	if imageURL == "" {
		imageURL = defaultImageURL(f.Title)
	}

	return models.Book{
		ID:            f.ID,
		Title:         f.Title,
		Description:   f.Description,
		ISBN:          f.ISBN,
		Price:         price,
		StockQuantity: f.StockQuantity,
		PublishedDate: published,
		IsActive:      f.IsActive,
		ImageURL:      imageURL,
		AuthorID:      f.AuthorID,
		CategoryID:    f.CategoryID,
		Version:       f.Version,
	}, nil
}

func msgFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "is too long"
	case "min":
		return "must not be negative"
	default:
		return "is invalid"
	}
}

func formFromBook(b models.Book) BookForm {
	published := ""
	if !b.PublishedDate.IsZero() {
		published = b.PublishedDate.Format("2006-01-02")
	}
	return BookForm{
		ID:            b.ID,
		Title:         b.Title,
		Description:   b.Description,
		ISBN:          b.ISBN,
		Price:         b.Price.String(),
		StockQuantity: b.StockQuantity,
		PublishedDate: published,
		IsActive:      b.IsActive,
		ImageURL:      b.ImageURL,
		AuthorID:      b.AuthorID,
		CategoryID:    b.CategoryID,
		Version:       b.Version,
	}
}
