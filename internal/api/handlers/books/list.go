package books

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bookhaven/bookhaven/internal/api/apperr"
	"github.com/bookhaven/bookhaven/internal/models"
	storecatalog "github.com/bookhaven/bookhaven/internal/store/catalog"
	"github.com/shopspring/decimal"
)

// filterEcho carries the raw query values back into the form controls.
type filterEcho struct {
	Search     string
	CategoryID string
	AuthorID   string
	MinPrice   string
	MaxPrice   string
}

type listPage struct {
	Books      []models.Book
	Categories []models.Category
	Authors    []models.Author
	Filters    filterEcho
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	echo := filterEcho{
		Search:     strings.TrimSpace(q.Get("searchString")),
		CategoryID: strings.TrimSpace(q.Get("categoryId")),
		AuthorID:   strings.TrimSpace(q.Get("authorId")),
		MinPrice:   strings.TrimSpace(q.Get("minPrice")),
		MaxPrice:   strings.TrimSpace(q.Get("maxPrice")),
	}

	filter := storecatalog.Filter{Search: echo.Search}
	if id, err := strconv.ParseInt(echo.CategoryID, 10, 64); err == nil {
		filter.CategoryID = &id
	}
	if id, err := strconv.ParseInt(echo.AuthorID, 10, 64); err == nil {
		filter.AuthorID = &id
	}
	if p, err := decimal.NewFromString(echo.MinPrice); err == nil {
		filter.MinPrice = &p
	}
	if p, err := decimal.NewFromString(echo.MaxPrice); err == nil {
		filter.MaxPrice = &p
	}

	booksList, err := storecatalog.List(r.Context(), h.DB, filter)
	if err != nil {
		h.Log.Error("list books failed", "err", err)
		apperr.HandleDBError(w, r, err, "Failed to list books")
		return
	}
	cats, err := storecatalog.ListCategories(r.Context(), h.DB)
	if err != nil {
		apperr.HandleDBError(w, r, err, "Failed to load categories")
		return
	}
	auths, err := storecatalog.ListAuthors(r.Context(), h.DB)
	if err != nil {
		apperr.HandleDBError(w, r, err, "Failed to load authors")
		return
	}

	h.Render.HTML(w, http.StatusOK, "books_list.html", listPage{
		Books:      booksList,
		Categories: cats,
		Authors:    auths,
		Filters:    echo,
	})
}
