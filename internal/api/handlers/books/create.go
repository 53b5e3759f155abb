package books

import (
	"net/http"

	"github.com/bookhaven/bookhaven/internal/api/apperr"
	"github.com/bookhaven/bookhaven/internal/models"
	storecatalog "github.com/bookhaven/bookhaven/internal/store/catalog"
)

type formPage struct {
	Form       BookForm
	Errors     map[string]string
	Authors    []models.Author
	Categories []models.Category
	IsNew      bool
}

func (h *Handler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, formPage{
		Form:  BookForm{IsActive: true},
		IsNew: true,
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	f := parseBookForm(r)
	b, errs := h.check(f)
	if errs != nil {
		h.renderForm(w, r, http.StatusUnprocessableEntity, formPage{Form: f, Errors: errs, IsNew: true})
		return
	}

	if err := storecatalog.CreateBook(r.Context(), h.DB, &b); err != nil {
		h.Log.Error("create book failed", "err", err)
		apperr.HandleDBError(w, r, err, "Failed to create book")
		return
	}

	h.Log.Info("book created", "id", b.ID, "title", b.Title)
	http.Redirect(w, r, "/books/", http.StatusSeeOther)
}

// renderForm fills in the selector lists before rendering; a failed lookup
// turns into a problem response rather than an empty form.
func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, status int, page formPage) {
	auths, err := storecatalog.ListAuthors(r.Context(), h.DB)
	if err != nil {
		apperr.HandleDBError(w, r, err, "Failed to load authors")
		return
	}
	cats, err := storecatalog.ListCategories(r.Context(), h.DB)
	if err != nil {
		apperr.HandleDBError(w, r, err, "Failed to load categories")
		return
	}
	page.Authors = auths
	page.Categories = cats
	h.Render.HTML(w, status, "book_form.html", page)
}
