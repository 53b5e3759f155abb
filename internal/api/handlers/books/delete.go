package books

import (
	"errors"
	"net/http"

	"github.com/bookhaven/bookhaven/internal/api/apperr"
	"github.com/bookhaven/bookhaven/internal/models"
	storecatalog "github.com/bookhaven/bookhaven/internal/store/catalog"
)

func (h *Handler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apperr.WriteStatus(w, r, http.StatusNotFound, "Book not found", "")
		return
	}

	b, err := storecatalog.GetBook(r.Context(), h.DB, id)
	if errors.Is(err, storecatalog.ErrNotFound) {
		apperr.WriteStatus(w, r, http.StatusNotFound, "Book not found", "")
		return
	}
	if err != nil {
		apperr.HandleDBError(w, r, err, "Failed to load book")
		return
	}

	h.Render.HTML(w, http.StatusOK, "book_delete.html", struct {
		Book models.Book
	}{Book: b})
}

// Delete removes the book and redirects to the list either way; deleting a
// book that is already gone is not an error.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apperr.WriteStatus(w, r, http.StatusNotFound, "Book not found", "")
		return
	}

	if err := storecatalog.DeleteBook(r.Context(), h.DB, id); err != nil {
		h.Log.Error("delete book failed", "id", id, "err", err)
		apperr.HandleDBError(w, r, err, "Failed to delete book")
		return
	}

	h.Log.Info("book deleted", "id", id)
	http.Redirect(w, r, "/books/", http.StatusSeeOther)
}
