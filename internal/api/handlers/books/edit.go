package books

import (
	"errors"
	"net/http"

	"github.com/bookhaven/bookhaven/internal/api/apperr"
	storecatalog "github.com/bookhaven/bookhaven/internal/store/catalog"
)

func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
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

	h.renderForm(w, r, http.StatusOK, formPage{Form: formFromBook(b)})
}

func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apperr.WriteStatus(w, r, http.StatusNotFound, "Book not found", "")
		return
	}

	f := parseBookForm(r)
	// A form id that disagrees with the path is treated as an absent record,
	// never silently reconciled.
	if f.ID != id {
		apperr.WriteStatus(w, r, http.StatusNotFound, "Book not found", "")
		return
	}

	b, errs := h.check(f)
	if errs != nil {
		h.renderForm(w, r, http.StatusUnprocessableEntity, formPage{Form: f, Errors: errs})
		return
	}

	err := storecatalog.UpdateBook(r.Context(), h.DB, &b)
	switch {
	case errors.Is(err, storecatalog.ErrNotFound):
		apperr.WriteStatus(w, r, http.StatusNotFound, "Book not found", "")
	case errors.Is(err, storecatalog.ErrConflict):
		apperr.WriteStatus(w, r, http.StatusConflict, "Edit conflict",
			"The book was modified by someone else. Reload and try again.")
	case err != nil:
		h.Log.Error("update book failed", "id", id, "err", err)
		apperr.HandleDBError(w, r, err, "Failed to update book")
	default:
		h.Log.Info("book updated", "id", b.ID, "version", b.Version)
		http.Redirect(w, r, "/books/", http.StatusSeeOther)
	}
}
