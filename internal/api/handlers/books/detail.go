package books

import (
	"errors"
	"net/http"

	"github.com/bookhaven/bookhaven/internal/api/apperr"
	"github.com/bookhaven/bookhaven/internal/models"
	"github.com/bookhaven/bookhaven/internal/stock"
	storecatalog "github.com/bookhaven/bookhaven/internal/store/catalog"
)

type detailPage struct {
	Book  models.Book
	Stock *stock.Info
}

// Detail renders a single book. The stock badge comes from the stock API and
// is simply omitted when the service is unreachable.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
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

	h.Render.HTML(w, http.StatusOK, "book_detail.html", detailPage{
		Book:  b,
		Stock: h.Stock.CheckStock(r.Context(), b.ID),
	})
}
