// Package books serves the catalog UI: browsing with filters, detail pages
// with a synthetic stock badge, and the admin-gated CRUD forms.
package books

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bookhaven/bookhaven/internal/stockclient"
	"github.com/bookhaven/bookhaven/internal/store/dbx"
	"github.com/bookhaven/bookhaven/internal/web"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	DB     dbx.DB
	Stock  *stockclient.Client
	Render *web.Renderer
	Log    *slog.Logger

	validate *validator.Validate
}

func NewHandler(db dbx.DB, stock *stockclient.Client, render *web.Renderer, log *slog.Logger) *Handler {
	return &Handler{
		DB:       db,
		Stock:    stock,
		Render:   render,
		Log:      log,
		validate: validator.New(),
	}
}

// pathID parses the {id} segment. Non-numeric ids read as absent records.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil
}
