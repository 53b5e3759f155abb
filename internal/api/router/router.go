package router

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/bookhaven/bookhaven/internal/api/handlers/admin"
	"github.com/bookhaven/bookhaven/internal/api/handlers/books"
	"github.com/bookhaven/bookhaven/internal/api/handlers/home"
	"github.com/bookhaven/bookhaven/internal/api/middlewares"
	"github.com/bookhaven/bookhaven/internal/auth"
	jwtutil "github.com/bookhaven/bookhaven/internal/security/jwt"
	"github.com/bookhaven/bookhaven/internal/stockclient"
	adminstore "github.com/bookhaven/bookhaven/internal/store/admin"
	"github.com/bookhaven/bookhaven/internal/web"
)

// Deps carries everything the web routes need. cmd/web builds one at startup.
type Deps struct {
	DB     *sql.DB
	Stock  *stockclient.Client
	Render *web.Renderer
	Signer *jwtutil.Signer
	Auth   *auth.Handler
	Log    *slog.Logger
}

const adminRole = "Admin"

func Router(d Deps) http.Handler {
	mux := http.NewServeMux()

	homeH := home.NewHandler(d.Stock, d.Render, d.Log)
	booksH := books.NewHandler(d.DB, d.Stock, d.Render, d.Log)
	adminH := admin.NewHandler(adminstore.New(d.DB), d.Render, d.Log)

	// Home
	mux.HandleFunc("GET /{$}", homeH.Index)
	mux.HandleFunc("GET /stock/check", homeH.CheckStock)

	// Sessions
	mux.HandleFunc("GET /login", d.Auth.LoginForm)
	mux.HandleFunc("POST /login", d.Auth.Login)
	mux.HandleFunc("GET /logout", d.Auth.Logout)

	// Keep legacy /books -> /books/
	mux.HandleFunc("GET /books", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/books/", http.StatusMovedPermanently)
	})

	// Catalog: browsing is public, mutation needs the Admin role.
	mux.HandleFunc("GET /books/{$}", booksH.List)
	mux.HandleFunc("GET /books/{id}", booksH.Detail)

	gated := func(h http.HandlerFunc) http.Handler {
		return middlewares.RequireRole(d.Signer, adminRole, h)
	}
	mux.Handle("GET /books/new", gated(booksH.CreateForm))
	mux.Handle("POST /books/new", gated(booksH.Create))
	mux.Handle("GET /books/{id}/edit", gated(booksH.EditForm))
	mux.Handle("POST /books/{id}/edit", gated(booksH.Edit))
	mux.Handle("GET /books/{id}/delete", gated(booksH.DeleteForm))
	mux.Handle("POST /books/{id}/delete", gated(booksH.Delete))

	// Admin dashboard
	mux.Handle("GET /admin", gated(adminH.Index))

	return mux
}
