// Package auth serves login/logout for the catalog UI. Sessions are signed
// JWTs carried in a cookie; role membership is loaded from the store at
// login time and baked into the claims.
package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bookhaven/bookhaven/internal/api/middlewares"
	jwtutil "github.com/bookhaven/bookhaven/internal/security/jwt"
	"github.com/bookhaven/bookhaven/internal/security/password"
	"github.com/bookhaven/bookhaven/internal/web"
)

type Handler struct {
	Store  *SQLStore
	Signer *jwtutil.Signer
	TTL    time.Duration
	Render *web.Renderer
	Log    *slog.Logger
}

type loginPage struct {
	Email string
	Error string
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.Render.HTML(w, http.StatusOK, "login.html", loginPage{})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	pass := r.PostFormValue("password")

	u, err := h.Store.FindUserByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			h.Log.Error("login lookup failed", "err", err)
		}
		h.Render.HTML(w, http.StatusUnauthorized, "login.html", loginPage{Email: email, Error: "Invalid email or password."})
		return
	}
	ok, err := password.Verify(pass, u.PasswordHash)
	if err != nil || !ok {
		h.Render.HTML(w, http.StatusUnauthorized, "login.html", loginPage{Email: email, Error: "Invalid email or password."})
		return
	}

	token, err := h.Signer.SignSession(u.ID, u.Roles, h.TTL)
	if err != nil {
		h.Log.Error("session sign failed", "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middlewares.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.TTL / time.Second),
	})
	h.Log.Info("login ok", "email", email, "roles", u.Roles)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middlewares.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
