package middlewares

import (
	"errors"
	"net/http"
	"strings"

	jwtutil "github.com/bookhaven/bookhaven/internal/security/jwt"
)

// SessionCookie carries the signed session token for browser clients.
const SessionCookie = "bh_session"

// RequireAuth verifies the session token (cookie or Bearer header) and
// injects the user id and role set into the request context. Browser
// requests without a valid session get bounced to the login page.
func RequireAuth(signer *jwtutil.Signer, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr, err := sessionToken(r)
		if err != nil {
			redirectOrUnauthorized(w, r)
			return
		}
		claims, err := signer.ParseSession(tokenStr)
		if err != nil {
			redirectOrUnauthorized(w, r)
			return
		}
		ctx := WithUser(r.Context(), claims.Subject, claims.Roles)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a handler on role membership carried in the session
// claims. The role set was loaded from the store at login time.
func RequireRole(signer *jwtutil.Signer, role string, next http.Handler) http.Handler {
	return RequireAuth(signer, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !HasRole(r.Context(), role) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func sessionToken(r *http.Request) (string, error) {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}
	raw := r.Header.Get("Authorization")
	if strings.HasPrefix(raw, "Bearer ") || strings.HasPrefix(raw, "bearer ") {
		return strings.TrimSpace(raw[len("Bearer "):]), nil
	}
	return "", errors.New("no session")
}

func redirectOrUnauthorized(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}
