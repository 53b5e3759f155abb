// Package web renders the server-side HTML pages from embedded templates.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var files embed.FS

type Renderer struct {
	t   *template.Template
	log *slog.Logger
}

func NewRenderer(log *slog.Logger) (*Renderer, error) {
	t, err := template.New("").ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{t: t, log: log}, nil
}

// HTML renders the named template to a buffer first so a template error
// never produces a half-written page.
func (r *Renderer) HTML(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		r.log.Error("template render failed", "template", name, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
