package books

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reNon  = regexp.MustCompile(`[^a-z0-9]+`)
	reDash = regexp.MustCompile(`-+`)
)

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if normalized, _, err := transform.String(t, s); err == nil {
		s = normalized
	}
	s = reNon.ReplaceAllString(s, "-")
	s = reDash.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "book"
	}
	return s
}

// defaultImageURL fills the image reference when a form leaves it blank.
func defaultImageURL(title string) string {
	return "/images/books/" + slugify(title) + ".jpg"
}
