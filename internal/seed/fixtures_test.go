package seed

import (
	"sort"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFixtureCounts(t *testing.T) {
	if len(categories) != 5 || len(authors) != 5 || len(books) != 5 {
		t.Fatalf("counts = %d/%d/%d categories/authors/books, want 5 each",
			len(categories), len(authors), len(books))
	}
	if len(roleNames) != 2 {
		t.Fatalf("roles = %v, want Admin and Client", roleNames)
	}
}

func TestFixtureLookupKeysResolve(t *testing.T) {
	surnames := map[string]bool{}
	for _, a := range authors {
		surnames[a.LastName] = true
	}
	catNames := map[string]bool{}
	for _, c := range categories {
		catNames[c.Name] = true
	}
	for _, b := range books {
		if !surnames[b.AuthorSurname] {
			t.Errorf("%s references unknown author surname %q", b.Title, b.AuthorSurname)
		}
		if !catNames[b.CategoryName] {
			t.Errorf("%s references unknown category %q", b.Title, b.CategoryName)
		}
	}
}

func TestExactlyOnePotterBook(t *testing.T) {
	var n int
	for _, b := range books {
		if strings.Contains(b.Title, "Potter") {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("books with Potter in title = %d, want 1", n)
	}
}

// The price band 13..15 inclusive holds exactly Good Omens and The
// Shining; sorted by title that is the order the catalog list shows.
func TestPriceBandThirteenToFifteen(t *testing.T) {
	lo := decimal.RequireFromString("13")
	hi := decimal.RequireFromString("15")

	var titles []string
	for _, b := range books {
		if b.Price.GreaterThanOrEqual(lo) && b.Price.LessThanOrEqual(hi) {
			titles = append(titles, b.Title)
		}
	}
	sort.Strings(titles)

	want := []string{"Good Omens", "The Shining"}
	if len(titles) != len(want) {
		t.Fatalf("titles in band = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("titles in band = %v, want %v", titles, want)
		}
	}
}
