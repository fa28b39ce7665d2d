// Package search filters the job catalog by free text.
package search

import (
	"strings"

	"career-guide/internal/domain/catalog"
)

// NormalizeTerm is the form used for matching and for cache keys.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Matches reports whether the already normalized term is a substring of the
// entry's title, description, category or company.
func Matches(e catalog.Entry, term string) bool {
	if term == "" {
		return false
	}
	for _, field := range []string{e.Title, e.Description, string(e.Category), e.Company} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Search keeps catalog order. A blank term yields no results rather than the whole catalog.
func Search(term string, entries []catalog.Entry) []catalog.Entry {
	t := NormalizeTerm(term)
	if t == "" {
		return []catalog.Entry{}
	}

	out := make([]catalog.Entry, 0, 8)
	for _, e := range entries {
		if Matches(e, t) {
			out = append(out, e)
		}
	}
	return out
}
