package planner

import "strings"

// SuggestLimit is the default cap on autocomplete suggestions.
const SuggestLimit = 6

// suggestMinChars is the typed-character threshold below which Suggest stays
// silent, to keep short inputs from matching half the catalog.
const suggestMinChars = 3

// RegisterName returns the catalog with name added, unless its normalized
// form is already present. New names are prepended, so storage order is
// most-recently-registered first. Empty and whitespace-only input is a no-op.
// The catalog only ever grows; inventory deletions never touch it.
func RegisterName(catalog []string, name string) []string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return catalog
	}

	key := Normalize(trimmed)
	for _, existing := range catalog {
		if Normalize(existing) == key {
			return catalog
		}
	}

	next := make([]string, 0, len(catalog)+1)
	next = append(next, trimmed)
	next = append(next, catalog...)
	return next
}

// Suggest returns catalog entries whose normalized form contains the
// normalized query as a substring, in catalog storage order, truncated to
// limit. Queries shorter than three characters return nothing. Matches are
// not relevance-ranked; a prefix match has no priority over a mid-string one.
func Suggest(catalog []string, query string, limit int) []string {
	q := Normalize(query)
	if len([]rune(q)) < suggestMinChars {
		return nil
	}
	if limit <= 0 {
		limit = SuggestLimit
	}

	var matches []string
	for _, name := range catalog {
		if strings.Contains(Normalize(name), q) {
			matches = append(matches, name)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}
