package planner

import "strings"

// Normalize returns the comparison key for a free-text name: surrounding
// whitespace trimmed, lower-cased. It is the equality key everywhere names
// are compared and is never used for display.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
