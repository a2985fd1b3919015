package domain

import (
	"strings"
)

// NormalizeSubject prepares a deck subject for storage and filtering:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses runs of whitespace (spaces, tabs, newlines) into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeSubject(subject string) string {
	return strings.Join(strings.Fields(strings.ToLower(subject)), " ")
}
