// Package keyword implements the hybrid keyword extraction pipeline used
// for background image matching: a curated high-precision dictionary pass
// combined with a frequency-based statistical pass over the remaining text.
//
// The package is intentionally dependency-free and side-effect free so the
// same logic can be shared by the API handlers, the share-card generator,
// and any offline tooling without drift.
package keyword

import (
	"regexp"
	"strings"
)

// nonWord matches every character that is neither a word character nor
// whitespace. Matched runs are replaced with a single space before splitting.
var nonWord = regexp.MustCompile(`[^\w\s]`)

// Tokenize normalizes text into lowercase word tokens.
// Parameters:
//   - text: raw input text.
// Returns:
//   - []string: lowercase tokens in original order; duplicates are
//     preserved so downstream consumers can count occurrences.
func Tokenize(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Fields(cleaned)
}
