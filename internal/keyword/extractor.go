package keyword

import "strings"

// maxSecondaryKeywords caps how many statistical keywords are appended after
// the dictionary hits in a combined keyword set.
const maxSecondaryKeywords = 3

// maxQueryKeywords is how many leading keywords are folded into a search
// query string.
const maxQueryKeywords = 2

// Extract returns the combined keyword set for text: every dictionary hit
// first, then up to three statistical keywords that are not already present.
// The ordering is significant; downstream filters treat earlier keywords as
// higher priority.
// Parameters:
//   - text: raw input text.
// Returns:
//   - []string: ordered, duplicate-free keyword set; empty for
//     empty/whitespace-only input.
func Extract(text string) []string {
	primary := ExtractBigHits(text)

	seen := make(map[string]bool, len(primary))
	for _, kw := range primary {
		seen[kw] = true
	}

	combined := append([]string(nil), primary...)
	added := 0
	for _, kw := range ExtractTFIDF(text, DefaultTopN) {
		if seen[kw] {
			continue
		}
		combined = append(combined, kw)
		added++
		if added == maxSecondaryKeywords {
			break
		}
	}
	return combined
}

// buildSearchQuery folds a keyword set and a mood tag into a single search
// string for external image APIs. The two leading keywords carry the most
// signal; the mood disambiguates style. Unexported until an external image
// source integration needs it.
func buildSearchQuery(keywords []string, mood string) string {
	if len(keywords) == 0 {
		return mood
	}
	n := len(keywords)
	if n > maxQueryKeywords {
		n = maxQueryKeywords
	}
	return strings.Join(keywords[:n], " ") + " " + mood
}
