package keyword

import (
	"regexp"
	"strings"
)

// bigHits is the curated vocabulary of high-priority terms. A dictionary hit
// is a guaranteed-useful image search term, so these always outrank
// statistically extracted keywords.
var bigHits = []string{
	// Animals
	"cat", "cats", "dog", "dogs", "bird", "birds", "horse", "lion", "eagle",
	"wolf", "fox", "rabbit", "butterfly", "fish", "whale", "shark", "snake",

	// Emotions & relationships
	"love", "laugh", "happy", "sad", "angry", "fear", "hope", "dream",
	"family", "friend", "relationship", "mother", "father",

	// Nature & elements
	"sunset", "sunrise", "ocean", "mountain", "forest", "tree", "flower",
	"sky", "rain", "storm", "sun", "moon", "star", "night", "day",

	// Concepts & values
	"success", "failure", "courage", "strength", "power", "wisdom", "truth",
	"beauty", "peace", "freedom", "justice", "knowledge", "money", "wealth",
	"health", "life", "death", "work", "time",

	// Actions & states
	"run", "jump", "fly", "dance", "sing", "cry", "smile", "think", "grow",
	"believe", "try", "persist",
}

// bigHitPatterns holds one compiled pattern per vocabulary term. Each pattern
// is anchored on word boundaries with an optional trailing "s", so "cat"
// matches "cat" and "cats" but never the inside of "caterpillar". Irregular
// plurals ("wolves") are a known miss.
var bigHitPatterns = compileBigHits()

func compileBigHits() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(bigHits))
	for i, term := range bigHits {
		patterns[i] = regexp.MustCompile(`\b` + term + `s?\b`)
	}
	return patterns
}

// ExtractBigHits scans text for curated vocabulary terms.
// Parameters:
//   - text: raw input text; matching is case-insensitive.
// Returns:
//   - []string: matched vocabulary terms, deduplicated, in vocabulary
//     definition order (not text order).
func ExtractBigHits(text string) []string {
	lower := strings.ToLower(text)

	var hits []string
	seen := make(map[string]bool)
	for i, pattern := range bigHitPatterns {
		term := bigHits[i]
		if seen[term] {
			continue
		}
		if pattern.MatchString(lower) {
			seen[term] = true
			hits = append(hits, term)
		}
	}
	return hits
}
