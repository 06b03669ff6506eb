package keyword

import (
	"math"
	"sort"
)

// DefaultTopN is the number of statistical keywords extracted when the caller
// does not specify a count.
const DefaultTopN = 5

// minTokenLength filters out tokens too short to be descriptive.
const minTokenLength = 3

// stopWords are common function words carrying no image-search signal.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "must": true, "can": true, "it": true,
	"its": true, "this": true, "that": true, "these": true, "those": true,
	"i": true, "you": true, "he": true, "she": true, "we": true,
	"they": true, "what": true, "which": true, "who": true, "why": true,
	"how": true, "if": true, "as": true, "so": true, "than": true, "up": true,
}

// ExtractTFIDF returns the topN statistically significant terms in text.
//
// The weight per term is termFrequency * ln(1 + termFrequency), a
// frequency-only importance proxy. There is no corpus, so no real
// inverse-document-frequency statistic is available; callers that need
// behavioral parity with existing cache entries must not swap this for
// true IDF, since that changes ranking outcomes.
//
// Parameters:
//   - text: raw input text.
//   - topN: maximum number of terms to return; values <= 0 use DefaultTopN.
// Returns:
//   - []string: up to topN terms sorted by weight descending; ties keep
//     first-occurrence order. Never padded: short or empty input yields
//     fewer terms.
func ExtractTFIDF(text string, topN int) []string {
	if topN <= 0 {
		topN = DefaultTopN
	}

	var words []string
	for _, w := range Tokenize(text) {
		if len(w) < minTokenLength || stopWords[w] {
			continue
		}
		words = append(words, w)
	}
	if len(words) == 0 {
		return nil
	}

	freq := make(map[string]int)
	var terms []string // distinct terms in first-occurrence order
	for _, w := range words {
		if freq[w] == 0 {
			terms = append(terms, w)
		}
		freq[w]++
	}

	total := float64(len(words))
	weight := make(map[string]float64, len(terms))
	for term, count := range freq {
		tf := float64(count) / total
		weight[term] = tf * math.Log(1+tf)
	}

	sort.SliceStable(terms, func(i, j int) bool {
		return weight[terms[i]] > weight[terms[j]]
	})

	if len(terms) > topN {
		terms = terms[:topN]
	}
	return terms
}
