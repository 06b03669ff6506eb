package keyword

import (
	"strconv"
	"unicode/utf16"
)

// hashPrefix tags cache keys so they are recognizable in the cache table.
const hashPrefix = "hash_"

// HashContent computes a deterministic, non-cryptographic cache key for text.
//
// The hash is the classical 31x rolling hash over the UTF-16 code units of
// the text, wrapped to signed 32-bit, rendered as the base-36 string of its
// absolute value. Fixed-width int32 arithmetic keeps the value reproducible
// across implementations. Collisions are possible and accepted; this is a
// cache key, not an integrity check.
// Parameters:
//   - text: raw input text.
// Returns:
//   - string: cache key of the form "hash_<base36>".
func HashContent(text string) string {
	var h int32
	for _, unit := range utf16.Encode([]rune(text)) {
		h = h<<5 - h + int32(unit)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return hashPrefix + strconv.FormatInt(v, 36)
}
