package domain

// Category partitions the image inventory by content type.
type Category string

const (
	CategoryJokes  Category = "jokes"
	CategoryFacts  Category = "facts"
	CategoryQuotes Category = "quotes"
)

// moodsByCategory is the static mood taxonomy: each category maps to an
// ordered list of allowed aesthetic mood tags.
var moodsByCategory = map[Category][]string{
	CategoryJokes:  {"vibrant", "playful", "bright", "colorful", "energetic"},
	CategoryFacts:  {"minimalist", "clean", "sharp", "educational", "scientific"},
	CategoryQuotes: {"serene", "ethereal", "atmospheric", "contemplative", "peaceful"},
}

// MoodsForCategory resolves a category to its mood list.
// Parameters:
//   - category: content category; unknown values fall back to the quotes moods.
// Returns:
//   - []string: ordered, non-empty list of mood tags. Callers must not
//     mutate the returned slice.
func MoodsForCategory(category string) []string {
	if moods, ok := moodsByCategory[Category(category)]; ok {
		return moods
	}
	return moodsByCategory[CategoryQuotes]
}

// KnownCategories returns the closed set of inventory categories.
func KnownCategories() []Category {
	return []Category{CategoryJokes, CategoryFacts, CategoryQuotes}
}
