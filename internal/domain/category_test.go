package domain

import (
	"reflect"
	"testing"
)

func TestMoodsForCategory(t *testing.T) {
	testCases := []struct {
		name     string
		category string
		want     []string
	}{
		{
			name:     "jokes",
			category: "jokes",
			want:     []string{"vibrant", "playful", "bright", "colorful", "energetic"},
		},
		{
			name:     "facts",
			category: "facts",
			want:     []string{"minimalist", "clean", "sharp", "educational", "scientific"},
		},
		{
			name:     "quotes",
			category: "quotes",
			want:     []string{"serene", "ethereal", "atmospheric", "contemplative", "peaceful"},
		},
		{
			name:     "unknown category falls back to quotes moods",
			category: "recipes",
			want:     []string{"serene", "ethereal", "atmospheric", "contemplative", "peaceful"},
		},
		{
			name:     "empty category falls back to quotes moods",
			category: "",
			want:     []string{"serene", "ethereal", "atmospheric", "contemplative", "peaceful"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MoodsForCategory(tc.category)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("MoodsForCategory(%q) = %v, want %v", tc.category, got, tc.want)
			}
		})
	}
}

func TestMoodsForCategoryNeverEmpty(t *testing.T) {
	for _, category := range KnownCategories() {
		if moods := MoodsForCategory(string(category)); len(moods) == 0 {
			t.Errorf("category %q has no moods", category)
		}
	}
}
