package keyword

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and strips punctuation",
			text: "Hello, World!",
			want: []string{"hello", "world"},
		},
		{
			name: "apostrophes split words",
			text: "don't stop",
			want: []string{"don", "t", "stop"},
		},
		{
			name: "collapses whitespace runs",
			text: "  spaced\t\nout  ",
			want: []string{"spaced", "out"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.text)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractBigHits(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single hit",
			text: "A quiet moment by the ocean",
			want: []string{"ocean"},
		},
		{
			name: "plural form matches singular term",
			text: "Dogs are loyal",
			want: []string{"dog", "dogs"},
		},
		{
			name: "no substring matches inside longer words",
			text: "The caterpillar crawled along the catalog",
			want: nil,
		},
		{
			name: "hits come back in vocabulary order not text order",
			text: "The cat sat in the sunshine and dreamed of success",
			want: []string{"cat", "success"},
		},
		{
			name: "case insensitive",
			text: "LOVE conquers all",
			want: []string{"love"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractBigHits(tc.text)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ExtractBigHits(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractTFIDF(t *testing.T) {
	t.Run("ranks by frequency", func(t *testing.T) {
		got := ExtractTFIDF("pebble pebble pebble gravel gravel sand", 0)
		want := []string{"pebble", "gravel", "sand"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("ties keep first occurrence order", func(t *testing.T) {
		got := ExtractTFIDF("window carpet ceiling", 0)
		want := []string{"window", "carpet", "ceiling"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("respects topN", func(t *testing.T) {
		got := ExtractTFIDF("pebble pebble gravel gravel sand", 2)
		if len(got) != 2 {
			t.Fatalf("expected 2 terms, got %v", got)
		}
	})

	t.Run("filters stop words and short tokens", func(t *testing.T) {
		got := ExtractTFIDF("it is so up at an", 0)
		if got != nil {
			t.Errorf("expected nil for stop-word-only input, got %v", got)
		}
	})

	t.Run("never pads short input", func(t *testing.T) {
		got := ExtractTFIDF("solitude", 5)
		want := []string{"solitude"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := ExtractTFIDF("", 5); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestExtract(t *testing.T) {
	t.Run("dictionary hits come first", func(t *testing.T) {
		got := Extract("The cat sat in the sunshine and dreamed of success")
		if len(got) < 2 || got[0] != "cat" || got[1] != "success" {
			t.Fatalf("expected dictionary hits first, got %v", got)
		}
	})

	t.Run("statistical terms never duplicate dictionary hits", func(t *testing.T) {
		got := Extract("success success success planning")
		want := []string{"success", "planning"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("at most three statistical terms", func(t *testing.T) {
		got := Extract("window carpet ceiling doorway hallway staircase")
		if len(got) != 3 {
			t.Errorf("expected 3 secondary keywords, got %v", got)
		}
	})

	t.Run("empty input gives empty set", func(t *testing.T) {
		if got := Extract("   "); len(got) != 0 {
			t.Errorf("expected no keywords, got %v", got)
		}
	})
}

func TestBuildSearchQuery(t *testing.T) {
	testCases := []struct {
		name     string
		keywords []string
		mood     string
		want     string
	}{
		{
			name:     "no keywords falls back to mood alone",
			keywords: nil,
			mood:     "serene",
			want:     "serene",
		},
		{
			name:     "single keyword",
			keywords: []string{"ocean"},
			mood:     "serene",
			want:     "ocean serene",
		},
		{
			name:     "only two leading keywords used",
			keywords: []string{"ocean", "sunset", "sand"},
			mood:     "vibrant",
			want:     "ocean sunset vibrant",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := buildSearchQuery(tc.keywords, tc.mood)
			if got != tc.want {
				t.Errorf("buildSearchQuery(%v, %q) = %q, want %q", tc.keywords, tc.mood, got, tc.want)
			}
		})
	}
}
