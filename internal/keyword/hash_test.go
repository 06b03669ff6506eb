package keyword

import (
	"strings"
	"testing"
)

func TestHashContent(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "empty string",
			text: "",
			want: "hash_0",
		},
		{
			name: "single character",
			text: "a",
			want: "hash_2p",
		},
		{
			name: "two characters",
			text: "ab",
			want: "hash_2e9",
		},
		{
			name: "sentence",
			text: "Success is not final",
			want: "hash_xvvqmo",
		},
		{
			name: "longer sentence",
			text: "The cat sat in the sunshine and dreamed of success",
			want: "hash_1msp1n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := HashContent(tc.text)
			if got != tc.want {
				t.Errorf("HashContent(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestHashContentDeterministic(t *testing.T) {
	text := "An investment in knowledge pays the best interest."
	first := HashContent(text)
	for i := 0; i < 10; i++ {
		if got := HashContent(text); got != first {
			t.Fatalf("hash not stable: first=%s, got=%s", first, got)
		}
	}
}

func TestHashContentDistinguishesInputs(t *testing.T) {
	a := HashContent("quote one")
	b := HashContent("quote two")
	if a == b {
		t.Errorf("different texts hashed identically: %s", a)
	}
}

func TestHashContentPrefix(t *testing.T) {
	if got := HashContent("anything"); !strings.HasPrefix(got, "hash_") {
		t.Errorf("missing prefix: %s", got)
	}
}
