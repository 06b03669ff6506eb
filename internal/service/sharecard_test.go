package service

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestComposeCardDimensions(t *testing.T) {
	card := composeCard(nil, "Stay curious", "Anonymous", "QuoteoftheDay.com")
	bounds := card.Bounds()
	if bounds.Dx() != cardWidth || bounds.Dy() != cardHeight {
		t.Errorf("card is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), cardWidth, cardHeight)
	}
}

func TestComposeCardGradientFallback(t *testing.T) {
	card := composeCard(nil, "Stay curious", "", "")

	// With no background the corners hold the darkened brand gradient,
	// which is distinctly blue.
	r, g, b, _ := card.At(2, 2).RGBA()
	if b <= r || b <= g {
		t.Errorf("expected blue-dominant gradient corner, got r=%d g=%d b=%d", r, g, b)
	}
}

func TestComposeCardUsesBackground(t *testing.T) {
	// Solid red background should survive (darkened) under the overlay.
	bg := image.NewRGBA(image.Rect(0, 0, 400, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 400; x++ {
			bg.Set(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}

	card := composeCard(bg, "Stay curious", "Anonymous", "QuoteoftheDay.com")
	r, g, b, _ := card.At(2, 2).RGBA()
	if r <= g || r <= b {
		t.Errorf("expected red-dominant corner from background, got r=%d g=%d b=%d", r, g, b)
	}
}

func TestWrapQuoteLines(t *testing.T) {
	face := basicfont.Face7x13

	t.Run("short text stays on one line", func(t *testing.T) {
		lines := wrapQuoteLines("short", face, maxLineWidth)
		if len(lines) != 1 || lines[0] != "short" {
			t.Errorf("got %v", lines)
		}
	})

	t.Run("long text wraps without losing words", func(t *testing.T) {
		text := "the quick brown fox jumps over the lazy dog again and again until everyone is thoroughly entertained"
		lines := wrapQuoteLines(text, face, maxLineWidth)
		if len(lines) < 2 {
			t.Fatalf("expected wrapping, got %v", lines)
		}
		if strings.Join(lines, " ") != text {
			t.Errorf("words lost or reordered: %v", lines)
		}
	})

	t.Run("single oversized word is kept", func(t *testing.T) {
		word := strings.Repeat("x", 80)
		lines := wrapQuoteLines(word, face, maxLineWidth)
		if len(lines) != 1 || lines[0] != word {
			t.Errorf("got %v", lines)
		}
	})

	t.Run("empty text yields no lines", func(t *testing.T) {
		if lines := wrapQuoteLines("", face, maxLineWidth); len(lines) != 0 {
			t.Errorf("got %v", lines)
		}
	})
}
