package service

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Share cards use the standard Open Graph dimensions.
const (
	cardWidth  = 1200
	cardHeight = 630

	// textScale upsamples the bitmap font: text is laid out on a quarter-size
	// layer and scaled onto the card, since basicfont has a single fixed size.
	textScale = 4

	layerWidth   = cardWidth / textScale
	layerHeight  = cardHeight / textScale
	maxLineWidth = 250 // layer units, ~1000px on the card
	lineHeight   = 15  // layer units
)

// Brand gradient used when no background image could be fetched.
var (
	gradientTop    = color.RGBA{R: 0x0e, G: 0xa5, B: 0xe9, A: 0xff}
	gradientBottom = color.RGBA{R: 0x02, G: 0x84, B: 0xc7, A: 0xff}
)

// composeCard renders a 1200x630 share card: the background (or the brand
// gradient when background is nil), a 50% dark overlay for contrast, the
// wrapped quote with quotation marks, an optional author line, and the site
// watermark bottom-right.
func composeCard(background image.Image, quoteText, quoteAuthor, siteName string) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))

	if background != nil {
		xdraw.ApproxBiLinear.Scale(canvas, canvas.Bounds(), background, background.Bounds(), xdraw.Src, nil)
	} else {
		drawGradient(canvas)
	}

	overlay := image.NewUniform(color.RGBA{A: 128})
	draw.Draw(canvas, canvas.Bounds(), overlay, image.Point{}, draw.Over)

	face := basicfont.Face7x13
	layer := image.NewRGBA(image.Rect(0, 0, layerWidth, layerHeight))

	lines := wrapQuoteLines(quoteText, face, maxLineWidth)
	totalHeight := len(lines) * lineHeight
	if quoteAuthor != "" {
		totalHeight += lineHeight
	}
	y := layerHeight/2 - totalHeight/2 + lineHeight/2

	for i, line := range lines {
		if i == 0 {
			line = `"` + line
		}
		if i == len(lines)-1 {
			line = line + `"`
		}
		drawCentered(layer, face, line, y)
		y += lineHeight
	}

	if quoteAuthor != "" {
		drawCentered(layer, face, "— "+quoteAuthor, y+lineHeight/2)
	}

	if siteName != "" {
		width := font.MeasureString(face, siteName).Ceil()
		drawText(layer, face, siteName, layerWidth-width-8, layerHeight-8)
	}

	xdraw.NearestNeighbor.Scale(canvas, canvas.Bounds(), layer, layer.Bounds(), xdraw.Over, nil)
	return canvas
}

// drawGradient fills the canvas with a vertical brand gradient.
func drawGradient(canvas *image.RGBA) {
	bounds := canvas.Bounds()
	height := bounds.Dy()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		t := float64(y-bounds.Min.Y) / float64(height-1)
		row := color.RGBA{
			R: lerp(gradientTop.R, gradientBottom.R, t),
			G: lerp(gradientTop.G, gradientBottom.G, t),
			B: lerp(gradientTop.B, gradientBottom.B, t),
			A: 0xff,
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			canvas.SetRGBA(x, y, row)
		}
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// wrapQuoteLines greedily wraps text into lines no wider than maxWidth
// pixels under the given face. A single overlong word gets its own line
// rather than being split.
func wrapQuoteLines(text string, face font.Face, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""
	for _, word := range words {
		test := current
		if test != "" {
			test += " "
		}
		test += word
		if font.MeasureString(face, test).Ceil() > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
		} else {
			current = test
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// drawCentered draws text horizontally centered at baseline y.
func drawCentered(dst *image.RGBA, face font.Face, text string, y int) {
	width := font.MeasureString(face, text).Ceil()
	drawText(dst, face, text, (dst.Bounds().Dx()-width)/2, y)
}

func drawText(dst *image.RGBA, face font.Face, text string, x, y int) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
