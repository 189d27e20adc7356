package overlay

import (
	"image"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font is the HUD bitmap font.
var Font tinyfont.Fonter = &proggy.TinySZ8pt7b

// LineHeight is the vertical advance between HUD lines, in pixels.
const LineHeight = 13

// baseline offsets the top of a line to the font baseline.
const baseline = 10

// Text draws s with its top-left corner at (x, y).
func Text(dst *image.RGBA, x, y int, s string, c color.RGBA) {
	tinyfont.WriteLine(&imageDisplay{img: dst}, Font, int16(x), int16(y+baseline), s, c)
}

// TextShadow draws s twice, offset by one pixel in black first, so it stays
// legible over bright frames.
func TextShadow(dst *image.RGBA, x, y int, s string, c color.RGBA) {
	Text(dst, x+1, y+1, s, color.RGBA{0, 0, 0, c.A})
	Text(dst, x, y, s, c)
}

// TextWidth is the rendered width of s in pixels.
func TextWidth(s string) int {
	_, w := tinyfont.LineWidth(Font, s)
	return int(w)
}
