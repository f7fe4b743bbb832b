// Package render turns palettes into SVG, PNG, JSON, YAML, and terminal swatches.
package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/kastheco/swatch/colormath"
	"github.com/kastheco/swatch/palette"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 200

	hexFontSize   = 16
	rgbFontSize   = 12
	rgbLineOffset = 24
)

// dims substitutes the defaults for non-positive sizes.
func dims(width, height int) (int, int) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}

// DefaultSVG renders p at 800x200.
func DefaultSVG(p palette.Palette) string {
	return SVG(p, DefaultWidth, DefaultHeight)
}

// SVG renders one full-height rect per entry, splitting width evenly, with the
// hex and rgb labels centered in the contrasting text color.
func SVG(p palette.Palette, width, height int) string {
	width, height = dims(width, height)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height)

	if len(p) > 0 {
		colW := float64(width) / float64(len(p))
		mid := float64(height) / 2
		for i, c := range p {
			x := float64(i) * colW
			cx := x + colW/2
			fill := html.EscapeString(c.Hex)
			text := colormath.ContrastingTextColor(c.Hex)

			fmt.Fprintf(&b, `<rect x="%s" y="0" width="%s" height="%d" fill="%s" />`,
				num(x), num(colW), height, fill)
			fmt.Fprintf(&b, `<text x="%s" y="%s" fill="%s" text-anchor="middle" font-family="monospace" font-size="%d">%s</text>`,
				num(cx), num(mid), text, hexFontSize, html.EscapeString(c.Hex))
			fmt.Fprintf(&b, `<text x="%s" y="%s" fill="%s" text-anchor="middle" font-family="monospace" font-size="%d">%s</text>`,
				num(cx), num(mid+rgbLineOffset), text, rgbFontSize, html.EscapeString(c.RGB))
		}
	}

	b.WriteString("</svg>")
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
