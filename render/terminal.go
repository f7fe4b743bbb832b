package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/swatch/colormath"
	"github.com/kastheco/swatch/palette"
)

var swatchStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Align(lipgloss.Center)

// lockMark is appended to the label of a locked swatch.
const lockMark = " ●"

// Swatch renders a single entry as a colored block labelled with its hex.
func Swatch(e palette.ColorEntry, width int) string {
	label := e.Hex
	if e.Locked {
		label += lockMark
	}
	style := swatchStyle.
		Background(lipgloss.Color(e.Hex)).
		Foreground(lipgloss.Color(colormath.ContrastingTextColor(e.Hex)))
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(label)
}

// Terminal renders p as a horizontal strip of swatches.
func Terminal(p palette.Palette) string {
	blocks := make([]string, 0, len(p))
	for _, e := range p {
		blocks = append(blocks, Swatch(e, 0))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
