package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/swatch/colormath"
	"github.com/kastheco/swatch/keys"
	"github.com/kastheco/swatch/palette"
)

var pickerBorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorIris).
	Padding(1, 2)

var pickerTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorIris).
	MarginBottom(1)

var pickerFilterStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorFoam).
	Padding(0, 1).
	MarginBottom(1)

var pickerItemStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Foreground(colorText)

var pickerSelectedItemStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Background(colorFoam).
	Foreground(colorBase)

var pickerHintStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	MarginTop(1)

// previewChip is the width, in cells, of one color in a formula's preview strip.
const previewChip = 2

// PreviewFunc returns the palette a formula would produce for the current base.
type PreviewFunc func(palette.Formula) palette.Palette

// FormulaPicker lists the known formulas with a preview strip for each and
// lets the user filter by typing.
type FormulaPicker struct {
	all         []palette.Formula
	filtered    []palette.Formula
	previews    map[palette.Formula]palette.Palette
	selectedIdx int
	query       string
	width       int
	submitted   bool
	cancelled   bool
}

// NewFormulaPicker opens with current selected. preview may be nil.
func NewFormulaPicker(current palette.Formula, preview PreviewFunc) *FormulaPicker {
	all := palette.Formulas()
	p := &FormulaPicker{
		all:      all,
		filtered: append([]palette.Formula(nil), all...),
		previews: make(map[palette.Formula]palette.Palette, len(all)),
		width:    44,
	}
	for i, f := range all {
		if f == current {
			p.selectedIdx = i
		}
		if preview != nil {
			p.previews[f] = preview(f)
		}
	}
	return p
}

// HandleKeyPress processes input. Returns true when the picker should close.
func (p *FormulaPicker) HandleKeyPress(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, keys.GlobalkeyBindings[keys.KeyEsc]):
		p.cancelled = true
		return true
	case key.Matches(msg, keys.GlobalkeyBindings[keys.KeyEnter]):
		if len(p.filtered) == 0 {
			return false
		}
		p.submitted = true
		return true
	case key.Matches(msg, keys.GlobalkeyBindings[keys.KeyUp]):
		if p.selectedIdx > 0 {
			p.selectedIdx--
		}
	case key.Matches(msg, keys.GlobalkeyBindings[keys.KeyDown]):
		if p.selectedIdx < len(p.filtered)-1 {
			p.selectedIdx++
		}
	case msg.Type == tea.KeyBackspace:
		if p.query != "" {
			runes := []rune(p.query)
			p.query = string(runes[:len(runes)-1])
			p.applyFilter()
		}
	case msg.Type == tea.KeyRunes:
		p.query += string(msg.Runes)
		p.applyFilter()
	}
	return false
}

func (p *FormulaPicker) applyFilter() {
	q := strings.ToLower(p.query)
	p.filtered = p.filtered[:0]
	for _, f := range p.all {
		if strings.Contains(string(f), q) {
			p.filtered = append(p.filtered, f)
		}
	}
	if p.selectedIdx >= len(p.filtered) {
		p.selectedIdx = len(p.filtered) - 1
	}
	if p.selectedIdx < 0 {
		p.selectedIdx = 0
	}
}

// Value returns the selected formula, or false if cancelled or nothing matches.
func (p *FormulaPicker) Value() (palette.Formula, bool) {
	if p.cancelled || len(p.filtered) == 0 {
		return "", false
	}
	return p.filtered[p.selectedIdx], true
}

func (p *FormulaPicker) IsSubmitted() bool {
	return p.submitted
}

func (p *FormulaPicker) SetSize(width, height int) {
	p.width = width
}

// Render draws the picker.
func (p *FormulaPicker) Render() string {
	var b strings.Builder

	b.WriteString(pickerTitleStyle.Render("formula"))
	b.WriteString("\n")

	innerWidth := p.width - 8
	if innerWidth < 10 {
		innerWidth = 10
	}
	filter := p.query
	if filter == "" {
		filter = "type to filter..."
	}
	b.WriteString(pickerFilterStyle.Width(innerWidth).Render(filter))
	b.WriteString("\n")

	if len(p.filtered) == 0 {
		b.WriteString(pickerHintStyle.Render("  no matches"))
		b.WriteString("\n")
	}
	for i, f := range p.filtered {
		label := "  " + string(f)
		style := pickerItemStyle
		if i == p.selectedIdx {
			label = "▸ " + string(f)
			style = pickerSelectedItemStyle
		}
		row := style.Width(innerWidth - previewChip*palette.Size).Render(label)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, row, previewStrip(p.previews[f])))
		b.WriteString("\n")
	}

	b.WriteString(pickerHintStyle.Render("↑↓ navigate • enter select • esc cancel"))

	return pickerBorderStyle.Width(p.width).Render(b.String())
}

func previewStrip(p palette.Palette) string {
	if len(p) == 0 {
		return ""
	}
	chips := make([]string, 0, len(p))
	for _, e := range p {
		if _, ok := colormath.HexToRGB(e.Hex); !ok {
			continue
		}
		chips = append(chips, lipgloss.NewStyle().
			Background(lipgloss.Color(e.Hex)).
			Render(strings.Repeat(" ", previewChip)))
	}
	return strings.Join(chips, "")
}
