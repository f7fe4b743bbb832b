package overlay

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kastheco/swatch/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeInto(p *FormulaPicker, s string) {
	for _, r := range s {
		p.HandleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestFormulaPicker_StartsOnCurrent(t *testing.T) {
	p := NewFormulaPicker(palette.FormulaMonochromatic, nil)

	closed := p.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, closed)
	assert.True(t, p.IsSubmitted())
	got, ok := p.Value()
	require.True(t, ok)
	assert.Equal(t, palette.FormulaMonochromatic, got)
}

func TestFormulaPicker_FilterThenSelect(t *testing.T) {
	p := NewFormulaPicker(palette.FormulaRandom, nil)
	typeInto(p, "gray")

	p.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	got, ok := p.Value()
	require.True(t, ok)
	assert.Equal(t, palette.FormulaGrayscale, got)
}

func TestFormulaPicker_ArrowsNavigate(t *testing.T) {
	p := NewFormulaPicker(palette.Formulas()[0], nil)

	p.HandleKeyPress(tea.KeyMsg{Type: tea.KeyDown})
	got, _ := p.Value()
	assert.Equal(t, palette.Formulas()[1], got)

	p.HandleKeyPress(tea.KeyMsg{Type: tea.KeyUp})
	p.HandleKeyPress(tea.KeyMsg{Type: tea.KeyUp})
	got, _ = p.Value()
	assert.Equal(t, palette.Formulas()[0], got)
}

func TestFormulaPicker_NoMatchDoesNotSubmit(t *testing.T) {
	p := NewFormulaPicker(palette.FormulaRandom, nil)
	typeInto(p, "zzz")

	closed := p.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, closed)
	_, ok := p.Value()
	assert.False(t, ok)
	assert.Contains(t, p.Render(), "no matches")

	p.HandleKeyPress(tea.KeyMsg{Type: tea.KeyBackspace})
	p.HandleKeyPress(tea.KeyMsg{Type: tea.KeyBackspace})
	p.HandleKeyPress(tea.KeyMsg{Type: tea.KeyBackspace})
	_, ok = p.Value()
	assert.True(t, ok)
}

func TestFormulaPicker_EscCancels(t *testing.T) {
	p := NewFormulaPicker(palette.FormulaRandom, nil)

	closed := p.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, closed)
	assert.False(t, p.IsSubmitted())
	_, ok := p.Value()
	assert.False(t, ok)
}

func TestFormulaPicker_RenderListsFormulasWithPreview(t *testing.T) {
	gen := palette.NewSeededGenerator(7)
	calls := 0
	p := NewFormulaPicker(palette.FormulaRandom, func(f palette.Formula) palette.Palette {
		calls++
		return gen.Generate(f, nil, nil)
	})
	assert.Equal(t, len(palette.Formulas()), calls)

	out := p.Render()
	for _, f := range palette.Formulas() {
		assert.True(t, strings.Contains(out, string(f)), "render should list %q", f)
	}
	assert.Contains(t, out, "▸ random")
}
