// Package ui is the interactive palette editor.
package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/swatch/colormath"
	"github.com/kastheco/swatch/config"
	"github.com/kastheco/swatch/config/palettestore"
	"github.com/kastheco/swatch/keys"
	"github.com/kastheco/swatch/log"
	"github.com/kastheco/swatch/palette"
	"github.com/kastheco/swatch/render"
	"github.com/kastheco/swatch/ui/overlay"
	"go.uber.org/zap"
)

const (
	frameInterval = 50 * time.Millisecond
	swatchWidth   = 14
)

// Options configure a Model. Store may be nil; saving is then disabled.
type Options struct {
	Formula palette.Formula
	Base    *colormath.RGB
	Store   palettestore.Store
	// Session, when set, restores locked swatches and is saved on quit.
	Session *config.Session
	// Now stamps saved palette names. Defaults to time.Now.
	Now func() time.Time
	// NoAnimation shows every swatch immediately.
	NoAnimation bool
}

type frameMsg struct{}

type savedMsg struct {
	name string
	err  error
}

// Model is the bubbletea model for `swatch tui`.
type Model struct {
	gen     *palette.Generator
	formula palette.Formula
	palette palette.Palette
	locked  [palette.Size]bool

	picker   *overlay.FormulaPicker
	pickBase *colormath.RGB // previews and the chosen formula derive from it
	reveal   *SpringAnim
	help     help.Model

	store   palettestore.Store
	session *config.Session
	now     func() time.Time
	animate bool

	status    string
	statusErr bool
	width     int
	height    int
}

// New builds the model and its first palette.
func New(gen *palette.Generator, opts Options) *Model {
	f, _ := palette.ParseFormula(string(opts.Formula))
	m := &Model{
		gen:     gen,
		formula: f,
		help:    help.New(),
		store:   opts.Store,
		session: opts.Session,
		now:     opts.Now,
		animate: !opts.NoAnimation,
	}
	if m.now == nil {
		m.now = time.Now
	}
	base, restored := opts.Base, m.restoreLocks()
	if restored[0] != nil {
		if c, ok := restored[0].Color(); ok {
			base = &c
		}
	}
	m.palette = gen.Generate(m.formula, base, restored)
	m.resetReveal()
	return m
}

// restoreLocks turns the session's saved locks into a lock vector.
func (m *Model) restoreLocks() []*palette.ColorEntry {
	out := make([]*palette.ColorEntry, palette.Size)
	if m.session == nil {
		return out
	}
	for slot, hex := range m.session.Locked() {
		c, ok := colormath.HexToRGB(hex)
		if !ok || slot < 0 || slot >= palette.Size {
			continue
		}
		e := palette.NewEntry(c)
		e.Locked = true
		out[slot] = &e
		m.locked[slot] = true
	}
	return out
}

func (m *Model) Init() tea.Cmd {
	if m.reveal.Settled() {
		return nil
	}
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m *Model) resetReveal() {
	m.reveal = NewSpringAnim(palette.Size)
	if !m.animate {
		m.reveal.Skip()
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if m.picker != nil {
			m.picker.SetSize(pickerWidth(msg.Width), msg.Height)
		}
		return m, nil
	case frameMsg:
		if m.reveal.Tick() {
			return m, tick()
		}
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.setStatus("saved as " + msg.name)
		log.Info("palette saved", zap.String("name", msg.name))
		return m, nil
	case tea.KeyMsg:
		if m.picker != nil {
			return m.handlePickerKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.picker.HandleKeyPress(msg) {
		return m, nil
	}
	picker, base := m.picker, m.pickBase
	m.picker, m.pickBase = nil, nil
	f, ok := picker.Value()
	if !picker.IsSubmitted() || !ok {
		return m, nil
	}
	m.formula = f
	if m.session != nil {
		m.session.SetFormula(string(f))
	}
	m.setStatus("formula: " + string(f))
	return m, m.regenerate(base)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}
	if slot, ok := keys.LockSlot(name); ok {
		m.toggleLock(slot)
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		m.saveSession()
		return m, tea.Quit
	case keys.KeyRegenerate:
		return m, m.regenerate(m.base())
	case keys.KeyFormula:
		if c, ok := m.palette[0].Color(); ok {
			m.pickBase = &c
		}
		m.picker = overlay.NewFormulaPicker(m.formula, m.preview)
		m.picker.SetSize(pickerWidth(m.width), m.height)
	case keys.KeySave:
		return m, m.save()
	case keys.KeyHelp:
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// base is slot 0 when it is locked, so regenerating keeps deriving from it.
func (m *Model) base() *colormath.RGB {
	if !m.locked[0] {
		return nil
	}
	c, ok := m.palette[0].Color()
	if !ok {
		return nil
	}
	return &c
}

func (m *Model) lockVector() []*palette.ColorEntry {
	slots := make([]int, 0, palette.Size)
	for i, l := range m.locked {
		if l {
			slots = append(slots, i)
		}
	}
	return palette.Lock(m.palette, slots...)
}

// regenerate rebuilds the palette from base, or a fresh random base when nil.
func (m *Model) regenerate(base *colormath.RGB) tea.Cmd {
	m.palette = m.gen.Generate(m.formula, base, m.lockVector())
	log.Debug("palette regenerated",
		zap.String("formula", string(m.formula)),
		zap.Strings("colors", m.palette.Hexes()))
	m.resetReveal()
	if m.reveal.Settled() {
		return nil
	}
	return tick()
}

func (m *Model) preview(f palette.Formula) palette.Palette {
	return m.gen.Generate(f, m.pickBase, m.lockVector())
}

func (m *Model) toggleLock(slot int) {
	m.locked[slot] = !m.locked[slot]
	m.palette[slot].Locked = m.locked[slot]
	verb, hex := "unlocked", ""
	if m.locked[slot] {
		verb, hex = "locked", m.palette[slot].Hex
	}
	if m.session != nil {
		m.session.SetLocked(slot, hex)
	}
	m.setStatus(fmt.Sprintf("%s slot %d", verb, slot+1))
}

func (m *Model) save() tea.Cmd {
	if m.store == nil {
		m.setError(errors.New("no palette store configured"))
		return nil
	}
	rec := palettestore.SavedPalette{
		Name:      "swatch-" + m.now().Format("20060102-150405"),
		Formula:   string(m.formula),
		Colors:    append(palette.Palette(nil), m.palette...),
		CreatedAt: m.now().UTC(),
	}
	store := m.store
	return func() tea.Msg {
		return savedMsg{name: rec.Name, err: store.Create(rec)}
	}
}

func (m *Model) saveSession() {
	if m.session == nil {
		return
	}
	if err := m.session.Save(); err != nil {
		log.Warn("save session", zap.Error(err))
	}
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(err error) {
	m.status, m.statusErr = err.Error(), true
	log.Warn("tui action failed", zap.Error(err))
}

// Palette returns the palette currently shown.
func (m *Model) Palette() palette.Palette {
	return m.palette
}

func (m *Model) Formula() palette.Formula {
	return m.formula
}

// Locked reports whether slot is pinned across regenerates.
func (m *Model) Locked(slot int) bool {
	return slot >= 0 && slot < palette.Size && m.locked[slot]
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("swatch"))
	b.WriteString(formulaStyle.Render("  " + string(m.formula)))
	b.WriteString("\n\n")
	b.WriteString(m.swatches())
	b.WriteString("\n\n")

	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys.Map{}))

	view := appStyle.Render(b.String())
	if m.picker != nil && m.width > 0 && m.height > 0 {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.picker.Render())
	} else if m.picker != nil {
		view = lipgloss.JoinVertical(lipgloss.Left, view, m.picker.Render())
	}
	return FillBackground(view, m.height)
}

func (m *Model) swatches() string {
	n := m.reveal.Visible()
	cols := make([]string, 0, n)
	for i := 0; i < n && i < len(m.palette); i++ {
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Center,
			render.Swatch(m.palette[i], swatchWidth),
			slotStyle.Width(swatchWidth).Render(fmt.Sprintf("%d", i+1)),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func pickerWidth(termWidth int) int {
	if termWidth <= 0 || termWidth > 60 {
		return 44
	}
	return termWidth - 4
}
