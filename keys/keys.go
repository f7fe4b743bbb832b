package keys

import "github.com/charmbracelet/bubbles/key"

type KeyName int

const (
	KeyRegenerate KeyName = iota
	KeyLock1
	KeyLock2
	KeyLock3
	KeyLock4
	KeyLock5
	KeyFormula
	KeySave
	KeyHelp
	KeyQuit

	// Picker navigation.
	KeyUp
	KeyDown
	KeyEnter
	KeyEsc
)

// GlobalKeyStringsMap maps raw tea.KeyMsg strings to the main view's actions.
var GlobalKeyStringsMap = map[string]KeyName{
	" ":      KeyRegenerate,
	"space":  KeyRegenerate,
	"r":      KeyRegenerate,
	"1":      KeyLock1,
	"2":      KeyLock2,
	"3":      KeyLock3,
	"4":      KeyLock4,
	"5":      KeyLock5,
	"f":      KeyFormula,
	"s":      KeySave,
	"?":      KeyHelp,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
}

// GlobalkeyBindings holds the help text shown in the status line.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyRegenerate: key.NewBinding(
		key.WithKeys(" ", "space", "r"),
		key.WithHelp("space", "regenerate"),
	),
	KeyLock1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1-5", "lock"),
	),
	KeyLock2: key.NewBinding(key.WithKeys("2")),
	KeyLock3: key.NewBinding(key.WithKeys("3")),
	KeyLock4: key.NewBinding(key.WithKeys("4")),
	KeyLock5: key.NewBinding(key.WithKeys("5")),
	KeyFormula: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "formula"),
	),
	KeySave: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	KeyUp: key.NewBinding(
		key.WithKeys("up", "shift+tab"),
		key.WithHelp("↑", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "tab"),
		key.WithHelp("↓", "down"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "select"),
	),
	KeyEsc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// LockSlot returns the zero-based palette slot toggled by k.
func LockSlot(k KeyName) (int, bool) {
	if k < KeyLock1 || k > KeyLock5 {
		return 0, false
	}
	return int(k - KeyLock1), true
}

// Map adapts the bindings to help.KeyMap.
type Map struct{}

func (Map) ShortHelp() []key.Binding {
	return []key.Binding{
		GlobalkeyBindings[KeyRegenerate],
		GlobalkeyBindings[KeyLock1],
		GlobalkeyBindings[KeyFormula],
		GlobalkeyBindings[KeySave],
		GlobalkeyBindings[KeyHelp],
		GlobalkeyBindings[KeyQuit],
	}
}

func (Map) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{GlobalkeyBindings[KeyRegenerate], GlobalkeyBindings[KeyLock1], GlobalkeyBindings[KeyFormula]},
		{GlobalkeyBindings[KeySave], GlobalkeyBindings[KeyHelp], GlobalkeyBindings[KeyQuit]},
		{GlobalkeyBindings[KeyUp], GlobalkeyBindings[KeyDown], GlobalkeyBindings[KeyEnter], GlobalkeyBindings[KeyEsc]},
	}
}
