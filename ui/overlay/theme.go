package overlay

import "github.com/charmbracelet/lipgloss"

// Rosé Pine Moon, mirrors ui/theme.go.
var (
	colorBase  = lipgloss.Color("#232136")
	colorMuted = lipgloss.Color("#6e6a86")
	colorText  = lipgloss.Color("#e0def4")

	colorFoam = lipgloss.Color("#9ccfd8") // selection
	colorIris = lipgloss.Color("#c4a7e7") // highlight, primary
)
