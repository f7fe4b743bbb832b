package ui

import "github.com/charmbracelet/lipgloss"

// Rosé Pine Moon palette.
// https://rosepinetheme.com/palette/
var (
	colorMuted  = lipgloss.Color("#6e6a86")
	colorSubtle = lipgloss.Color("#908caa")
	colorText   = lipgloss.Color("#e0def4")

	colorLove = lipgloss.Color("#eb6f92") // error
	colorFoam = lipgloss.Color("#9ccfd8") // info
	colorIris = lipgloss.Color("#c4a7e7") // highlight, primary
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorIris)

	formulaStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorFoam)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorLove)

	slotStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Align(lipgloss.Center)

	appStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Foreground(colorText)
)
