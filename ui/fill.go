package ui

import (
	"strings"
)

// FillBackground pads s to at least height lines so the alt-screen renderer
// doesn't leave stale rows below a view that just got shorter (e.g. after the
// formula picker closes).
func FillBackground(s string, height int) string {
	if height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
