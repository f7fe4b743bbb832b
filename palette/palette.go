// Package palette derives five-color palettes from a base color and a formula.
package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kastheco/swatch/colormath"
)

// Size is the number of slots in a generated palette.
const Size = 5

// ColorEntry is one swatch. Hex and RGB always denote the same color.
type ColorEntry struct {
	Hex    string `json:"hex" yaml:"hex"`
	RGB    string `json:"rgb" yaml:"rgb"`
	Locked bool   `json:"locked" yaml:"locked"`
}

// NewEntry builds an unlocked entry for c.
func NewEntry(c colormath.RGB) ColorEntry {
	return ColorEntry{Hex: c.Hex(), RGB: c.String()}
}

// Color parses the entry's hex back into RGB.
func (e ColorEntry) Color() (colormath.RGB, bool) {
	return colormath.HexToRGB(e.Hex)
}

// Palette is an ordered sequence of swatches; slot 0 is the base.
type Palette []ColorEntry

// Hexes returns the hex value of every slot in order.
func (p Palette) Hexes() []string {
	out := make([]string, len(p))
	for i, e := range p {
		out[i] = e.Hex
	}
	return out
}

// Lock returns a lock vector for p with the given slots pinned. Slots
// outside the palette are ignored.
func Lock(p Palette, slots ...int) []*ColorEntry {
	out := make([]*ColorEntry, len(p))
	for _, s := range slots {
		if s < 0 || s >= len(p) {
			continue
		}
		e := p[s]
		e.Locked = true
		out[s] = &e
	}
	return out
}

// ParseLocks parses "SLOT:COLOR" specs (e.g. "2:#FF8800") into a lock vector
// of length Size. Slots are zero-based.
func ParseLocks(specs []string) ([]*ColorEntry, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make([]*ColorEntry, Size)
	for _, spec := range specs {
		idx, col, ok := strings.Cut(spec, ":")
		if !ok {
			return nil, fmt.Errorf("lock %q: want SLOT:COLOR", spec)
		}
		slot, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil || slot < 0 || slot >= Size {
			return nil, fmt.Errorf("lock %q: slot must be 0-%d", spec, Size-1)
		}
		c, err := colormath.ParseColor(col)
		if err != nil {
			return nil, fmt.Errorf("lock %q: %w", spec, err)
		}
		e := NewEntry(c)
		e.Locked = true
		out[slot] = &e
	}
	return out, nil
}
