// Package colormath converts between hex strings, RGB triples, and HSL triples.
//
// HSL values use unit fractions throughout: H in [0,1), S and L in [0,1].
package colormath

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"
)

// RGB is a color with 8-bit channels.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// HSL is a color in hue/saturation/lightness form, all components unit fractions.
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// Hex returns the canonical #RRGGBB form.
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

// String returns the CSS functional form, e.g. rgb(51,102,204).
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// HSL converts c to HSL.
func (c RGB) HSL() HSL {
	return RGBToHSL(c.R, c.G, c.B)
}

// RGB converts h to RGB.
func (h HSL) RGB() RGB {
	return HSLToRGB(h.H, h.S, h.L)
}

// HexToRGB parses a 3- or 6-digit hex color with an optional leading '#'.
// ok is false for malformed input.
func HexToRGB(s string) (RGB, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{}, false
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: b[0], G: b[1], B: b[2]}, true
}

// RGBToHex formats the channels as uppercase #RRGGBB.
func RGBToHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// RGBToHSL converts using the min/max channel algorithm. Achromatic colors
// get H == S == 0.
func RGBToHSL(r, g, b uint8) HSL {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	hi := math.Max(rf, math.Max(gf, bf))
	lo := math.Min(rf, math.Min(gf, bf))
	l := (hi + lo) / 2

	if hi == lo {
		return HSL{H: 0, S: 0, L: l}
	}

	d := hi - lo
	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}

	return HSL{H: WrapHue(h / 6), S: s, L: l}
}

// HSLToRGB converts back to 8-bit channels. h is wrapped into [0,1) and s, l
// are clamped into [0,1] before conversion.
func HSLToRGB(h, s, l float64) RGB {
	h = WrapHue(h)
	s = clamp01(s)
	l = clamp01(l)

	if s == 0 {
		v := channel(l)
		return RGB{R: v, G: v, B: v}
	}

	c := (1 - math.Abs(2*l-1)) * s
	hp := h * 6
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{R: channel(r + m), G: channel(g + m), B: channel(b + m)}
}

// WrapHue wraps a unit-fraction hue into [0,1).
func WrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	// -tiny + 1 rounds to 1.0
	if h >= 1 {
		h = 0
	}
	return h
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
