package colormath

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"
)

// swatchSteps is how many tints and shades Inspect reports.
const swatchSteps = 5

// Info describes a single color.
type Info struct {
	Hex           string   `json:"hex" yaml:"hex"`
	RGB           string   `json:"rgb" yaml:"rgb"`
	HSL           HSL      `json:"hsl" yaml:"hsl"`
	Text          string   `json:"text" yaml:"text"`
	Complementary string   `json:"complementary" yaml:"complementary"`
	Warm          bool     `json:"warm" yaml:"warm"`
	Distance      float64  `json:"complement_distance" yaml:"complement_distance"`
	Tints         []string `json:"tints" yaml:"tints"`
	Shades        []string `json:"shades" yaml:"shades"`
}

// Color returns c as an opaque color.RGBA.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// FromColor converts any color.Color, dropping alpha.
func FromColor(c color.Color) RGB {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return RGB{}
	}
	r, g, b := cf.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Inspect reports derived values for c: its contrast text color, its
// complement and the CIEDE2000 distance to it, warmth, and tint/shade ramps.
func Inspect(c RGB) Info {
	base := c.Color()
	comp := FromColor(gamut.Complementary(base))

	from, _ := colorful.MakeColor(base)
	to, _ := colorful.MakeColor(comp.Color())

	return Info{
		Hex:           c.Hex(),
		RGB:           c.String(),
		HSL:           c.HSL(),
		Text:          ContrastingTextColor(c.Hex()),
		Complementary: comp.Hex(),
		Warm:          gamut.Warm(base),
		Distance:      from.DistanceCIEDE2000(to),
		Tints:         hexes(gamut.Tints(base, swatchSteps)),
		Shades:        hexes(gamut.Shades(base, swatchSteps)),
	}
}

func hexes(cs []color.Color) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromColor(c).Hex())
	}
	return out
}
