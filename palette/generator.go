package palette

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/kastheco/swatch/colormath"
)

// monoLadder is the lightness applied to slots 0-4 by the monochromatic
// formula. Slot 0 takes the ladder value too, so it is not the seed color.
var monoLadder = [Size]float64{0.90, 0.70, 0.50, 0.30, 0.10}

const (
	// Split-complementary hues sit this far either side of the complement.
	splitOffset = 30.0 / 360

	grayStart = 0.8
	grayStep  = 0.15
	grayFloor = 0.1

	// Synthesized base colors stay vibrant and avoid washed-out lightness.
	baseSatMin   = 0.6
	baseSatSpan  = 0.4
	baseLightMin = 0.1
	baseLightMax = 0.5
)

// Generator derives palettes. It owns its random source so tests can seed it;
// the source is only consumed when a base color has to be synthesized.
// A Generator is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator returns a generator drawing from src. A nil src gets a
// randomly seeded PCG.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{rng: rand.New(src)}
}

// NewSeededGenerator returns a deterministic generator.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// RandomBase synthesizes a base color: uniform hue, saturation in [0.6,1.0),
// lightness in [0.1,0.5).
func (g *Generator) RandomBase() colormath.RGB {
	g.mu.Lock()
	defer g.mu.Unlock()
	h := g.rng.Float64()
	s := baseSatMin + g.rng.Float64()*baseSatSpan
	l := baseLightMin + g.rng.Float64()*(baseLightMax-baseLightMin)
	return colormath.HSLToRGB(h, s, l)
}

// Generate returns a palette of Size entries. base may be nil, in which case
// one is synthesized. locked[i], when non-nil, is copied verbatim into slot i;
// locked may be shorter than Size and extra entries are ignored.
func (g *Generator) Generate(formula Formula, base *colormath.RGB, locked []*ColorEntry) Palette {
	var b colormath.RGB
	if base != nil {
		b = *base
	} else {
		b = g.RandomBase()
	}

	colors := derive(formula, b)

	out := make(Palette, Size)
	for i := range out {
		if i < len(locked) && locked[i] != nil {
			out[i] = *locked[i]
			continue
		}
		out[i] = NewEntry(colors[i])
	}
	return out
}

func derive(f Formula, base colormath.RGB) [Size]colormath.RGB {
	switch f.kind() {
	case FormulaMonochromatic:
		return monochromatic(base)
	case FormulaRandom:
		return splitComplementary(base)
	default:
		return grayscale()
	}
}

func monochromatic(base colormath.RGB) [Size]colormath.RGB {
	hsl := base.HSL()
	var out [Size]colormath.RGB
	for i, l := range monoLadder {
		out[i] = colormath.HSLToRGB(hsl.H, hsl.S, l)
	}
	return out
}

// splitComplementary: the base, two hues either side of its complement, then
// lighter desaturated variants of the base and of the first split hue.
func splitComplementary(base colormath.RGB) [Size]colormath.RGB {
	hsl := base.HSL()
	comp := hsl.H + 0.5
	h1 := colormath.WrapHue(comp - splitOffset)
	h2 := colormath.WrapHue(comp + splitOffset)

	return [Size]colormath.RGB{
		base,
		colormath.HSLToRGB(h1, hsl.S, hsl.L),
		colormath.HSLToRGB(h2, hsl.S, hsl.L),
		colormath.HSLToRGB(hsl.H, hsl.S*0.85, math.Min(hsl.L+0.35, 0.92)),
		colormath.HSLToRGB(h1, hsl.S*0.80, math.Min(hsl.L+0.40, 0.94)),
	}
}

func grayscale() [Size]colormath.RGB {
	var out [Size]colormath.RGB
	for i := range out {
		l := math.Max(grayStart-grayStep*float64(i), grayFloor)
		out[i] = colormath.HSLToRGB(0, 0, l)
	}
	return out
}
