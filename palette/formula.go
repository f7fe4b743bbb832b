package palette

// Formula selects how the non-base slots are derived.
type Formula string

const (
	FormulaRandom             Formula = "random"
	FormulaSplitComplementary Formula = "split-complementary" // same derivation as random
	FormulaMonochromatic      Formula = "monochromatic"
	FormulaGrayscale          Formula = "grayscale"
)

// Formulas lists the recognized formula names.
func Formulas() []Formula {
	return []Formula{FormulaRandom, FormulaSplitComplementary, FormulaMonochromatic, FormulaGrayscale}
}

// ParseFormula matches name exactly against Formulas(); an empty name means
// random. known is false otherwise, and such names still generate using the
// grayscale ladder.
func ParseFormula(name string) (f Formula, known bool) {
	f = Formula(name)
	if f == "" {
		return FormulaRandom, true
	}
	for _, k := range Formulas() {
		if f == k {
			return f, true
		}
	}
	return f, false
}

// kind maps f onto the derivation it uses. Unrecognized names fall back to
// grayscale rather than failing.
func (f Formula) kind() Formula {
	switch f {
	case "", FormulaRandom, FormulaSplitComplementary:
		return FormulaRandom
	case FormulaMonochromatic:
		return FormulaMonochromatic
	default:
		return FormulaGrayscale
	}
}
