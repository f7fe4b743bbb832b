package colormath

const (
	Black = "#000000"
	White = "#FFFFFF"
)

// Luminance returns the perceptual luminance 0.299r + 0.587g + 0.114b in [0,255].
func Luminance(c RGB) float64 {
	return (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000
}

// ContrastingTextColor returns Black for light backgrounds (luminance >= 128)
// and White otherwise. Invalid hex input gets Black.
func ContrastingTextColor(hex string) string {
	c, ok := HexToRGB(hex)
	if !ok {
		return Black
	}
	if Luminance(c) >= 128 {
		return Black
	}
	return White
}
