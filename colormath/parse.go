package colormath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned by ParseColor for input that is neither hex nor rgb(r,g,b).
var ErrInvalidColor = errors.New("invalid color")

// ParseColor accepts a hex color (see HexToRGB) or the functional form
// rgb(r,g,b) with channels in [0,255].
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")") {
		return parseFunctional(s, lower[4:len(lower)-1])
	}
	c, ok := HexToRGB(s)
	if !ok {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

func parseFunctional(orig, args string) (RGB, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("%w: %q: want 3 channels", ErrInvalidColor, orig)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: channel %d out of range", ErrInvalidColor, orig, i)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}
