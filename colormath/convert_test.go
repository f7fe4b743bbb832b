package colormath

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want RGB
	}{
		{"#000000", RGB{0, 0, 0}},
		{"#FFFFFF", RGB{255, 255, 255}},
		{"ffffff", RGB{255, 255, 255}},
		{"#3366cc", RGB{0x33, 0x66, 0xCC}},
		{"#3366CC", RGB{0x33, 0x66, 0xCC}},
		{"#abc", RGB{0xAA, 0xBB, 0xCC}},
		{"ABC", RGB{0xAA, 0xBB, 0xCC}},
		{"#010203", RGB{1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := HexToRGB(tc.in)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHexToRGB_Rejects(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#1234", "#abcd", "#gggggg", "##abc", "12345g", "#12345", "#1234567", " #abc", "#ab c"} {
		t.Run(in, func(t *testing.T) {
			_, ok := HexToRGB(in)
			assert.False(t, ok, "expected %q to be rejected", in)
		})
	}
}

func TestHexToRGB_ShorthandMatchesLongForm(t *testing.T) {
	short, ok := HexToRGB("#abc")
	require.True(t, ok)
	long, ok := HexToRGB("#aabbcc")
	require.True(t, ok)
	assert.Equal(t, long, short)
}

func TestRGBToHex_ZeroPaddedUppercase(t *testing.T) {
	assert.Equal(t, "#000000", RGBToHex(0, 0, 0))
	assert.Equal(t, "#010203", RGBToHex(1, 2, 3))
	assert.Equal(t, "#ABCDEF", RGBToHex(0xab, 0xcd, 0xef))
	assert.Equal(t, "#FFFFFF", RGBToHex(255, 255, 255))
	assert.Equal(t, "#00FF00", RGB{G: 255}.Hex())
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 5 {
				want := RGB{uint8(r), uint8(g), uint8(b)}
				got, ok := HexToRGB(RGBToHex(want.R, want.G, want.B))
				require.True(t, ok)
				require.Equal(t, want, got)
			}
		}
	}
}

func TestRGBToHSL_Primaries(t *testing.T) {
	cases := []struct {
		name string
		in   RGB
		want HSL
	}{
		{"red", RGB{255, 0, 0}, HSL{0, 1, 0.5}},
		{"green", RGB{0, 255, 0}, HSL{1.0 / 3, 1, 0.5}},
		{"blue", RGB{0, 0, 255}, HSL{2.0 / 3, 1, 0.5}},
		{"magenta", RGB{255, 0, 255}, HSL{5.0 / 6, 1, 0.5}},
		{"black", RGB{0, 0, 0}, HSL{0, 0, 0}},
		{"white", RGB{255, 255, 255}, HSL{0, 0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.HSL()
			assert.InDelta(t, tc.want.H, got.H, 1e-9)
			assert.InDelta(t, tc.want.S, got.S, 1e-9)
			assert.InDelta(t, tc.want.L, got.L, 1e-9)
		})
	}
}

func TestRGBToHSL_Achromatic(t *testing.T) {
	got := RGBToHSL(128, 128, 128)
	assert.Equal(t, 0.0, got.H)
	assert.Equal(t, 0.0, got.S)
	assert.InDelta(t, 128.0/255, got.L, 1e-12)
}

func TestRGBToHSL_MatchesColorful(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				h, s, l := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsl()
				got := c.HSL()
				assert.InDelta(t, WrapHue(h/360), got.H, 1e-9, "hue of %s", c.Hex())
				assert.InDelta(t, s, got.S, 1e-9, "saturation of %s", c.Hex())
				assert.InDelta(t, l, got.L, 1e-9, "lightness of %s", c.Hex())
			}
		}
	}
}

func TestHSLRoundTrip_WithinOne(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 5 {
				want := RGB{uint8(r), uint8(g), uint8(b)}
				hsl := RGBToHSL(want.R, want.G, want.B)
				got := HSLToRGB(hsl.H, hsl.S, hsl.L)
				require.InDelta(t, int(want.R), int(got.R), 1, "red of %s", want.Hex())
				require.InDelta(t, int(want.G), int(got.G), 1, "green of %s", want.Hex())
				require.InDelta(t, int(want.B), int(got.B), 1, "blue of %s", want.Hex())
			}
		}
	}
}

func TestHSLToRGB_Achromatic(t *testing.T) {
	assert.Equal(t, RGB{128, 128, 128}, HSLToRGB(0.7, 0, 0.5))
	assert.Equal(t, RGB{0, 0, 0}, HSLToRGB(0, 0, 0))
	assert.Equal(t, RGB{255, 255, 255}, HSLToRGB(0, 0, 1))
}

func TestHSLToRGB_NormalizesInput(t *testing.T) {
	assert.Equal(t, HSLToRGB(0.25, 1, 0.5), HSLToRGB(1.25, 1, 0.5))
	assert.Equal(t, HSLToRGB(0.75, 1, 0.5), HSLToRGB(-0.25, 1, 0.5))
	assert.Equal(t, HSLToRGB(0.5, 1, 1), HSLToRGB(0.5, 2, 3))
	assert.Equal(t, RGB{0, 0, 0}, HSLToRGB(0.5, -1, -1))
}

func TestHSLToRGB_Sectors(t *testing.T) {
	cases := []struct {
		h    float64
		want RGB
	}{
		{0, RGB{255, 0, 0}},
		{1.0 / 6, RGB{255, 255, 0}},
		{2.0 / 6, RGB{0, 255, 0}},
		{3.0 / 6, RGB{0, 255, 255}},
		{4.0 / 6, RGB{0, 0, 255}},
		{5.0 / 6, RGB{255, 0, 255}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HSLToRGB(tc.h, 1, 0.5), "hue %v", tc.h)
	}
}

func TestWrapHue(t *testing.T) {
	assert.Equal(t, 0.0, WrapHue(0))
	assert.Equal(t, 0.0, WrapHue(1))
	assert.InDelta(t, 0.25, WrapHue(1.25), 1e-12)
	assert.InDelta(t, 0.75, WrapHue(-0.25), 1e-12)
	assert.Less(t, WrapHue(-1e-18), 1.0)
}

func TestRGBString(t *testing.T) {
	assert.Equal(t, "rgb(51,102,204)", RGB{51, 102, 204}.String())
	assert.Equal(t, "rgb(0,0,0)", RGB{}.String())
}
