package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/kastheco/swatch/colormath"
	"github.com/kastheco/swatch/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func primaries() palette.Palette {
	return palette.Palette{
		palette.NewEntry(colormath.RGB{R: 255}),
		palette.NewEntry(colormath.RGB{G: 255}),
		palette.NewEntry(colormath.RGB{B: 255}),
		palette.NewEntry(colormath.RGB{R: 255, G: 255, B: 255}),
		palette.NewEntry(colormath.RGB{}),
	}
}

// assertWellFormed walks every token so malformed markup fails the test.
func assertWellFormed(t *testing.T, svg string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(svg))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		require.NoError(t, err)
	}
}

func TestSVG_ElementCounts(t *testing.T) {
	p := palette.NewSeededGenerator(1).Generate(palette.FormulaRandom, nil, nil)
	svg := DefaultSVG(p)

	assertWellFormed(t, svg)
	assert.Equal(t, 5, strings.Count(svg, "<rect "))
	assert.Equal(t, 10, strings.Count(svg, "<text "))
	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="200" viewBox="0 0 800 200">`))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	for _, e := range p {
		assert.Contains(t, svg, `fill="`+e.Hex+`"`)
		assert.Contains(t, svg, ">"+e.RGB+"</text>")
	}
}

func TestSVG_Layout(t *testing.T) {
	svg := SVG(primaries(), 800, 200)
	assert.Contains(t, svg, `<rect x="0" y="0" width="160" height="200" fill="#FF0000" />`)
	assert.Contains(t, svg, `<rect x="640" y="0" width="160" height="200" fill="#000000" />`)
	assert.Contains(t, svg, `<text x="80" y="100" fill="#FFFFFF" text-anchor="middle" font-family="monospace" font-size="16">#FF0000</text>`)
	assert.Contains(t, svg, `<text x="80" y="124" fill="#FFFFFF" text-anchor="middle" font-family="monospace" font-size="12">rgb(255,0,0)</text>`)
	// white swatch gets black labels
	assert.Contains(t, svg, `<text x="560" y="100" fill="#000000"`)
}

func TestSVG_UnevenWidth(t *testing.T) {
	svg := SVG(primaries()[:3], 100, 50)
	assertWellFormed(t, svg)
	assert.Contains(t, svg, `width="33.333333333333336"`)
	assert.Contains(t, svg, `y="25"`)
}

func TestSVG_EmptyPaletteAndDefaults(t *testing.T) {
	svg := SVG(nil, 0, -1)
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="200" viewBox="0 0 800 200"></svg>`, svg)
}

func TestSVG_EscapesLabels(t *testing.T) {
	p := palette.Palette{{Hex: `"><script>`, RGB: "a&b"}}
	svg := DefaultSVG(p)
	assertWellFormed(t, svg)
	assert.NotContains(t, svg, "<script>")
	assert.Contains(t, svg, "a&amp;b")
	// invalid hex falls back to black labels
	assert.Contains(t, svg, `fill="#000000"`)
}

func TestPNG_SwatchColors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, primaries(), 100, 20))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())

	for i, e := range primaries() {
		want, ok := e.Color()
		require.True(t, ok)
		r, g, b, _ := img.At(i*20+10, 10).RGBA()
		assert.InDelta(t, int(want.R), int(r>>8), 2, "slot %d red", i)
		assert.InDelta(t, int(want.G), int(g>>8), 2, "slot %d green", i)
		assert.InDelta(t, int(want.B), int(b>>8), 2, "slot %d blue", i)
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"":     FormatJSON,
		"json": FormatJSON,
		"YAML": FormatYAML,
		"yml":  FormatYAML,
		"svg":  FormatSVG,
		"png":  FormatPNG,
		"text": FormatText,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("bmp")
	assert.Error(t, err)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/svg+xml", FormatSVG.ContentType())
	assert.Equal(t, "image/png", FormatPNG.ContentType())
	assert.Equal(t, "application/json", FormatJSON.ContentType())
}

func TestWrite_JSONAndYAML(t *testing.T) {
	doc := Document{Formula: "random", Colors: primaries()}

	var js bytes.Buffer
	require.NoError(t, Write(&js, FormatJSON, doc, 0, 0))
	assert.Contains(t, js.String(), `"formula": "random"`)
	assert.Contains(t, js.String(), `"hex": "#FF0000"`)
	assert.Contains(t, js.String(), `"rgb": "rgb(255,0,0)"`)
	assert.Contains(t, js.String(), `"locked": false`)

	var ym bytes.Buffer
	require.NoError(t, Write(&ym, FormatYAML, doc, 0, 0))
	var back Document
	require.NoError(t, yaml.Unmarshal(ym.Bytes(), &back))
	assert.Equal(t, doc, back)
}

func TestWrite_SVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatSVG, Document{Colors: primaries()}, 400, 100))
	assert.Contains(t, buf.String(), `width="400"`)
	assert.Equal(t, 5, strings.Count(buf.String(), "<rect "))
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		if r == '\x1b' {
			inEsc = true
		}
		if !inEsc {
			b.WriteRune(r)
		}
		if inEsc && r == 'm' {
			inEsc = false
		}
	}
	return b.String()
}

func TestTerminal_LabelsEverySwatch(t *testing.T) {
	p := primaries()
	p[2].Locked = true
	out := stripANSI(Terminal(p))
	for _, e := range p {
		assert.Contains(t, out, e.Hex)
	}
	assert.Contains(t, out, "#0000FF"+lockMark)
	assert.Equal(t, 1, strings.Count(out, lockMark))
}
