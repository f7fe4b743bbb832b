package server_test

import (
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/kastheco/swatch/colormath"
	"github.com/kastheco/swatch/config"
	"github.com/kastheco/swatch/config/palettestore"
	"github.com/kastheco/swatch/palette"
	"github.com/kastheco/swatch/render"
	"github.com/kastheco/swatch/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, withStore bool) *httptest.Server {
	t.Helper()
	var store palettestore.Store
	if withStore {
		store = palettestore.NewTestSQLiteStore(t)
	}
	srv := httptest.NewServer(server.New(palette.NewSeededGenerator(1), store, config.DefaultConfig()))
	t.Cleanup(srv.Close)
	return srv
}

func getDoc(t *testing.T, rawURL string) render.Document {
	t.Helper()
	resp, err := http.Get(rawURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var doc render.Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	return doc
}

func TestPalette_DefaultsToRandomJSON(t *testing.T) {
	srv := newTestServer(t, false)
	doc := getDoc(t, srv.URL+"/v1/palette")
	assert.Equal(t, "random", doc.Formula)
	assert.Len(t, doc.Colors, palette.Size)
}

func TestPalette_BaseAndLocks(t *testing.T) {
	srv := newTestServer(t, false)
	q := url.Values{}
	q.Set("formula", "random")
	q.Set("base", "#3366CC")
	q.Add("lock", "2:#FF8800")
	doc := getDoc(t, srv.URL+"/v1/palette?"+q.Encode())

	require.Len(t, doc.Colors, palette.Size)
	assert.Equal(t, "#3366CC", doc.Colors[0].Hex)
	assert.Equal(t, "#FF8800", doc.Colors[2].Hex)
	assert.True(t, doc.Colors[2].Locked)
}

func TestPalette_UnknownFormulaIsGrayscale(t *testing.T) {
	srv := newTestServer(t, false)
	doc := getDoc(t, srv.URL+"/v1/palette?formula=xyz&base=abc")
	assert.Equal(t, "xyz", doc.Formula)
	for _, e := range doc.Colors {
		c, ok := colormath.HexToRGB(e.Hex)
		require.True(t, ok)
		assert.Equal(t, c.R, c.B)
	}
}

func TestPalette_FormulaNamesAreCaseSensitive(t *testing.T) {
	srv := newTestServer(t, false)
	doc := getDoc(t, srv.URL+"/v1/palette?formula=MONOCHROMATIC&base=3366CC")
	assert.Equal(t, "MONOCHROMATIC", doc.Formula)
	assert.Equal(t, "#CCCCCC", doc.Colors[0].Hex)
}

func TestPalette_SVG(t *testing.T) {
	srv := newTestServer(t, false)
	resp, err := http.Get(srv.URL + "/v1/palette?format=svg&width=500&height=100")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(string(body), "<rect "))
	assert.Contains(t, string(body), `width="500"`)
}

func TestPalette_PNG(t *testing.T) {
	srv := newTestServer(t, false)
	resp, err := http.Get(srv.URL + "/v1/palette?format=png&width=50&height=10")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	img, err := png.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 50, img.Bounds().Dx())
}

func TestPalette_BadRequests(t *testing.T) {
	srv := newTestServer(t, false)
	for _, query := range []string{
		"base=%23gggggg",
		"lock=9:%23FFFFFF",
		"lock=nonsense",
		"format=bmp",
		"width=-5",
		"height=abc",
	} {
		t.Run(query, func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/v1/palette?" + query)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var errResp map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
			assert.NotEmpty(t, errResp["error"])
		})
	}
}

func TestColors_Inspect(t *testing.T) {
	srv := newTestServer(t, false)
	resp, err := http.Get(srv.URL + "/v1/colors/ff0000")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var info colormath.Info
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "#FF0000", info.Hex)
	assert.Equal(t, colormath.White, info.Text)

	bad, err := http.Get(srv.URL + "/v1/colors/zzz")
	require.NoError(t, err)
	bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestFormulas(t *testing.T) {
	srv := newTestServer(t, false)
	resp, err := http.Get(srv.URL + "/v1/formulas")
	require.NoError(t, err)
	defer resp.Body.Close()

	var names []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&names))
	assert.Contains(t, names, "monochromatic")
	assert.Contains(t, names, "random")
}

func TestLibraryRoutes(t *testing.T) {
	srv := newTestServer(t, true)
	client := palettestore.NewHTTPStore(srv.URL)
	require.NoError(t, client.Ping())

	doc := getDoc(t, srv.URL+"/v1/palette?formula=monochromatic&base=%233366CC")
	require.NoError(t, client.Create(palettestore.SavedPalette{Name: "blues", Formula: doc.Formula, Colors: doc.Colors}))

	got, err := client.Get("blues")
	require.NoError(t, err)
	assert.Equal(t, doc.Colors, got.Colors)
}

func TestLibraryRoutes_AbsentWithoutStore(t *testing.T) {
	srv := newTestServer(t, false)
	resp, err := http.Get(srv.URL + "/v1/palettes")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
