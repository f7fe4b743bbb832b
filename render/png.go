package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/kastheco/swatch/palette"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Image rasterizes the swatch SVG. Labels are not drawn; only the rects are.
func Image(p palette.Palette, width, height int) (*image.RGBA, error) {
	width, height = dims(width, height)

	icon, err := oksvg.ReadIconStream(strings.NewReader(SVG(p, width, height)), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse swatch svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)
	return img, nil
}

// PNG writes the rasterized swatches to w.
func PNG(w io.Writer, p palette.Palette, width, height int) error {
	img, err := Image(p, width, height)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
