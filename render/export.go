package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kastheco/swatch/palette"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding for a palette.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatText Format = "text"
)

// ParseFormat accepts a format name, case-insensitively. "yml" is YAML.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case "yml":
		return FormatYAML, nil
	case FormatJSON, FormatYAML, FormatSVG, FormatPNG, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json, yaml, svg, png, or text)", s)
	}
}

// ContentType is the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Document is the encoded form of a generated palette.
type Document struct {
	Formula string          `json:"formula" yaml:"formula"`
	Colors  palette.Palette `json:"colors" yaml:"colors"`
}

// JSON writes doc as indented JSON.
func JSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// YAML writes doc as YAML.
func YAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// Write encodes doc in format f. width and height apply to svg and png.
func Write(w io.Writer, f Format, doc Document, width, height int) error {
	switch f {
	case FormatYAML:
		return YAML(w, doc)
	case FormatSVG:
		_, err := io.WriteString(w, SVG(doc.Colors, width, height))
		return err
	case FormatPNG:
		return PNG(w, doc.Colors, width, height)
	case FormatText:
		_, err := io.WriteString(w, Terminal(doc.Colors)+"\n")
		return err
	default:
		return JSON(w, doc)
	}
}
