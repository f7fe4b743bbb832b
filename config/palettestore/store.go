// Package palettestore persists named palettes. SQLiteStore keeps them in a
// local database; HTTPStore talks to a `swatch serve` instance that exposes a
// SQLiteStore through NewHandler.
package palettestore

import (
	"errors"
	"fmt"
	"time"

	"github.com/kastheco/swatch/colormath"
	"github.com/kastheco/swatch/palette"
)

var (
	ErrNotFound    = errors.New("palette not found")
	ErrExists      = errors.New("palette already exists")
	ErrInvalidName = errors.New("invalid palette name")

	// ErrInvalidPalette covers malformed colors and request bodies.
	ErrInvalidPalette = errors.New("invalid palette")
)

const maxNameLen = 64

// SavedPalette is a named palette in the library.
type SavedPalette struct {
	Name      string          `json:"name" yaml:"name"`
	Formula   string          `json:"formula" yaml:"formula"`
	Colors    palette.Palette `json:"colors" yaml:"colors"`
	CreatedAt time.Time       `json:"created_at" yaml:"created_at"`
}

// Store is the saved-palette library.
type Store interface {
	Create(p SavedPalette) error
	Get(name string) (SavedPalette, error)
	List() ([]SavedPalette, error)
	Delete(name string) error
	Ping() error
	Close() error
}

// ValidateName ensures a name is safe to use in URLs and file names:
// 1-64 characters from [a-zA-Z0-9_-].
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidName)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidName, name, maxNameLen)
	}
	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9') || c == '_' || c == '-') {
			return fmt.Errorf("%w: %q must contain only letters, digits, hyphens, or underscores", ErrInvalidName, name)
		}
	}
	return nil
}

// Validate checks the name and that the palette holds 1 to palette.Size
// colors, each with a parseable hex and an rgb string for the same color.
func Validate(p SavedPalette) error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	if len(p.Colors) == 0 || len(p.Colors) > palette.Size {
		return fmt.Errorf("%w: want 1-%d colors, got %d", ErrInvalidPalette, palette.Size, len(p.Colors))
	}
	for i, e := range p.Colors {
		c, ok := colormath.HexToRGB(e.Hex)
		if !ok {
			return fmt.Errorf("%w: color %d: bad hex %q", ErrInvalidPalette, i, e.Hex)
		}
		if e.RGB != c.String() {
			return fmt.Errorf("%w: color %d: %q does not match %s", ErrInvalidPalette, i, e.RGB, e.Hex)
		}
	}
	return nil
}
