package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source represents a loaded font file (TTF or OTF).
// One Source can create multiple Face instances at different sizes.
// Source is heavyweight and should be shared across the application.
//
// Source is safe for concurrent use once created.
type Source struct {
	data []byte
	font *opentype.Font
	name string
}

// NewSource creates a Source from font data.
// The data slice is copied internally and can be reused after this call.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	return &Source{
		data: dataCopy,
		font: f,
		name: extractFontName(f),
	}, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewSource(data)
}

// Name returns the font family name.
func (s *Source) Name() string { return s.name }

// Face creates a Face at the specified size in pixels.
// Face is a lightweight value; create as many as needed.
// Non-positive sizes coerce to 12.
func (s *Source) Face(size float64) *Face {
	if !(size > 0) {
		size = 12
	}
	return &Face{source: s, size: size}
}

// extractFontName reads the family name from the name table, falling back
// to the full name.
func extractFontName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
