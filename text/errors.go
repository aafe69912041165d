package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownParser is returned when a named parser is not registered.
	ErrUnknownParser = errors.New("text: unknown font parser")

	// ErrNoOutline is returned by a parser when a glyph has no vector outline
	// (bitmap or SVG glyphs).
	ErrNoOutline = errors.New("text: glyph has no vector outline")
)

// ParseError is returned when a backend fails to parse font data.
type ParseError struct {
	// Backend is the registered name of the parser that failed.
	Backend string
	Err     error
}

func (e *ParseError) Error() string {
	return "text: " + e.Backend + ": failed to parse font: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
