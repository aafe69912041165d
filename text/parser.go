package text

import "sync"

// GlyphID is a font-specific glyph index.
type GlyphID uint16

// OutlineBuilder receives the outline of a single glyph from a parser.
// Coordinates are font design units with y pointing up.
type OutlineBuilder interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(cx, cy, x, y float32)
	CubeTo(c1x, c1y, c2x, c2y, x, y float32)
	Close()
}

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library.
//
// The default implementation uses github.com/go-text/typesetting.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file. All metrics are in design units.
//
// Implementations must be safe for concurrent use; a Font is shared.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// UnitsPerEm returns the design units per em.
	UnitsPerEm() int

	// Ascender returns the font-wide ascender (positive, above the baseline).
	Ascender() float64

	// Descender returns the font-wide descender (negative, below the baseline).
	Descender() float64

	// GlyphIndex resolves a rune. ok is false if the font has no glyph for r.
	GlyphIndex(r rune) (gid GlyphID, ok bool)

	// HorizontalAdvance returns the pen advance for a glyph.
	HorizontalAdvance(gid GlyphID) float64

	// Outline replays the glyph outline into b in font order.
	// A glyph without contours (such as space) produces no callbacks.
	Outline(gid GlyphID, b OutlineBuilder) error
}

// Registered parser names.
const (
	ParserGoText = "gotext"
	ParserXImage = "ximage"
)

// defaultParserName is the name of the default parser.
const defaultParserName = ParserGoText

var (
	parserMu sync.RWMutex

	// parserRegistry holds registered font parsers.
	parserRegistry = map[string]FontParser{
		ParserGoText: &gotextParser{},
		ParserXImage: &ximageParser{},
	}
)

// RegisterParser registers a custom font parser.
// Registering an existing name replaces the previous parser.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser by name.
func getParser(name string) (FontParser, bool) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	p, ok := parserRegistry[name]
	return p, ok
}
