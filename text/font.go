package text

import (
	"fmt"
	"os"
	"slices"
)

// LineSpacing is the extra design-unit spacing added to ascender-descender
// when deriving the line height.
const LineSpacing = 50

// PixelsPerInch is the fixed resolution used to turn a point size into a
// pixel scale.
const PixelsPerInch = 224

// Metrics holds the font-wide vertical metrics in design units.
type Metrics struct {
	// Ascender is the distance above the baseline (positive).
	Ascender float64

	// Descender is the distance below the baseline (negative).
	Descender float64

	// UnitsPerEm is the number of design units per em.
	UnitsPerEm int
}

// LineHeight returns ascender - descender + LineSpacing.
func (m Metrics) LineHeight() float64 {
	return m.Ascender - m.Descender + LineSpacing
}

// PixelScale returns the divisor that converts design units to pixels at
// the given point size:
//
//	LineHeight * PixelsPerInch / (pointSize * UnitsPerEm)
//
// The result is +Inf or NaN for a non-positive size or em; callers treat
// any value that is not finite and positive as "draw nothing".
func (m Metrics) PixelScale(pointSize float64) float64 {
	return m.LineHeight() * PixelsPerInch / (pointSize * float64(m.UnitsPerEm))
}

// Font represents a loaded font file.
//
// Font is immutable after creation and is shared by reference between all
// characters that use it; it is safe for concurrent use.
// Font must not be copied after creation (enforced by copyCheck).
type Font struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the Font itself.
	addr *Font

	data    []byte
	parsed  ParsedFont
	metrics Metrics
	name    string
	backend string

	outlines *outlineCache
}

// NewFont creates a Font from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFont(data []byte, opts ...FontOption) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultFontConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, ok := getParser(config.parserName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, config.parserName)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := parser.Parse(dataCopy)
	if err != nil {
		return nil, err
	}

	f := &Font{
		data:   dataCopy,
		parsed: parsed,
		metrics: Metrics{
			Ascender:   parsed.Ascender(),
			Descender:  parsed.Descender(),
			UnitsPerEm: parsed.UnitsPerEm(),
		},
		name:     parsed.Name(),
		backend:  config.parserName,
		outlines: newOutlineCache(defaultOutlineCacheSize),
	}
	f.addr = f
	if f.name == "" {
		f.name = "Unknown Font"
	}
	return f, nil
}

// LoadFont reads and parses a font file.
func LoadFont(path string, opts ...FontOption) (*Font, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFont(data, opts...)
}

// Name returns the font family name.
func (f *Font) Name() string {
	f.copyCheck()
	return f.name
}

// Backend returns the name of the parser that loaded the font.
func (f *Font) Backend() string {
	f.copyCheck()
	return f.backend
}

// Metrics returns the font-wide metrics in design units.
func (f *Font) Metrics() Metrics {
	f.copyCheck()
	return f.metrics
}

// Parsed returns the parsed font for glyph lookups and outlines.
func (f *Font) Parsed() ParsedFont {
	f.copyCheck()
	return f.parsed
}

// Data returns the raw font bytes. The slice must not be modified.
func (f *Font) Data() []byte {
	f.copyCheck()
	return f.data
}

// outline returns the collected outline of gid. Outlines depend only on the
// glyph, not on the point size, so they are collected once per Font.
func (f *Font) outline(gid GlyphID) *glyphOutline {
	return f.outlines.getOrCreate(gid, func() *glyphOutline {
		var c Collector
		if err := f.parsed.Outline(gid, &c); err != nil {
			return &glyphOutline{err: err}
		}
		bounds, ok := c.Bounds()
		return &glyphOutline{
			points: slices.Clip(c.Points()),
			bounds: bounds,
			empty:  !ok,
		}
	})
}

// copyCheck panics if Font was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (f *Font) copyCheck() {
	if f.addr != f {
		panic("text: Font must not be copied by value")
	}
}
