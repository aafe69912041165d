package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Backend: ParserGoText, Err: err}
	}

	upem := int(face.Upem())
	f := &gotextParsedFont{
		face: face,
		upem: upem,
	}

	// Fonts without hhea/OS2 extents fall back to a conventional 80/20 split.
	if ext, ok := face.FontHExtents(); ok {
		f.ascender = float64(ext.Ascender)
		f.descender = float64(ext.Descender)
	} else {
		f.ascender = 0.8 * float64(upem)
		f.descender = -0.2 * float64(upem)
	}
	return f, nil
}

// gotextParsedFont implements ParsedFont on top of a go-text font.Face.
// font.Face is not safe for concurrent use, so every access holds mu.
type gotextParsedFont struct {
	mu   sync.Mutex
	face *font.Face

	upem      int
	ascender  float64
	descender float64
}

// Name implements ParsedFont.Name.
func (f *gotextParsedFont) Name() string {
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return f.upem
}

// Ascender implements ParsedFont.Ascender.
func (f *gotextParsedFont) Ascender() float64 {
	return f.ascender
}

// Descender implements ParsedFont.Descender.
func (f *gotextParsedFont) Descender() float64 {
	return f.descender
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) (GlyphID, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid > 0xFFFF {
		return 0, false
	}
	return GlyphID(gid), true
}

// HorizontalAdvance implements ParsedFont.HorizontalAdvance.
func (f *gotextParsedFont) HorizontalAdvance(gid GlyphID) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return float64(f.face.HorizontalAdvance(font.GID(gid)))
}

// Outline implements ParsedFont.Outline.
// go-text already reports design units with y pointing up.
func (f *gotextParsedFont) Outline(gid GlyphID, b OutlineBuilder) error {
	f.mu.Lock()
	data := f.face.GlyphData(font.GID(gid))
	f.mu.Unlock()

	var outline font.GlyphOutline
	switch d := data.(type) {
	case font.GlyphOutline:
		outline = d
	case nil:
		// No glyph data at all: treat as a blank glyph.
		return nil
	default:
		return ErrNoOutline
	}

	for i, seg := range outline.Segments {
		a := seg.Args
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if i > 0 {
				b.Close()
			}
			b.MoveTo(a[0].X, a[0].Y)
		case ot.SegmentOpLineTo:
			b.LineTo(a[0].X, a[0].Y)
		case ot.SegmentOpQuadTo:
			b.QuadTo(a[0].X, a[0].Y, a[1].X, a[1].Y)
		case ot.SegmentOpCubeTo:
			b.CubeTo(a[0].X, a[0].Y, a[1].X, a[1].Y, a[2].X, a[2].Y)
		}
	}
	if len(outline.Segments) > 0 {
		b.Close()
	}
	return nil
}
