package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/sfnt.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, &ParseError{Backend: ParserXImage, Err: err}
	}

	// Loading at ppem == unitsPerEm makes sfnt's scale factor 1, so every
	// 26.6 value it returns is a design-unit value times 64.
	upem := int(f.UnitsPerEm())
	pf := &ximageParsedFont{
		font: f,
		upem: upem,
		ppem: fixed.I(upem),
	}

	var buf sfnt.Buffer
	m, err := f.Metrics(&buf, pf.ppem, font.HintingNone)
	if err != nil {
		return nil, &ParseError{Backend: ParserXImage, Err: err}
	}
	// sfnt reports both extents as positive distances.
	pf.ascender = fixedToFloat64(m.Ascent)
	pf.descender = -fixedToFloat64(m.Descent)

	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil {
		pf.name = name
	}
	return pf, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// sfnt.Font is safe for concurrent use as long as every call gets its own
// sfnt.Buffer.
type ximageParsedFont struct {
	font *sfnt.Font
	name string
	upem int
	ppem fixed.Int26_6

	ascender  float64
	descender float64
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	return f.name
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return f.upem
}

// Ascender implements ParsedFont.Ascender.
func (f *ximageParsedFont) Ascender() float64 {
	return f.ascender
}

// Descender implements ParsedFont.Descender.
func (f *ximageParsedFont) Descender() float64 {
	return f.descender
}

// GlyphIndex implements ParsedFont.GlyphIndex.
// sfnt maps unknown runes to glyph 0 (.notdef), which counts as missing.
func (f *ximageParsedFont) GlyphIndex(r rune) (GlyphID, bool) {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return GlyphID(idx), true
}

// HorizontalAdvance implements ParsedFont.HorizontalAdvance.
func (f *ximageParsedFont) HorizontalAdvance(gid GlyphID) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), f.ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat64(advance)
}

// Outline implements ParsedFont.Outline.
func (f *ximageParsedFont) Outline(gid GlyphID, b OutlineBuilder) error {
	var buf sfnt.Buffer
	segments, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), f.ppem, nil)
	if err != nil {
		return err
	}

	for i, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if i > 0 {
				b.Close()
			}
			x, y := designPoint(seg.Args[0])
			b.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := designPoint(seg.Args[0])
			b.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := designPoint(seg.Args[0])
			x, y := designPoint(seg.Args[1])
			b.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := designPoint(seg.Args[0])
			c2x, c2y := designPoint(seg.Args[1])
			x, y := designPoint(seg.Args[2])
			b.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if len(segments) > 0 {
		b.Close()
	}
	return nil
}

// designPoint converts an sfnt point (26.6, y down) loaded at ppem ==
// unitsPerEm back to design units with y pointing up.
func designPoint(p fixed.Point26_6) (x, y float32) {
	return float32(p.X) / 64, -float32(p.Y) / 64
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
