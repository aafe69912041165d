package text

import (
	"testing"

	"github.com/gogpu/minigui"
)

const fakeParserName = "test-fake"

// fakeGlyph is a hand-made glyph served by fakeParser.
type fakeGlyph struct {
	advance float64
	points  []OutlinePoint
}

// fakeGlyphs uses upem 1000, ascender 800, descender -200. At point size
// fakePointSize the pixel scale is exactly 1.
var fakeGlyphs = map[rune]fakeGlyph{
	'R': {advance: 20, points: []OutlinePoint{
		Move{P: minigui.Pt(0, 0)},
		Line{P: minigui.Pt(10, 0)},
		Line{P: minigui.Pt(10, 10)},
		Line{P: minigui.Pt(0, 10)},
		Line{P: minigui.Pt(0, 0)},
	}},
	' ': {advance: 30},
	'C': {advance: 12, points: []OutlinePoint{
		Move{P: minigui.Pt(0, 0)},
		Curve{C1: minigui.Pt(10, 0), C2: minigui.Pt(10, 10), P: minigui.Pt(0, 10)},
	}},
	'Q': {advance: 12, points: []OutlinePoint{
		Move{P: minigui.Pt(0, 0)},
		Quad{C: minigui.Pt(10, 0), P: minigui.Pt(10, 10)},
	}},
}

// fakePointSize gives (800 + 200 + 50) * 224 / (size * 1000) == 1.
const fakePointSize = 235.2

type fakeParser struct{}

func (fakeParser) Parse([]byte) (ParsedFont, error) { return fakeFont{}, nil }

type fakeFont struct{}

func (fakeFont) Name() string       { return "Fake" }
func (fakeFont) UnitsPerEm() int    { return 1000 }
func (fakeFont) Ascender() float64  { return 800 }
func (fakeFont) Descender() float64 { return -200 }
func (fakeFont) GlyphIndex(r rune) (GlyphID, bool) {
	if _, ok := fakeGlyphs[r]; !ok {
		return 0, false
	}
	return GlyphID(r), true
}

func (fakeFont) HorizontalAdvance(gid GlyphID) float64 {
	return fakeGlyphs[rune(gid)].advance
}

func (fakeFont) Outline(gid GlyphID, b OutlineBuilder) error {
	f32 := func(p minigui.Point) (float32, float32) { return float32(p.X), float32(p.Y) }
	for _, pt := range fakeGlyphs[rune(gid)].points {
		switch p := pt.(type) {
		case Move:
			b.MoveTo(f32(p.P))
		case Line:
			b.LineTo(f32(p.P))
		case Quad:
			cx, cy := f32(p.C)
			x, y := f32(p.P)
			b.QuadTo(cx, cy, x, y)
		case Curve:
			c1x, c1y := f32(p.C1)
			c2x, c2y := f32(p.C2)
			x, y := f32(p.P)
			b.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	b.Close()
	return nil
}

func newFakeFont(t *testing.T) *Font {
	t.Helper()
	RegisterParser(fakeParserName, fakeParser{})
	f, err := NewFont([]byte{0}, WithParser(fakeParserName))
	if err != nil {
		t.Fatalf("NewFont(fake) error = %v", err)
	}
	return f
}

// litPixels returns the coordinates of every non-black pixel.
func litPixels(fb *minigui.Framebuffer) map[[2]int]bool {
	lit := make(map[[2]int]bool)
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if fb.Get(x, y) != minigui.Black {
				lit[[2]int{x, y}] = true
			}
		}
	}
	return lit
}
