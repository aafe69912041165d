package text

import "github.com/gogpu/minigui"

// Layouter draws a String left to right on a single line.
//
// There is no wrapping; text past the right edge of its box is drawn anyway
// and lands wherever the framebuffer clamps it. Metrics are taken from each
// character's own font, so mixed fonts and sizes are allowed in one String.
type Layouter struct {
	raster *Rasterizer
}

// NewLayouter creates a Layouter drawing with r.
// A nil r uses a Rasterizer with default options.
func NewLayouter(r *Rasterizer) *Layouter {
	if r == nil {
		r = NewRasterizer()
	}
	return &Layouter{raster: r}
}

// Rasterizer returns the rasterizer used by l.
func (l *Layouter) Rasterizer() *Rasterizer {
	return l.raster
}

// Draw draws s with its first pen position at origin. It returns the pen
// offset from origin after each character; the last value is the drawn
// width of s. With non-negative glyph advances the offsets never decrease.
func (l *Layouter) Draw(fb *minigui.Framebuffer, s String, origin minigui.Point) []float64 {
	pens := make([]float64, len(s))
	penX := 0.0
	for i, c := range s {
		penX = l.raster.DrawChar(fb, c, origin, penX)
		pens[i] = penX
	}
	return pens
}
