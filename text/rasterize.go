package text

import (
	"math"

	"github.com/gogpu/minigui"
)

// Rasterizer draws single characters into a framebuffer.
//
// Each glyph is drawn by stroking its outline with the character's stroke
// color and then filling it with an even-odd test: every sample point in the
// glyph's bounding box casts a horizontal ray towards the glyph origin and is
// written when the ray crosses an odd number of outline segments. There is
// no anti-aliasing; a sample is either written or not.
//
// A Rasterizer reuses internal buffers and is not safe for concurrent use.
type Rasterizer struct {
	config rasterConfig

	segments []minigui.Segment
	scratch  []minigui.Point
}

// NewRasterizer creates a Rasterizer.
func NewRasterizer(opts ...RasterOption) *Rasterizer {
	config := defaultRasterConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Rasterizer{config: config}
}

// CurveMode returns the configured curve approximation.
func (r *Rasterizer) CurveMode() CurveMode {
	return r.config.curveMode
}

// DrawChar rasterizes c with its pen at origin + (penX, 0) and returns the
// advanced pen offset.
//
// A character whose rune has no glyph, or whose point size gives no usable
// pixel scale, draws nothing and leaves penX unchanged. A glyph with an
// empty outline, such as space, draws nothing but still advances.
func (r *Rasterizer) DrawChar(fb *minigui.Framebuffer, c Character, origin minigui.Point, penX float64) float64 {
	if c.Font == nil {
		return penX
	}
	log := minigui.Logger()

	m := c.Font.Metrics()
	px := m.PixelScale(c.PointSize)
	if !(px > 0) || math.IsInf(px, 0) {
		log.Debug("text: unusable pixel scale, character skipped",
			"rune", c.Rune, "pointSize", c.PointSize)
		return penX
	}

	parsed := c.Font.Parsed()
	gid, ok := parsed.GlyphIndex(c.Rune)
	if !ok {
		log.Debug("text: missing glyph skipped", "rune", c.Rune, "font", c.Font.Name())
		return penX
	}

	g := c.Font.outline(gid)
	if g.err != nil {
		log.Debug("text: glyph outline unavailable", "rune", c.Rune, "gid", gid, "error", g.err)
		return penX
	}

	advance := parsed.HorizontalAdvance(gid) / px
	if g.empty {
		return penX + advance
	}

	off := origin.Add(minigui.Pt(penX, m.Ascender/px+m.Descender/px))
	r.stroke(fb, c.Stroke, g.points, off, px)
	r.fill(fb, c.Stroke, g.bounds, off, px)

	return penX + advance
}

// stroke draws the outline and records the drawn segments for fill.
func (r *Rasterizer) stroke(fb *minigui.Framebuffer, col minigui.Color, points []OutlinePoint, off minigui.Point, px float64) {
	r.segments = r.segments[:0]

	// Design units to pixels, flipping y.
	t := func(p minigui.Point) minigui.Point {
		return minigui.Pt(p.X/px+off.X, -p.Y/px+off.Y)
	}

	var pen minigui.Point
	for _, pt := range points {
		switch p := pt.(type) {
		case Move:
			pen = t(p.P)
		case Line:
			pen = r.line(fb, col, pen, t(p.P))
		case Quad:
			if r.config.curveMode == CurveFlatten {
				r.scratch = flattenQuad(r.scratch[:0], pen, t(p.C), t(p.P), FlattenTolerance)
				pen = r.polyline(fb, col, pen, r.scratch)
				continue
			}
			pen = r.line(fb, col, pen, t(p.C))
			pen = r.line(fb, col, pen, t(p.P))
		case Curve:
			if r.config.curveMode == CurveFlatten {
				r.scratch = flattenCubic(r.scratch[:0], pen, t(p.C1), t(p.C2), t(p.P), FlattenTolerance)
				pen = r.polyline(fb, col, pen, r.scratch)
				continue
			}
			// Control polygon walked end first; the pen finishes on C1.
			pen = r.line(fb, col, pen, t(p.P))
			pen = r.line(fb, col, pen, t(p.C2))
			pen = r.line(fb, col, pen, t(p.C1))
		}
	}
}

// line strokes a to b, records the segment and returns b as the new pen.
func (r *Rasterizer) line(fb *minigui.Framebuffer, col minigui.Color, a, b minigui.Point) minigui.Point {
	fb.DrawLine(a, b, col)
	r.segments = append(r.segments, minigui.Seg(a, b))
	return b
}

func (r *Rasterizer) polyline(fb *minigui.Framebuffer, col minigui.Color, pen minigui.Point, pts []minigui.Point) minigui.Point {
	for _, p := range pts {
		pen = r.line(fb, col, pen, p)
	}
	return pen
}

// fill writes every sample in the glyph box whose ray towards off.X crosses
// an odd number of recorded segments.
func (r *Rasterizer) fill(fb *minigui.Framebuffer, col minigui.Color, bb minigui.Rect, off minigui.Point, px float64) {
	w := bb.Width() / px
	h := bb.Height() / px
	if math.IsNaN(w) || math.IsNaN(h) {
		return
	}
	// A glyph box is never this large; the cap keeps a bogus one from stalling a frame.
	w = math.Min(math.Floor(w), 1<<12)
	h = math.Min(math.Floor(h), 1<<12)

	minX := bb.Min.X / px
	minY := bb.Min.Y / px
	for x := 0; x <= int(w); x++ {
		for y := 0; y <= int(h); y++ {
			ps := off.Add(minigui.Pt(float64(x)+minX, -(float64(y) + minY)))
			ray := minigui.Seg(ps, minigui.Pt(off.X, ps.Y))

			n := 0
			for _, s := range r.segments {
				if s.CrossesHorizontalRay(ray) {
					n++
				}
			}
			if n%2 == 1 {
				sx, sy := ps.Floor()
				fb.Set(sx, sy, col)
			}
		}
	}
}
