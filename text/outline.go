package text

import "github.com/gogpu/minigui"

// OutlinePoint is one recorded outline callback. Coordinates are font design
// units with y pointing up.
//
// The concrete types are Move, Line, Quad and Curve.
type OutlinePoint interface {
	isOutlinePoint()
}

// Move starts a new contour at P.
type Move struct{ P minigui.Point }

// Line is a straight segment from the pen to P.
type Line struct{ P minigui.Point }

// Quad is a quadratic Bézier from the pen through control C to P.
type Quad struct{ C, P minigui.Point }

// Curve is a cubic Bézier from the pen through controls C1 and C2 to P.
type Curve struct{ C1, C2, P minigui.Point }

func (Move) isOutlinePoint()  {}
func (Line) isOutlinePoint()  {}
func (Quad) isOutlinePoint()  {}
func (Curve) isOutlinePoint() {}

// Collector records outline callbacks from a ParsedFont in order.
// It implements OutlineBuilder. Close is a no-op; subpaths are not tracked.
//
// The zero value is ready to use.
type Collector struct {
	points []OutlinePoint
}

// Reset clears the recorded points, keeping the allocation.
func (c *Collector) Reset() {
	clear(c.points)
	c.points = c.points[:0]
}

// MoveTo implements OutlineBuilder.
func (c *Collector) MoveTo(x, y float32) {
	c.points = append(c.points, Move{P: pt32(x, y)})
}

// LineTo implements OutlineBuilder.
func (c *Collector) LineTo(x, y float32) {
	c.points = append(c.points, Line{P: pt32(x, y)})
}

// QuadTo implements OutlineBuilder.
func (c *Collector) QuadTo(cx, cy, x, y float32) {
	c.points = append(c.points, Quad{C: pt32(cx, cy), P: pt32(x, y)})
}

// CubeTo implements OutlineBuilder.
func (c *Collector) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	c.points = append(c.points, Curve{C1: pt32(c1x, c1y), C2: pt32(c2x, c2y), P: pt32(x, y)})
}

// Close implements OutlineBuilder.
func (c *Collector) Close() {}

// Points returns the recorded points. The slice is reused after Reset.
func (c *Collector) Points() []OutlinePoint {
	return c.points
}

// Bounds returns the design-unit bounding box of every recorded coordinate,
// control points included. ok is false when nothing was recorded.
func (c *Collector) Bounds() (bounds minigui.Rect, ok bool) {
	return outlineBounds(c.points)
}

func outlineBounds(points []OutlinePoint) (bounds minigui.Rect, ok bool) {
	add := func(p minigui.Point) {
		if !ok {
			bounds = minigui.Rect{Min: p, Max: p}
			ok = true
			return
		}
		bounds = bounds.Extend(p)
	}
	for _, pt := range points {
		switch p := pt.(type) {
		case Move:
			add(p.P)
		case Line:
			add(p.P)
		case Quad:
			add(p.C)
			add(p.P)
		case Curve:
			add(p.C1)
			add(p.C2)
			add(p.P)
		}
	}
	return bounds, ok
}

func pt32(x, y float32) minigui.Point {
	return minigui.Pt(float64(x), float64(y))
}
