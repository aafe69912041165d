package minigui

import "math"

// Segment is a directed line segment in framebuffer coordinates.
type Segment struct {
	Start, End Point
}

// Seg is a convenience function to create a Segment.
func Seg(start, end Point) Segment {
	return Segment{Start: start, End: end}
}

// Translate returns the segment moved by d.
func (s Segment) Translate(d Point) Segment {
	return Segment{Start: s.Start.Add(d), End: s.End.Add(d)}
}

// Bounds returns the axis-aligned bounding box of the segment.
func (s Segment) Bounds() Rect {
	return NewRect(s.Start, s.End)
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Intersects reports whether s and o share at least one point.
// Touching endpoints and collinear overlaps count as intersections.
func (s Segment) Intersects(o Segment) bool {
	d1 := orientation(o.Start, o.End, s.Start)
	d2 := orientation(o.Start, o.End, s.End)
	d3 := orientation(s.Start, s.End, o.Start)
	d4 := orientation(s.Start, s.End, o.End)

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}

	switch {
	case d1 == 0 && s.Start.onSegment(o):
		return true
	case d2 == 0 && s.End.onSegment(o):
		return true
	case d3 == 0 && o.Start.onSegment(s):
		return true
	case d4 == 0 && o.End.onSegment(s):
		return true
	}
	return false
}

// CrossesHorizontalRay reports whether s crosses the horizontal ray r.
// Only the y coordinate of r.Start is used for the ray height.
//
// A segment crosses when its y-span brackets the ray height half-open
// (min <= y < max), so a vertex shared by two edges is counted once.
// Horizontal segments never cross. The crossing x must lie within the
// x-span of r, endpoints included.
func (s Segment) CrossesHorizontalRay(r Segment) bool {
	y := r.Start.Y
	a, b := s.Start, s.End
	if a.Y == b.Y {
		return false
	}
	if a.Y > b.Y {
		a, b = b, a
	}
	if y < a.Y || y >= b.Y {
		return false
	}

	t := (y - a.Y) / (b.Y - a.Y)
	x := a.X + t*(b.X-a.X)
	minX := math.Min(r.Start.X, r.End.X)
	maxX := math.Max(r.Start.X, r.End.X)
	return x >= minX && x <= maxX
}

// orientation returns the sign of the cross product (b-a)x(c-a).
func orientation(a, b, c Point) float64 {
	v := b.Sub(a).Cross(c.Sub(a))
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// onSegment reports whether p, known to be collinear with s, lies within
// the bounding box of s.
func (p Point) onSegment(s Segment) bool {
	return s.Bounds().Contains(p)
}
