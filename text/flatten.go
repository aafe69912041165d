package text

import (
	"math"

	"github.com/gogpu/minigui"
)

// FlattenTolerance is the maximum distance in pixels between a curve and the
// polyline that replaces it in CurveFlatten mode.
const FlattenTolerance = 0.5

// maxFlattenDepth caps subdivision for curves with non-finite or huge
// coordinates. 2^10 pieces is far more than any glyph needs.
const maxFlattenDepth = 10

// flattenQuad appends the end points of the polyline approximating the
// quadratic p0-p1-p2 to dst. p0 itself is not appended.
func flattenQuad(dst []minigui.Point, p0, p1, p2 minigui.Point, tolerance float64) []minigui.Point {
	return flattenQuadRec(dst, p0, p1, p2, tolerance, 0)
}

func flattenQuadRec(dst []minigui.Point, p0, p1, p2 minigui.Point, tolerance float64, depth int) []minigui.Point {
	if depth >= maxFlattenDepth || !(distanceToLine(p1, p0, p2) >= tolerance) {
		return append(dst, p2)
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	mid := q0.Lerp(q1, 0.5)

	dst = flattenQuadRec(dst, p0, q0, mid, tolerance, depth+1)
	return flattenQuadRec(dst, mid, q1, p2, tolerance, depth+1)
}

// flattenCubic appends the end points of the polyline approximating the
// cubic p0-p1-p2-p3 to dst. p0 itself is not appended.
func flattenCubic(dst []minigui.Point, p0, p1, p2, p3 minigui.Point, tolerance float64) []minigui.Point {
	return flattenCubicRec(dst, p0, p1, p2, p3, tolerance, 0)
}

func flattenCubicRec(dst []minigui.Point, p0, p1, p2, p3 minigui.Point, tolerance float64, depth int) []minigui.Point {
	dist := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxFlattenDepth || !(dist >= tolerance) {
		return append(dst, p3)
	}

	// de Casteljau split at t = 0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	dst = flattenCubicRec(dst, p0, q0, r0, s, tolerance, depth+1)
	return flattenCubicRec(dst, s, r1, q2, p3, tolerance, depth+1)
}

// distanceToLine returns the distance from p to the line through a and b,
// or to a when a and b coincide.
func distanceToLine(p, a, b minigui.Point) float64 {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return p.Distance(a)
	}
	return math.Abs(d.Cross(p.Sub(a))) / l
}
