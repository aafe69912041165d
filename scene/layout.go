package scene

import "image"

// Layout is the layout context a parent hands to the views it constructs.
// It is passed by value; children copy what they need and keep no
// reference to the parent.
type Layout struct {
	// Bounds is the parent's absolute bounding box.
	Bounds image.Rectangle
}

// Origin returns the absolute top-left corner of the parent.
func (l Layout) Origin() image.Point {
	return l.Bounds.Min
}

// Resolve returns the absolute point at the given margins from the parent's
// top-left corner. left resolves against the parent width, top against its
// height.
func (l Layout) Resolve(left, top Margin) image.Point {
	return l.Bounds.Min.Add(image.Pt(
		left.Resolve(l.Bounds.Dx()),
		top.Resolve(l.Bounds.Dy()),
	))
}
