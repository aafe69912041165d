package scene

import "image"

// View is a node of the scene tree. The implementations are *Scene, *Panel
// and *TextBox; Kind tells them apart without a type switch.
type View interface {
	// Kind returns the concrete type of the view.
	Kind() Kind

	// Position returns the top-left corner relative to the parent.
	Position() image.Point

	// AbsolutePosition returns the top-left corner in framebuffer pixels.
	AbsolutePosition() image.Point

	// Bounds returns the absolute bounding box.
	Bounds() image.Rectangle

	// Children returns the child views in drawing order.
	Children() []View

	view()
}

// container is the child list shared by views that own children.
type container struct {
	children []View
}

func (c *container) add(v View) {
	if v != nil {
		c.children = append(c.children, v)
	}
}

// Children implements View.
func (c *container) Children() []View {
	return c.children
}
