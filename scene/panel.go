package scene

import (
	"image"

	"github.com/gogpu/minigui"
)

// PanelStyle describes how a panel is painted.
type PanelStyle struct {
	// StrokeWidth is the width of the border in pixels.
	StrokeWidth int
	Stroke      minigui.Color
	Fill        minigui.Color
}

// Panel is a filled rectangle with a border. It may own child views, which
// are drawn on top of it.
type Panel struct {
	container

	bounds image.Rectangle
	offset image.Point
	style  PanelStyle
}

// NewPanel creates a panel covering r, given relative to the parent's
// top-left corner.
func NewPanel(parent Layout, r image.Rectangle, style PanelStyle) *Panel {
	r = r.Canon()
	return &Panel{
		bounds: r.Add(parent.Origin()),
		offset: r.Min,
		style:  style,
	}
}

// Add appends a child view. Children are drawn after the panel body in the
// order they were added.
func (p *Panel) Add(v View) {
	p.add(v)
}

// Layout returns the context for views constructed inside p.
func (p *Panel) Layout() Layout {
	return Layout{Bounds: p.bounds}
}

// Style returns the panel style.
func (p *Panel) Style() PanelStyle {
	return p.style
}

// SetStyle replaces the panel style.
func (p *Panel) SetStyle(s PanelStyle) {
	p.style = s
}

// Kind implements View.
func (p *Panel) Kind() Kind { return KindPanel }

// Position implements View.
func (p *Panel) Position() image.Point { return p.offset }

// AbsolutePosition implements View.
func (p *Panel) AbsolutePosition() image.Point { return p.bounds.Min }

// Bounds implements View.
func (p *Panel) Bounds() image.Rectangle { return p.bounds }

func (p *Panel) view() {}

// draw paints every pixel of the panel including its right and bottom
// edges. A pixel within StrokeWidth of any edge gets the stroke color,
// everything else the fill color.
func (p *Panel) draw(fb *minigui.Framebuffer) {
	w := p.style.StrokeWidth
	bw, bh := p.bounds.Dx(), p.bounds.Dy()
	stroke, fill := p.style.Stroke.Encode(), p.style.Fill.Encode()

	for x := 0; x <= bw; x++ {
		for y := 0; y <= bh; y++ {
			c := fill
			if x <= w || x >= bw-w || y <= w || y >= bh-w {
				c = stroke
			}
			*fb.PixelAt(p.bounds.Min.X+x, p.bounds.Min.Y+y) = c
		}
	}
}
