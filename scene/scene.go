package scene

import (
	"image"

	"github.com/gogpu/minigui"
	"github.com/gogpu/minigui/text"
)

// Scene is the root of the view tree. It sits at (0, 0), is as large as the
// framebuffer it was created for and has no background of its own.
//
// A Scene is drawn from a single goroutine; modify it only between frames.
type Scene struct {
	container

	bounds   image.Rectangle
	layouter *text.Layouter
}

// Option configures a Scene.
type Option func(*sceneConfig)

type sceneConfig struct {
	raster *text.Rasterizer
}

// WithRasterizer sets the rasterizer used to draw every text box.
func WithRasterizer(r *text.Rasterizer) Option {
	return func(c *sceneConfig) {
		c.raster = r
	}
}

// New creates an empty scene of the given size.
func New(width, height int, opts ...Option) *Scene {
	var config sceneConfig
	for _, opt := range opts {
		opt(&config)
	}
	return &Scene{
		bounds:   image.Rect(0, 0, max(width, 0), max(height, 0)),
		layouter: text.NewLayouter(config.raster),
	}
}

// Add appends a top-level view. Views are drawn in the order they were
// added, so the last one ends up on top.
func (s *Scene) Add(v View) {
	s.add(v)
}

// Layout returns the context for top-level views.
func (s *Scene) Layout() Layout {
	return Layout{Bounds: s.bounds}
}

// Resize changes the scene size. Existing views keep their bounds; only
// views constructed afterwards see the new size.
func (s *Scene) Resize(width, height int) {
	s.bounds = image.Rect(0, 0, max(width, 0), max(height, 0))
}

// Kind implements View.
func (s *Scene) Kind() Kind { return KindScene }

// Position implements View.
func (s *Scene) Position() image.Point { return image.Point{} }

// AbsolutePosition implements View.
func (s *Scene) AbsolutePosition() image.Point { return image.Point{} }

// Bounds implements View.
func (s *Scene) Bounds() image.Rectangle { return s.bounds }

func (s *Scene) view() {}

// Draw draws every view into fb in painter's order. Drawing never fails;
// pixels outside fb are clamped by the framebuffer.
func (s *Scene) Draw(fb *minigui.Framebuffer) {
	for _, v := range s.children {
		s.drawView(fb, v)
	}
}

func (s *Scene) drawView(fb *minigui.Framebuffer, v View) {
	switch v := v.(type) {
	case *Panel:
		v.draw(fb)
	case *TextBox:
		v.draw(fb, s.layouter)
	}
	for _, c := range v.Children() {
		s.drawView(fb, c)
	}
}

// ViewAt returns the view drawn last at p, searching children before their
// parents, or nil if p hits no view. The scene itself is never returned.
func (s *Scene) ViewAt(p image.Point) View {
	return viewAt(s.children, p)
}

func viewAt(views []View, p image.Point) View {
	for i := len(views) - 1; i >= 0; i-- {
		v := views[i]
		if hit := viewAt(v.Children(), p); hit != nil {
			return hit
		}
		// Panels paint their right and bottom edges too.
		b := v.Bounds()
		if v.Kind() == KindPanel {
			b.Max = b.Max.Add(image.Pt(1, 1))
		}
		if p.In(b) {
			return v
		}
	}
	return nil
}
