package scene

import (
	"image"

	"github.com/gogpu/minigui"
	"github.com/gogpu/minigui/text"
)

// TextBox draws a single line of styled text.
//
// The width and height are logical: they define the box bounds for hit
// testing and child layout but text is neither wrapped nor clipped to them.
type TextBox struct {
	offset image.Point
	bounds image.Rectangle
	text   text.String
}

// NewTextBox creates a text box whose top-left corner sits left and top away
// from the parent's top-left corner. Percentage margins are resolved now,
// against the parent's width and height respectively.
func NewTextBox(parent Layout, left, top Margin, width, height int, s text.String) *TextBox {
	pos := parent.Resolve(left, top)
	return &TextBox{
		offset: pos.Sub(parent.Origin()),
		bounds: image.Rectangle{Min: pos, Max: pos.Add(image.Pt(max(width, 0), max(height, 0)))},
		text:   s,
	}
}

// Text returns the current text.
func (t *TextBox) Text() text.String {
	return t.text
}

// SetText replaces the text. It takes effect on the next frame.
func (t *TextBox) SetText(s text.String) {
	t.text = s
}

// Kind implements View.
func (t *TextBox) Kind() Kind { return KindTextBox }

// Position implements View.
func (t *TextBox) Position() image.Point { return t.offset }

// AbsolutePosition implements View.
func (t *TextBox) AbsolutePosition() image.Point { return t.bounds.Min }

// Bounds implements View.
func (t *TextBox) Bounds() image.Rectangle { return t.bounds }

// Children implements View. A text box has no children.
func (t *TextBox) Children() []View { return nil }

func (t *TextBox) view() {}

// draw lays the text out with its first pen position at the box's
// absolute position.
func (t *TextBox) draw(fb *minigui.Framebuffer, l *text.Layouter) {
	p := t.bounds.Min
	l.Draw(fb, t.text, minigui.Pt(float64(p.X), float64(p.Y)))
}
