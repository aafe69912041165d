package scene

import (
	"image"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/minigui"
	"github.com/gogpu/minigui/text"
)

func solid(c minigui.Color) PanelStyle {
	return PanelStyle{Stroke: c, Fill: c}
}

func TestScene_PainterOrder(t *testing.T) {
	root := New(40, 40)
	a := NewPanel(root.Layout(), image.Rect(0, 0, 20, 20), solid(minigui.Red))
	b := NewPanel(root.Layout(), image.Rect(10, 10, 30, 30), solid(minigui.Blue))
	root.Add(a)
	root.Add(b)

	fb := minigui.NewFramebuffer(40, 40)
	root.Draw(fb)

	overlap := image.Rect(10, 10, 21, 21)
	for y := overlap.Min.Y; y < overlap.Max.Y; y++ {
		for x := overlap.Min.X; x < overlap.Max.X; x++ {
			if got := fb.Get(x, y); got != minigui.Blue {
				t.Fatalf("overlap pixel (%d,%d) = %v, want blue", x, y, got)
			}
		}
	}
	if got := fb.Get(5, 5); got != minigui.Red {
		t.Errorf("pixel (5,5) = %v, want red", got)
	}
}

func TestScene_ChildrenDrawnAfterParent(t *testing.T) {
	root := New(20, 20)
	p := NewPanel(root.Layout(), image.Rect(0, 0, 19, 19), solid(minigui.Red))
	p.Add(NewPanel(p.Layout(), image.Rect(5, 5, 10, 10), solid(minigui.Green)))
	root.Add(p)

	fb := minigui.NewFramebuffer(20, 20)
	root.Draw(fb)
	if got := fb.Get(7, 7); got != minigui.Green {
		t.Errorf("pixel (7,7) = %v, want green", got)
	}
}

func TestScene_Empty(t *testing.T) {
	root := New(8, 8)
	fb := minigui.NewFramebuffer(8, 8)
	root.Draw(fb)
	for _, v := range fb.Pixels() {
		if v != 0 {
			t.Fatal("empty scene drew pixels")
		}
	}
	if root.Kind() != KindScene || root.AbsolutePosition() != (image.Point{}) {
		t.Errorf("root = %v at %v", root.Kind(), root.AbsolutePosition())
	}
	if got, want := root.Bounds(), image.Rect(0, 0, 8, 8); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestScene_ViewAt(t *testing.T) {
	root := New(100, 100)
	back := NewPanel(root.Layout(), image.Rect(0, 0, 50, 50), PanelStyle{})
	front := NewPanel(back.Layout(), image.Rect(10, 10, 20, 20), PanelStyle{})
	back.Add(front)
	box := NewTextBox(root.Layout(), Px(60), Px(60), 30, 30, nil)
	root.Add(back)
	root.Add(box)

	tests := []struct {
		p    image.Point
		want View
	}{
		{image.Pt(15, 15), front},
		{image.Pt(5, 5), back},
		{image.Pt(50, 50), back},
		{image.Pt(70, 70), box},
		{image.Pt(95, 5), nil},
	}
	for _, tt := range tests {
		if got := root.ViewAt(tt.p); got != tt.want {
			t.Errorf("ViewAt(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestScene_Resize(t *testing.T) {
	root := New(100, 100)
	root.Resize(200, 50)
	if got, want := root.Layout().Bounds, image.Rect(0, 0, 200, 50); got != want {
		t.Errorf("Layout().Bounds = %v, want %v", got, want)
	}
}

func TestScene_DrawsText(t *testing.T) {
	font, err := text.NewFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	root := New(200, 100, WithRasterizer(text.NewRasterizer()))
	root.Add(NewTextBox(root.Layout(), Px(10), Px(10), 180, 80,
		text.NewString("Hi", font, minigui.White, 40)))

	fb := minigui.NewFramebuffer(200, 100)
	root.Draw(fb)

	lit := 0
	for _, v := range fb.Pixels() {
		if v == minigui.White.Encode() {
			lit++
		}
	}
	if lit == 0 {
		t.Error("text box drew nothing")
	}
}
