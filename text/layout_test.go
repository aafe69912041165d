package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/minigui"
)

func TestLayouter_AdvanceMonotonic(t *testing.T) {
	f, err := NewFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		text string
		size float64
	}{
		{"word", "Hello", 12},
		{"sentence", "The quick brown fox, 42%!", 24},
		{"spaces", "a  b   c", 65},
		{"missing glyph", "a\U0001F600b", 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := minigui.NewFramebuffer(400, 100)
			s := NewString(tt.text, f, minigui.White, tt.size)
			pens := NewLayouter(nil).Draw(fb, s, minigui.Pt(0, 0))

			if len(pens) != len(s) {
				t.Fatalf("got %d pen positions, want %d", len(pens), len(s))
			}
			prev := 0.0
			for i, p := range pens {
				if p < prev {
					t.Errorf("pen after %q = %v, before = %v", s[i].Rune, p, prev)
				}
				prev = p
			}
		})
	}
}

func TestLayouter_MissingGlyphNoAdvance(t *testing.T) {
	f := newFakeFont(t)
	fb := minigui.NewFramebuffer(10, 10)
	s := NewString("RZR", f, minigui.White, fakePointSize)

	pens := NewLayouter(NewRasterizer()).Draw(fb, s, minigui.Pt(0, -600))

	want := []float64{20, 20, 40}
	for i := range want {
		if pens[i] != want[i] {
			t.Errorf("pens = %v, want %v", pens, want)
			break
		}
	}
}

func TestLayouter_Empty(t *testing.T) {
	fb := minigui.NewFramebuffer(10, 10)
	if pens := NewLayouter(nil).Draw(fb, nil, minigui.Pt(0, 0)); len(pens) != 0 {
		t.Errorf("Draw(empty) = %v", pens)
	}
}
