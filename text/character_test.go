package text

import (
	"testing"

	"github.com/gogpu/minigui"
)

func TestNewString(t *testing.T) {
	f := newFakeFont(t)

	tests := []struct {
		name  string
		in    string
		want  string
		count int
	}{
		{"ascii", "abc", "abc", 3},
		{"empty", "", "", 0},
		{"decomposed", "e\u0301", "\u00e9", 1},
		{"already composed", "\u00e9t\u00e9", "\u00e9t\u00e9", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewString(tt.in, f, minigui.Red, 14)
			if len(s) != tt.count {
				t.Errorf("len = %d, want %d", len(s), tt.count)
			}
			if got := s.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
			for _, c := range s {
				if c.Font != f || c.Stroke != minigui.Red || c.PointSize != 14 {
					t.Errorf("character %q not styled: %+v", c.Rune, c)
				}
				if c.Bold || c.Italic || c.Highlight != minigui.Black {
					t.Errorf("character %q has unexpected style: %+v", c.Rune, c)
				}
			}
		})
	}
}
