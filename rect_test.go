package minigui

import (
	"math"
	"testing"
)

func TestNewRect_Normalizes(t *testing.T) {
	r := NewRect(Pt(5, -1), Pt(-2, 3))
	want := Rect{Min: Pt(-2, -1), Max: Pt(5, 3)}
	if r != want {
		t.Fatalf("NewRect() = %v, want %v", r, want)
	}
	if r.Width() != 7 || r.Height() != 4 {
		t.Errorf("size = %vx%v, want 7x4", r.Width(), r.Height())
	}
	if r.TopRight() != Pt(5, -1) || r.BottomLeft() != Pt(-2, 3) {
		t.Errorf("corners = %v %v", r.TopRight(), r.BottomLeft())
	}
}

func TestRect_ContainsEdges(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(2, 2))
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(2, 2), true},
		{Pt(1, 2), true},
		{Pt(2.01, 1), false},
		{Pt(-0.01, 1), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRect_UnionExtend(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(1, 1))
	if got := r.Union(NewRect(Pt(3, -1), Pt(4, 0))); got != (Rect{Min: Pt(0, -1), Max: Pt(4, 1)}) {
		t.Errorf("Union() = %v", got)
	}
	if got := r.Extend(Pt(-1, 5)); got != (Rect{Min: Pt(-1, 0), Max: Pt(1, 5)}) {
		t.Errorf("Extend() = %v", got)
	}
}

func TestPoint_IsFinite(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(1, -1), true},
		{Pt(math.NaN(), 0), false},
		{Pt(0, math.Inf(1)), false},
		{Pt(math.Inf(-1), 0), false},
	}
	for _, tt := range tests {
		if got := tt.p.IsFinite(); got != tt.want {
			t.Errorf("IsFinite(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPoint_Lerp(t *testing.T) {
	a, b := Pt(0, 10), Pt(10, 0)
	if got := a.Lerp(b, 0.25); got != Pt(2.5, 7.5) {
		t.Errorf("Lerp(0.25) = %v, want (2.5, 7.5)", got)
	}
	if got := a.Distance(b); math.Abs(got-math.Sqrt(200)) > 1e-12 {
		t.Errorf("Distance() = %v", got)
	}
}
