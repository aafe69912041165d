// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termhost

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/minigui"
	"github.com/gogpu/minigui/surface"
)

func newSimHost(t *testing.T) (*Host, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	h, err := NewWithScreen(sim)
	if err != nil {
		t.Fatalf("NewWithScreen() error = %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h, sim
}

// eventually waits for events delivered by the poll goroutine.
func eventually(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHost_SizeIsHalfBlocks(t *testing.T) {
	h, sim := newSimHost(t)
	cols, rows := sim.Size()
	w, hh := h.Size()
	if w != cols || hh != rows*2 {
		t.Errorf("Size() = %dx%d, want %dx%d", w, hh, cols, rows*2)
	}
}

func TestHost_Present(t *testing.T) {
	h, sim := newSimHost(t)
	w, hh := h.Size()

	fb := minigui.NewFramebuffer(w, hh)
	fb.Set(3, 4, minigui.Red)  // row 2, upper half
	fb.Set(3, 5, minigui.Blue) // row 2, lower half
	if err := h.Present(fb.Pixels(), w, hh); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	r, _, style, _ := sim.GetContent(3, 2)
	if r != halfBlock {
		t.Errorf("cell rune = %q, want %q", r, halfBlock)
	}
	fg, bg, _ := style.Decompose()
	if want := tcell.NewRGBColor(255, 0, 0); fg != want {
		t.Errorf("foreground = %v, want %v", fg, want)
	}
	if want := tcell.NewRGBColor(0, 0, 255); bg != want {
		t.Errorf("background = %v, want %v", bg, want)
	}
}

func TestHost_PresentErrors(t *testing.T) {
	h, _ := newSimHost(t)
	if err := h.Present(make([]uint32, 3), 2, 2); err == nil {
		t.Error("Present(short frame) error = nil")
	}
	_ = h.Close()
	if err := h.Present([]uint32{0}, 1, 1); err != surface.ErrClosed {
		t.Errorf("Present after Close error = %v, want ErrClosed", err)
	}
	if h.IsOpen() {
		t.Error("IsOpen() after Close")
	}
}

func TestHost_Keys(t *testing.T) {
	h, sim := newSimHost(t)

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	eventually(t, "space", func() bool { return h.KeyDown(surface.KeySpace) })

	// Presses expire; Escape does not.
	h.mu.Lock()
	h.now = func() time.Time { return time.Now().Add(time.Second) }
	h.mu.Unlock()
	if h.KeyDown(surface.KeySpace) {
		t.Error("space still down after the hold time")
	}

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	eventually(t, "escape", func() bool { return h.KeyDown(surface.KeyEscape) })

	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)
	eventually(t, "close", func() bool { return !h.IsOpen() })
}

func TestHost_Mouse(t *testing.T) {
	h, sim := newSimHost(t)

	sim.InjectMouse(4, 3, tcell.Button1, tcell.ModNone)
	eventually(t, "mouse", func() bool { return h.Mouse().Left })

	m := h.Mouse()
	if m.X != 4 || m.Y != 6 || !m.Inside || m.Right {
		t.Errorf("Mouse() = %+v, want left press at (4,6)", m)
	}
}

func TestHost_RunClosesOnReturn(t *testing.T) {
	h, _ := newSimHost(t)
	calls := 0
	if err := h.Run(func() error { calls++; return nil }); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if calls != 1 || h.IsOpen() {
		t.Errorf("calls = %d, open = %v", calls, h.IsOpen())
	}
}
