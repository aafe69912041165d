//go:build fyne && cgo

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fynehost

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/gogpu/minigui"
	"github.com/gogpu/minigui/surface"
)

func newTestHost(t *testing.T) *Host {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	return newHost(a, surface.Options{Title: "test", Width: 40, Height: 30})
}

func TestHost_Keys(t *testing.T) {
	h := newTestHost(t)

	h.setKey(fyne.KeyEscape, true)
	h.setKey(fyne.KeyA, true)
	if !h.KeyDown(surface.KeyEscape) {
		t.Error("Escape not down")
	}
	h.setKey(fyne.KeyEscape, false)
	if h.KeyDown(surface.KeyEscape) {
		t.Error("Escape still down after release")
	}
}

func TestHost_Mouse(t *testing.T) {
	h := newTestHost(t)
	ev := &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(5, 7)},
		Button:     desktop.MouseButtonSecondary,
	}

	h.view.MouseIn(ev)
	h.view.MouseDown(ev)
	if m := h.Mouse(); m.X != 5 || m.Y != 7 || !m.Inside || !m.Right || m.Left {
		t.Errorf("Mouse() = %+v", m)
	}
	h.view.MouseUp(ev)
	h.view.MouseOut()
	if m := h.Mouse(); m.Right || m.Inside {
		t.Errorf("Mouse() after release = %+v", m)
	}
}

func TestHost_PresentAndClose(t *testing.T) {
	h := newTestHost(t)
	h.view.Resize(fyne.NewSize(4, 2))
	if w, hh := h.Size(); w != 4 || hh != 2 {
		t.Fatalf("Size() = %dx%d, want 4x2", w, hh)
	}

	fb := minigui.NewFramebuffer(4, 2)
	fb.Set(1, 1, minigui.Green)
	if err := h.Present(fb.Pixels(), 4, 2); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	var shown image.Image
	fyne.DoAndWait(func() { shown = h.view.frame.Image })
	if got := minigui.FromColor(shown.At(1, 1)); got != minigui.Green {
		t.Errorf("shown pixel = %v, want green", got)
	}

	_ = h.Close()
	if h.IsOpen() {
		t.Error("IsOpen() after Close")
	}
	if err := h.Present(fb.Pixels(), 4, 2); err != surface.ErrClosed {
		t.Errorf("Present after Close error = %v, want ErrClosed", err)
	}
}
