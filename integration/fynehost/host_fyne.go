//go:build fyne && cgo

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fynehost

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/minigui"
	"github.com/gogpu/minigui/surface"
)

func init() {
	surface.Register(Name, Priority, func(opts surface.Options) (surface.Host, error) {
		return New(opts)
	}, Available)
}

// Available reports true: the binary was built with Fyne.
func Available() bool {
	return true
}

// Host is a surface.Host showing frames in a Fyne window. Sizes are in
// Fyne units, which are pixels at scale 1; frames are stretched to the
// window with nearest-pixel scaling otherwise.
type Host struct {
	app  fyne.App
	win  fyne.Window
	view *surfaceWidget

	mu     sync.Mutex
	width  int
	height int
	closed bool
	keys   map[surface.Key]bool
	mouse  surface.Mouse
}

// New creates a window. It is shown by Run.
func New(opts surface.Options) (*Host, error) {
	return newHost(app.New(), opts), nil
}

func newHost(a fyne.App, opts surface.Options) *Host {
	h := &Host{
		app:    a,
		width:  max(opts.Width, 1),
		height: max(opts.Height, 1),
		keys:   make(map[surface.Key]bool),
	}

	h.win = a.NewWindow(opts.Title)
	h.view = newSurfaceWidget(h)
	h.win.SetContent(h.view)
	h.win.Resize(fyne.NewSize(float32(h.width), float32(h.height)))
	h.win.SetOnClosed(h.markClosed)

	if dc, ok := h.win.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(func(e *fyne.KeyEvent) { h.setKey(e.Name, true) })
		dc.SetOnKeyUp(func(e *fyne.KeyEvent) { h.setKey(e.Name, false) })
	}
	return h
}

func (h *Host) setKey(name fyne.KeyName, down bool) {
	k, ok := mapKey(name)
	if !ok {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.keys[k] = down
}

func mapKey(name fyne.KeyName) (surface.Key, bool) {
	switch name {
	case fyne.KeyEscape:
		return surface.KeyEscape, true
	case fyne.KeyReturn, fyne.KeyEnter:
		return surface.KeyEnter, true
	case fyne.KeyBackspace:
		return surface.KeyBackspace, true
	case fyne.KeySpace:
		return surface.KeySpace, true
	}
	return 0, false
}

func (h *Host) setSize(s fyne.Size) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.width, h.height = int(s.Width), int(s.Height)
}

func (h *Host) setMouse(fn func(m *surface.Mouse)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn(&h.mouse)
}

func (h *Host) markClosed() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
}

// Size implements surface.Host.
func (h *Host) Size() (width, height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.width, h.height
}

// IsOpen implements surface.Host.
func (h *Host) IsOpen() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.closed
}

// KeyDown implements surface.Host.
func (h *Host) KeyDown(k surface.Key) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.keys[k]
}

// Mouse implements surface.Host.
func (h *Host) Mouse() surface.Mouse {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mouse
}

// Present implements surface.Host. The frame is copied and handed to the
// Fyne goroutine.
func (h *Host) Present(pixels []uint32, width, height int) error {
	if err := surface.CheckFrame(pixels, width, height); err != nil {
		return err
	}
	if !h.IsOpen() {
		return surface.ErrClosed
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, v := range pixels {
		c := minigui.DecodeColor(v)
		j := i * 4
		img.Pix[j+0] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = 0xff
	}

	fyne.Do(func() {
		h.view.show(img)
	})
	return nil
}

// Run implements surface.Host. Fyne must own the main goroutine, so loop
// runs on a new goroutine while the window is shown. The application quits
// when loop returns; closing the window makes loop return.
func (h *Host) Run(loop func() error) error {
	errc := make(chan error, 1)
	go func() {
		errc <- loop()
		fyne.Do(h.app.Quit)
	}()

	h.win.ShowAndRun()
	h.markClosed()
	return <-errc
}

// Close implements surface.Host.
func (h *Host) Close() error {
	h.markClosed()
	fyne.Do(h.win.Close)
	return nil
}

// surfaceWidget shows the last presented frame and forwards pointer input.
type surfaceWidget struct {
	widget.BaseWidget

	host  *Host
	frame *canvas.Image
}

var (
	_ desktop.Hoverable = (*surfaceWidget)(nil)
	_ desktop.Mouseable = (*surfaceWidget)(nil)
)

func newSurfaceWidget(h *Host) *surfaceWidget {
	frame := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	frame.FillMode = canvas.ImageFillStretch
	frame.ScaleMode = canvas.ImageScalePixels
	frame.SetMinSize(fyne.NewSize(1, 1))

	w := &surfaceWidget{host: h, frame: frame}
	w.ExtendBaseWidget(w)
	return w
}

// CreateRenderer implements fyne.Widget.
func (w *surfaceWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.frame)
}

// Resize tracks the widget size as the host size.
func (w *surfaceWidget) Resize(s fyne.Size) {
	w.BaseWidget.Resize(s)
	w.host.setSize(s)
}

func (w *surfaceWidget) show(img image.Image) {
	w.frame.Image = img
	w.frame.Refresh()
}

func (w *surfaceWidget) MouseIn(e *desktop.MouseEvent) {
	w.MouseMoved(e)
}

func (w *surfaceWidget) MouseMoved(e *desktop.MouseEvent) {
	w.host.setMouse(func(m *surface.Mouse) {
		m.X, m.Y = int(e.Position.X), int(e.Position.Y)
		m.Inside = true
	})
}

func (w *surfaceWidget) MouseOut() {
	w.host.setMouse(func(m *surface.Mouse) {
		m.Inside = false
	})
}

func (w *surfaceWidget) MouseDown(e *desktop.MouseEvent) {
	w.setButton(e, true)
}

func (w *surfaceWidget) MouseUp(e *desktop.MouseEvent) {
	w.setButton(e, false)
}

func (w *surfaceWidget) setButton(e *desktop.MouseEvent, down bool) {
	w.host.setMouse(func(m *surface.Mouse) {
		m.X, m.Y = int(e.Position.X), int(e.Position.Y)
		switch e.Button {
		case desktop.MouseButtonPrimary:
			m.Left = down
		case desktop.MouseButtonSecondary:
			m.Right = down
		}
	})
}
