// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termhost

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/gogpu/minigui"
	"github.com/gogpu/minigui/surface"
)

// Name is the registry name of the terminal host.
const Name = "terminal"

// Priority is the registry priority of the terminal host.
const Priority = 10

// keyHold is how long a key counts as held after a press event.
const keyHold = 150 * time.Millisecond

// halfBlock draws the upper pixel of a cell in the foreground color.
const halfBlock = '▀'

// ErrNotTerminal is returned when standard output is not a terminal.
var ErrNotTerminal = errors.New("termhost: standard output is not a terminal")

func init() {
	surface.Register(Name, Priority, func(opts surface.Options) (surface.Host, error) {
		return New(opts)
	}, Available)
}

// Available reports whether standard input and output are terminals.
func Available() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

// Host is a surface.Host backed by a tcell screen.
type Host struct {
	screen tcell.Screen

	mu      sync.Mutex
	cols    int
	rows    int
	closed  bool
	escape  bool
	pressed map[surface.Key]time.Time
	mouse   surface.Mouse

	now       func() time.Time
	closeOnce sync.Once
}

// New opens the terminal screen. The title is shown where the terminal
// supports it; the requested size is ignored because the terminal decides.
func New(opts surface.Options) (*Host, error) {
	if !Available() {
		return nil, ErrNotTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("termhost: create screen: %w", err)
	}
	h, err := NewWithScreen(screen)
	if err != nil {
		return nil, err
	}
	if opts.Title != "" {
		screen.SetTitle(opts.Title)
	}
	return h, nil
}

// NewWithScreen initializes screen and starts reading its events.
// The host owns screen from now on and finalizes it on Close.
func NewWithScreen(screen tcell.Screen) (*Host, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("termhost: init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	h := &Host{
		screen:  screen,
		pressed: make(map[surface.Key]time.Time),
		now:     time.Now,
	}
	h.cols, h.rows = screen.Size()

	go h.poll()
	return h, nil
}

// poll consumes screen events until the screen is finalized.
func (h *Host) poll() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		h.handle(ev)
	}
}

func (h *Host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isInterrupt(ev) {
			minigui.Logger().Info("termhost: interrupted")
			_ = h.Close()
			return
		}
		if ev.Key() == tcell.KeyEscape {
			h.mu.Lock()
			h.escape = true
			h.mu.Unlock()
			return
		}
		if k, ok := mapKey(ev); ok {
			h.mu.Lock()
			h.pressed[k] = h.now()
			h.mu.Unlock()
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := ev.Buttons()
		h.mu.Lock()
		h.mouse = surface.Mouse{
			X:      x,
			Y:      y * 2,
			Inside: x >= 0 && y >= 0 && x < h.cols && y < h.rows,
			Left:   buttons&tcell.Button1 != 0,
			Right:  buttons&tcell.Button2 != 0,
		}
		h.mu.Unlock()

	case *tcell.EventResize:
		cols, rows := ev.Size()
		h.mu.Lock()
		h.cols, h.rows = cols, rows
		h.mu.Unlock()
		h.screen.Sync()
	}
}

// isInterrupt reports Ctrl-C, whichever way the terminal encodes it.
func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 &&
		(ev.Rune() == 'c' || ev.Rune() == 'C')
}

func mapKey(ev *tcell.EventKey) (surface.Key, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return surface.KeyEnter, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return surface.KeyBackspace, true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return surface.KeySpace, true
		}
	}
	return 0, false
}

// Size implements surface.Host. The height is twice the row count.
func (h *Host) Size() (width, height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cols, h.rows * 2
}

// IsOpen implements surface.Host.
func (h *Host) IsOpen() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.closed
}

// KeyDown implements surface.Host. Escape stays down once pressed.
func (h *Host) KeyDown(k surface.Key) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if k == surface.KeyEscape {
		return h.escape
	}
	t, ok := h.pressed[k]
	return ok && h.now().Sub(t) < keyHold
}

// Mouse implements surface.Host.
func (h *Host) Mouse() surface.Mouse {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mouse
}

// Present implements surface.Host. Pixels beyond the current screen are
// dropped; cells beyond the frame keep their previous content.
func (h *Host) Present(pixels []uint32, width, height int) error {
	if err := surface.CheckFrame(pixels, width, height); err != nil {
		return err
	}
	h.mu.Lock()
	closed, cols, rows := h.closed, h.cols, h.rows
	h.mu.Unlock()
	if closed {
		return surface.ErrClosed
	}

	for y := 0; y < min(rows, (height+1)/2); y++ {
		for x := 0; x < min(cols, width); x++ {
			top := pixels[2*y*width+x]
			bottom := top
			if 2*y+1 < height {
				bottom = pixels[(2*y+1)*width+x]
			}
			style := tcell.StyleDefault.
				Foreground(rgb(top)).
				Background(rgb(bottom))
			h.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	h.screen.Show()
	return nil
}

func rgb(v uint32) tcell.Color {
	c := minigui.DecodeColor(v)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Run implements surface.Host. The loop runs on the calling goroutine and
// the terminal is restored when it returns.
func (h *Host) Run(loop func() error) error {
	err := loop()
	if cerr := h.Close(); err == nil {
		err = cerr
	}
	return err
}

// Close implements surface.Host. It restores the terminal.
func (h *Host) Close() error {
	h.closeOnce.Do(func() {
		h.mu.Lock()
		h.closed = true
		h.mu.Unlock()
		h.screen.Fini()
	})
	return nil
}
