// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/minigui"
)

// Drawer draws one frame. *scene.Scene is a Drawer.
type Drawer interface {
	Draw(fb *minigui.Framebuffer)
}

// Resizer is implemented by drawers that want to follow the host size.
// Loop calls Resize before drawing whenever the size changed.
type Resizer interface {
	Resize(width, height int)
}

// Input is the host input state handed to an InputHandler.
type Input struct {
	Mouse Mouse

	// Keys holds the keys held at the start of the frame.
	Keys []Key
}

// Pressed reports whether k is in Keys.
func (in Input) Pressed(k Key) bool {
	for _, key := range in.Keys {
		if key == k {
			return true
		}
	}
	return false
}

// InputHandler reacts to input between frames. It runs on the loop
// goroutine, so it may modify the scene being drawn.
type InputHandler func(Input)

// Loop presents frames from a Drawer on a Host at a fixed cadence.
type Loop struct {
	host   Host
	drawer Drawer
	config loopConfig
	log    *slog.Logger

	frames uint64
	width  int
	height int
}

// NewLoop creates a frame loop.
func NewLoop(host Host, drawer Drawer, opts ...LoopOption) *Loop {
	config := defaultLoopConfig()
	for _, opt := range opts {
		opt(&config)
	}
	log := config.logger
	if log == nil {
		log = minigui.Logger()
	}
	return &Loop{
		host:   host,
		drawer: drawer,
		config: config,
		log:    log,
	}
}

// FPS returns the target frame rate.
func (l *Loop) FPS() int {
	return l.config.fps
}

// Frames returns the number of frames presented.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Run produces frames until the host closes, Escape is held or ctx is
// done. It returns nil when the host closed or Escape was pressed,
// ctx.Err() on cancellation and a wrapped error if presenting failed.
func (l *Loop) Run(ctx context.Context) error {
	return l.host.Run(func() error {
		return l.run(ctx)
	})
}

func (l *Loop) run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.config.fps))
	defer ticker.Stop()

	l.log.Info("surface: frame loop started", "fps", l.config.fps)
	for {
		if !l.host.IsOpen() {
			l.log.Info("surface: host closed", "frames", l.frames)
			return nil
		}
		if l.host.KeyDown(KeyEscape) {
			l.log.Info("surface: escape pressed", "frames", l.frames)
			return nil
		}

		if err := l.Frame(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Frame runs one iteration of the loop: input handling, drawing into a
// fresh framebuffer and presenting it. A host with no area skips drawing.
func (l *Loop) Frame() error {
	if l.config.input != nil {
		l.config.input(l.input())
	}

	w, h := l.host.Size()
	if w <= 0 || h <= 0 {
		l.log.Debug("surface: empty host, frame skipped", "width", w, "height", h)
		return nil
	}
	if w != l.width || h != l.height {
		if r, ok := l.drawer.(Resizer); ok {
			r.Resize(w, h)
		}
		l.width, l.height = w, h
	}

	fb := minigui.NewFramebuffer(w, h)
	l.drawer.Draw(fb)

	if err := l.host.Present(fb.Pixels(), w, h); err != nil {
		return fmt.Errorf("surface: present frame %d: %w", l.frames, err)
	}
	l.frames++
	return nil
}

func (l *Loop) input() Input {
	in := Input{Mouse: l.host.Mouse()}
	for _, k := range keys {
		if l.host.KeyDown(k) {
			in.Keys = append(in.Keys, k)
		}
	}
	return in
}
