// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
)

// Key identifies a keyboard key that hosts report.
type Key int

// Keys.
const (
	KeyEscape Key = iota
	KeyEnter
	KeyBackspace
	KeySpace
)

// String returns the name of the key.
func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "Backspace"
	case KeySpace:
		return "Space"
	default:
		return "Unknown"
	}
}

// keys lists every Key in declaration order.
var keys = []Key{KeyEscape, KeyEnter, KeyBackspace, KeySpace}

// Mouse is the pointer state in framebuffer pixels.
type Mouse struct {
	X, Y int

	// Inside reports whether the pointer is over the host surface. X and Y
	// hold the last known position otherwise.
	Inside bool

	Left  bool
	Right bool
}

// Options configures a new host.
type Options struct {
	// Title is the window title, where the host has one.
	Title string

	// Width and Height are the requested size in pixels. Hosts may pick a
	// different size; Size reports the actual one.
	Width  int
	Height int
}

// Host is a window or screen that presents frames and reports input.
//
// Methods other than Run may be called from the goroutine running the loop
// passed to Run.
type Host interface {
	// Size returns the current surface size in pixels.
	Size() (width, height int)

	// IsOpen reports whether the host is still showing. It becomes false
	// once the user closes the window or Close is called.
	IsOpen() bool

	// KeyDown reports whether k is held.
	KeyDown(k Key) bool

	// Mouse returns the current pointer state.
	Mouse() Mouse

	// Present shows a frame. pixels holds width*height packed 0x00RRGGBB
	// values, row-major. The host must not retain pixels after returning.
	Present(pixels []uint32, width, height int) error

	// Run calls loop on whatever goroutine the host needs frames produced
	// on and blocks until loop returns and the host has shut down. It
	// returns loop's error.
	Run(loop func() error) error

	// Close releases the host. It is safe to call more than once.
	Close() error
}

// ErrClosed is returned by Present after the host was closed.
var ErrClosed = errors.New("surface: host closed")

// FrameSizeError is returned by Present when the pixel slice does not hold
// width*height values.
type FrameSizeError struct {
	Width, Height int
	Len           int
}

func (e *FrameSizeError) Error() string {
	return fmt.Sprintf("surface: frame %dx%d needs %d pixels, got %d",
		e.Width, e.Height, e.Width*e.Height, e.Len)
}

// CheckFrame validates the arguments of Present.
func CheckFrame(pixels []uint32, width, height int) error {
	if width < 0 || height < 0 || len(pixels) != width*height {
		return &FrameSizeError{Width: width, Height: height, Len: len(pixels)}
	}
	return nil
}
