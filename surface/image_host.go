// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"sync"
)

// ImageHostName is the registry name of ImageHost.
const ImageHostName = "image"

// ImageHost is an off-screen Host that keeps the last presented frame as an
// *image.RGBA. Input is scripted with SetKey and SetMouse.
//
// It is used for snapshots, tests and systems without a display.
// ImageHost is safe for concurrent use.
type ImageHost struct {
	mu sync.Mutex

	width  int
	height int
	img    *image.RGBA

	closed    bool
	frames    int
	maxFrames int

	keys  map[Key]bool
	mouse Mouse
}

// NewImageHost creates an off-screen host with the given dimensions.
// Non-positive dimensions are raised to 1.
func NewImageHost(width, height int) *ImageHost {
	width = max(width, 1)
	height = max(height, 1)
	return &ImageHost{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		keys:   make(map[Key]bool),
	}
}

// SetMaxFrames makes the host close itself after n presented frames.
// Zero means never.
func (h *ImageHost) SetMaxFrames(n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.maxFrames = n
}

// SetKey sets whether k is reported as held.
func (h *ImageHost) SetKey(k Key, down bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.keys[k] = down
}

// SetMouse sets the reported pointer state.
func (h *ImageHost) SetMouse(m Mouse) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.mouse = m
}

// Resize changes the size reported to the frame loop.
func (h *ImageHost) Resize(width, height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.width = max(width, 1)
	h.height = max(height, 1)
}

// Frames returns the number of frames presented so far.
func (h *ImageHost) Frames() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// Snapshot returns a copy of the last presented frame.
func (h *ImageHost) Snapshot() *image.RGBA {
	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot := image.NewRGBA(h.img.Bounds())
	copy(snapshot.Pix, h.img.Pix)
	return snapshot
}

// Size implements Host.
func (h *ImageHost) Size() (width, height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.width, h.height
}

// IsOpen implements Host.
func (h *ImageHost) IsOpen() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.closed
}

// KeyDown implements Host.
func (h *ImageHost) KeyDown(k Key) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.keys[k]
}

// Mouse implements Host.
func (h *ImageHost) Mouse() Mouse {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mouse
}

// Present implements Host.
func (h *ImageHost) Present(pixels []uint32, width, height int) error {
	if err := CheckFrame(pixels, width, height); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}
	if h.img.Bounds().Dx() != width || h.img.Bounds().Dy() != height {
		h.img = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	for i, v := range pixels {
		j := i * 4
		h.img.Pix[j+0] = uint8(v >> 16)
		h.img.Pix[j+1] = uint8(v >> 8)
		h.img.Pix[j+2] = uint8(v)
		h.img.Pix[j+3] = 0xff
	}

	h.frames++
	if h.maxFrames > 0 && h.frames >= h.maxFrames {
		h.closed = true
	}
	return nil
}

// Run implements Host. The loop runs on the calling goroutine.
func (h *ImageHost) Run(loop func() error) error {
	return loop()
}

// Close implements Host.
func (h *ImageHost) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	return nil
}
