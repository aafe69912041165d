// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface connects a drawing to a host window.
//
// A Host is anything that can show a packed 0x00RRGGBB pixel buffer and
// report whether it is still open, which keys are held and where the mouse
// is. Loop drives a Drawer at a fixed cadence: every tick it allocates a
// fresh framebuffer of the host's current size, draws into it and presents
// it, until the host closes or Escape is held.
//
// # Registry
//
// Hosts register themselves by name and priority, typically from an init
// function in their own package:
//
//	func init() {
//	    surface.Register("terminal", 10, newTerminalHost, terminalAvailable)
//	}
//
// NewHost then picks the highest priority host that is available:
//
//	host, err := surface.NewHost(surface.Options{Title: "demo", Width: 800, Height: 500})
//
// The built-in "image" host renders off screen and is always available.
package surface
