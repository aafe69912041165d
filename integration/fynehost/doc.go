// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fynehost presents frames in an OS window using Fyne.
//
// Fyne needs cgo and OpenGL, so the window host is only compiled with the
// fyne build tag and cgo enabled:
//
//	go build -tags fyne ./cmd/minigui
//
// Importing the package registers the "window" host with the surface
// registry at priority 100. In builds without the tag the entry is still
// listed but reports itself unavailable, so surface.NewHost falls back to
// the next host.
package fynehost

// Name is the registry name of the window host.
const Name = "window"

// Priority is the registry priority of the window host.
const Priority = 100
