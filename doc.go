// Package minigui provides the pixel model of a minimal immediate-mode GUI.
//
// # Overview
//
// minigui composites a tree of views into a single packed-RGB framebuffer
// and hands it to a host window once per frame. This package holds the
// shared building blocks:
//
//   - Color: 8-bit RGB, packed into the framebuffer as 0x00RRGGBB
//   - Framebuffer: row-major pixel grid with a clamping index resolver,
//     line stroking and box filling
//   - Point, Rect, Segment: float geometry in framebuffer coordinates
//
// Glyph rasterization lives in the text package, views in scene, and the
// frame loop with its host abstraction in surface.
//
// # Quick Start
//
//	fb := minigui.NewFramebuffer(800, 500)
//	fb.DrawLine(minigui.Pt(0, 0), minigui.Pt(99, 99), minigui.White)
//	fb.DrawBox(minigui.Pt(10, 10), minigui.Pt(20, 20), minigui.Red)
//	_ = fb.SavePNG("frame.png")
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Out-of-range Writes
//
// Writes never fail. The resolver clamps the linear index y*width+x into
// the buffer, so a pixel written past the right edge wraps onto the next
// row and one written past the end lands on the last cell.
package minigui

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
