// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package termhost presents frames in a terminal using tcell.
//
// Every terminal cell shows two vertically stacked pixels with the upper
// half block character '▀': the foreground color is the upper pixel and the
// background color the lower one. A terminal of C columns and R rows is
// therefore a C×2R pixel surface. True-color terminals show frames exactly;
// others get tcell's nearest palette color.
//
// Importing the package registers the "terminal" host with the surface
// registry at priority 10:
//
//	import _ "github.com/gogpu/minigui/integration/termhost"
//
// Escape ends the frame loop and Ctrl-C closes the host. Terminals report
// key presses but not releases, so a key other than Escape counts as held
// for a short time after each press.
package termhost
