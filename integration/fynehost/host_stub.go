//go:build !(fyne && cgo)

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fynehost

import (
	"errors"

	"github.com/gogpu/minigui/surface"
)

// ErrNotBuilt is returned when the binary was built without Fyne support.
var ErrNotBuilt = errors.New("fynehost: window host not built; rebuild with -tags fyne and cgo enabled")

func init() {
	surface.Register(Name, Priority, func(surface.Options) (surface.Host, error) {
		return nil, ErrNotBuilt
	}, Available)
}

// Available reports false: this binary has no window support.
func Available() bool {
	return false
}
