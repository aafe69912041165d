//go:build !(fyne && cgo)

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fynehost

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/minigui/surface"
)

func TestStub_RegisteredButUnavailable(t *testing.T) {
	if !slices.Contains(surface.List(), Name) {
		t.Fatalf("List() = %v, want %q registered", surface.List(), Name)
	}
	if slices.Contains(surface.Available(), Name) {
		t.Errorf("Available() = %v, want %q left out", surface.Available(), Name)
	}

	var unavailable *surface.HostUnavailableError
	if _, err := surface.NewHostByName(Name, surface.Options{}); !errors.As(err, &unavailable) {
		t.Errorf("NewHostByName() error = %v, want *HostUnavailableError", err)
	}
}
