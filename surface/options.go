// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "log/slog"

// Frame rate bounds.
const (
	DefaultFPS = 60
	MinFPS     = 30
)

// LoopOption configures a Loop.
type LoopOption func(*loopConfig)

type loopConfig struct {
	fps    int
	logger *slog.Logger
	input  InputHandler
}

func defaultLoopConfig() loopConfig {
	return loopConfig{fps: DefaultFPS}
}

// WithFPS sets the target frame rate. Values below MinFPS are raised to
// MinFPS.
func WithFPS(fps int) LoopOption {
	return func(c *loopConfig) {
		c.fps = max(fps, MinFPS)
	}
}

// WithLogger sets the logger for loop lifecycle messages. The default is
// the package logger of minigui.
func WithLogger(l *slog.Logger) LoopOption {
	return func(c *loopConfig) {
		c.logger = l
	}
}

// WithInputHandler sets a function called with the host's input state
// before every frame.
func WithInputHandler(h InputHandler) LoopOption {
	return func(c *loopConfig) {
		c.input = h
	}
}
