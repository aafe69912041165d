// Command minigui opens a window, or a terminal when no window host is
// available, and draws a fixed demo scene until ESC is pressed or the
// window is closed.
//
// Build with -tags fyne (and cgo) for an OS window.
package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/minigui"
	"github.com/gogpu/minigui/scene"
	"github.com/gogpu/minigui/surface"
	"github.com/gogpu/minigui/text"

	_ "github.com/gogpu/minigui/integration/fynehost"
	_ "github.com/gogpu/minigui/integration/termhost"
)

const (
	width  = 800
	height = 500
)

func main() {
	minigui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "minigui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	font, err := text.NewFont(goregular.TTF)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	host, err := surface.NewHost(surface.Options{
		Title:  "minigui - ESC to exit",
		Width:  width,
		Height: height,
	})
	if err != nil {
		return err
	}

	// Without a display there is nothing to watch; draw a single frame.
	if img, ok := host.(*surface.ImageHost); ok {
		minigui.Logger().Warn("no display host available, rendering one off-screen frame")
		img.SetMaxFrames(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, h := host.Size()
	scn, panel := buildScene(w, h, font)
	var held bool
	loop := surface.NewLoop(host, scn, surface.WithInputHandler(func(in surface.Input) {
		// Clicking the panel swaps its colors.
		click := in.Mouse.Left && !held
		held = in.Mouse.Left
		if !click || scn.ViewAt(image.Pt(in.Mouse.X, in.Mouse.Y)) == nil {
			return
		}
		style := panel.Style()
		style.Fill, style.Stroke = style.Stroke, style.Fill
		panel.SetStyle(style)
	}))
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// buildScene lays out a framed panel with a percent sign centered in it.
func buildScene(w, h int, font *text.Font) (*scene.Scene, *scene.Panel) {
	scn := scene.New(w, h)

	panel := scene.NewPanel(scn.Layout(), image.Rect(w/8, h/8, w-w/8, h-h/8), scene.PanelStyle{
		StrokeWidth: 4,
		Stroke:      minigui.Hex("#e0e0e0"),
		Fill:        minigui.Hex("#203040"),
	})
	scn.Add(panel)

	label := text.NewString("%", font, minigui.White, 65)
	panel.Add(scene.NewTextBox(panel.Layout(), scene.Pct(0.5), scene.Pct(0.5), 200, 200, label))

	return scn, panel
}
