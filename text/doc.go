// Package text rasterizes styled characters into a minigui.Framebuffer.
//
// The pipeline follows a separation of concerns:
//
//   - Font: heavyweight, shared, immutable font resource
//   - FontParser: pluggable parsing backend (default: go-text/typesetting,
//     alternative: golang.org/x/image/font/sfnt)
//   - Collector: records the outline callbacks of one glyph
//   - Rasterizer: strokes the outline and fills it with an even-odd scanline
//     test
//   - Layouter: walks a String and advances the pen
//
// # Example usage
//
//	font, err := text.NewFont(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s := text.NewString("Hello", font, minigui.White, 24)
//	fb := minigui.NewFramebuffer(800, 500)
//	text.NewLayouter(text.NewRasterizer()).Draw(fb, s, minigui.Pt(10, 10))
//
// # Units
//
// Outlines are collected in font design units with y pointing up. The
// rasterizer divides by a per-character pixel scale
//
//	px = (ascender - descender + LineSpacing) * PixelsPerInch / (pointSize * unitsPerEm)
//
// and flips y to reach framebuffer coordinates.
//
// # Pluggable Parser Backend
//
// Custom parsers can be registered for alternative implementations:
//
//	text.RegisterParser("myparser", myCustomParser)
//	font, err := text.NewFont(data, text.WithParser("myparser"))
package text
