package minigui

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// maxLineSteps bounds the number of samples DrawLine takes for a single
// line so that a degenerate, far-away endpoint cannot stall a frame.
const maxLineSteps = 1 << 20

// Framebuffer is a width×height grid of packed 0x00RRGGBB pixels stored
// row-major.
//
// Every access goes through an index resolver that clamps (y*width + x) into
// [0, width*height-1]. Writes outside the grid therefore never fail; they
// land on the first or last cell instead. A Framebuffer with no cells
// discards writes.
//
// Framebuffer is not safe for concurrent use.
type Framebuffer struct {
	width  int
	height int
	pix    []uint32

	// sink absorbs writes to an empty framebuffer.
	sink uint32
}

// NewFramebuffer creates a black framebuffer. Negative dimensions are
// treated as zero.
func NewFramebuffer(width, height int) *Framebuffer {
	width = max(width, 0)
	height = max(height, 0)
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Width returns the width of the framebuffer.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the height of the framebuffer.
func (f *Framebuffer) Height() int {
	return f.height
}

// Pixels returns the raw row-major pixel data. Hosts present this slice
// directly; it is owned by the framebuffer.
func (f *Framebuffer) Pixels() []uint32 {
	return f.pix
}

// Index resolves (x, y) to a cell index clamped into [0, width*height-1].
// It returns -1 only for an empty framebuffer.
func (f *Framebuffer) Index(x, y int) int {
	n := len(f.pix)
	if n == 0 {
		return -1
	}
	i := y*f.width + x
	switch {
	case i < 0:
		return 0
	case i > n-1:
		return n - 1
	}
	return i
}

// PixelAt returns a pointer to the cell for (x, y) after clamping.
// The pointer is never nil.
func (f *Framebuffer) PixelAt(x, y int) *uint32 {
	i := f.Index(x, y)
	if i < 0 {
		return &f.sink
	}
	return &f.pix[i]
}

// Set writes c at (x, y).
func (f *Framebuffer) Set(x, y int, c Color) {
	*f.PixelAt(x, y) = c.Encode()
}

// Get returns the color at (x, y).
func (f *Framebuffer) Get(x, y int) Color {
	return DecodeColor(*f.PixelAt(x, y))
}

// Clear fills the entire framebuffer with a color.
func (f *Framebuffer) Clear(c Color) {
	v := c.Encode()
	for i := range f.pix {
		f.pix[i] = v
	}
}

// DrawLine strokes a one pixel wide line from a to b.
//
// The line is sampled at unit steps along its direction: for every integer
// i in [0, floor(|b-a|)] the pixel containing a + i*(b-a)/|b-a| is written.
// The pixel containing b is written as well, so both endpoints are always
// included. A zero-length line writes the single pixel at a.
func (f *Framebuffer) DrawLine(a, b Point, c Color) {
	if !a.IsFinite() {
		return
	}
	d := a.Distance(b)
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		x, y := a.Floor()
		f.Set(x, y, c)
		return
	}

	u := b.Sub(a).Div(d)
	steps := int(math.Min(math.Floor(d), maxLineSteps))
	for i := 0; i <= steps; i++ {
		x, y := a.Add(u.Mul(float64(i))).Floor()
		f.Set(x, y, c)
	}
	x, y := b.Floor()
	f.Set(x, y, c)
}

// DrawBox fills the inclusive rectangle spanned by min and max by stroking
// a vertical line at every integer column. The corners may be given in any
// order.
func (f *Framebuffer) DrawBox(min, max Point, c Color) {
	x1, y1 := min.Floor()
	x2, y2 := max.Floor()
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for x := x1; x <= x2; x++ {
		f.DrawLine(Pt(float64(x), float64(y1)), Pt(float64(x), float64(y2)), c)
	}
}

// DrawRect draws r either filled or as a one pixel outline.
func (f *Framebuffer) DrawRect(r Rect, c Color, fill bool) {
	if fill {
		f.DrawBox(r.Min, r.Max, c)
		return
	}
	f.DrawLine(r.TopRight(), r.TopLeft(), c)
	f.DrawLine(r.TopLeft(), r.BottomLeft(), c)
	f.DrawLine(r.BottomLeft(), r.BottomRight(), c)
	f.DrawLine(r.BottomRight(), r.TopRight(), c)
}

// ToImage converts the framebuffer to an image.RGBA.
func (f *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for i, v := range f.pix {
		j := i * 4
		img.Pix[j+0] = uint8(v >> 16)
		img.Pix[j+1] = uint8(v >> 8)
		img.Pix[j+2] = uint8(v)
		img.Pix[j+3] = 0xff
	}
	return img
}

// SavePNG saves the framebuffer to a PNG file.
func (f *Framebuffer) SavePNG(path string) error {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	return png.Encode(file, f.ToImage())
}

// At implements the image.Image interface.
// Unlike Get, coordinates outside the bounds report black.
func (f *Framebuffer) At(x, y int) color.Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Black
	}
	return DecodeColor(f.pix[y*f.width+x])
}

// Bounds implements the image.Image interface.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Framebuffer) ColorModel() color.Model {
	return color.RGBAModel
}
