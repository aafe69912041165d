package text

// FontOption configures Font creation.
type FontOption func(*fontConfig)

// fontConfig holds configuration for Font.
type fontConfig struct {
	parserName string
}

// defaultFontConfig returns the default font configuration.
func defaultFontConfig() fontConfig {
	return fontConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend.
// The default is "gotext" (github.com/go-text/typesetting); "ximage" uses
// golang.org/x/image/font/sfnt.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) FontOption {
	return func(c *fontConfig) {
		c.parserName = name
	}
}

// CurveMode selects how quadratic and cubic outline segments become line
// segments.
type CurveMode int

const (
	// CurveControlPolygon strokes and fills the control polygon of each
	// curve instead of the curve itself. Cubic segments are emitted as
	// P → end → control2 → control1, leaving the pen on control1.
	CurveControlPolygon CurveMode = iota

	// CurveFlatten subdivides each curve adaptively until every piece is
	// within FlattenTolerance pixels of the true curve.
	CurveFlatten
)

// String returns the string representation of the curve mode.
func (m CurveMode) String() string {
	switch m {
	case CurveControlPolygon:
		return "ControlPolygon"
	case CurveFlatten:
		return "Flatten"
	default:
		return "Unknown"
	}
}

// RasterOption configures a Rasterizer.
type RasterOption func(*rasterConfig)

// rasterConfig holds configuration for Rasterizer.
type rasterConfig struct {
	curveMode CurveMode
}

// defaultRasterConfig returns the default rasterizer configuration.
func defaultRasterConfig() rasterConfig {
	return rasterConfig{
		curveMode: CurveControlPolygon,
	}
}

// WithCurveMode sets how curves are approximated. The default is
// CurveControlPolygon.
func WithCurveMode(m CurveMode) RasterOption {
	return func(c *rasterConfig) {
		c.curveMode = m
	}
}
