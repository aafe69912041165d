package scene

import (
	"fmt"
	"math"
)

// Margin is an offset from a parent edge, either in pixels or as a fraction
// of the parent's size along the same axis.
type Margin struct {
	percent bool
	px      uint32
	pct     float64
}

// Px returns a margin of n pixels.
func Px(n uint32) Margin {
	return Margin{px: n}
}

// Pct returns a margin of f times the parent dimension; 0.5 is the middle.
func Pct(f float64) Margin {
	return Margin{percent: true, pct: f}
}

// IsPercent reports whether m is relative to the parent size.
func (m Margin) IsPercent() bool {
	return m.percent
}

// Resolve returns the margin in pixels for a parent dimension of dim:
// n for Px(n) and floor(dim*f) for Pct(f).
func (m Margin) Resolve(dim int) int {
	if !m.percent {
		return int(m.px)
	}
	v := math.Floor(float64(dim) * m.pct)
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Max(math.MinInt32, math.Min(v, math.MaxInt32)))
}

func (m Margin) String() string {
	if m.percent {
		return fmt.Sprintf("%g%%", m.pct*100)
	}
	return fmt.Sprintf("%dpx", m.px)
}
