package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/minigui"
)

// Character is a single styled code point.
//
// Bold, Italic and Highlight are carried for callers; the rasterizer only
// uses Rune, PointSize, Stroke and Font.
type Character struct {
	Rune      rune
	Bold      bool
	Italic    bool
	PointSize float64
	Stroke    minigui.Color
	Highlight minigui.Color

	// Font is shared by every character that uses it.
	Font *Font
}

// String is an ordered sequence of styled characters.
type String []Character

// NewString builds a String from s with one font, color and size.
// The input is NFC normalized first so that a base letter followed by a
// combining mark becomes the single precomposed glyph when one exists.
func NewString(s string, font *Font, stroke minigui.Color, pointSize float64) String {
	s = norm.NFC.String(s)
	out := make(String, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, Character{
			Rune:      r,
			PointSize: pointSize,
			Stroke:    stroke,
			Highlight: minigui.Black,
			Font:      font,
		})
	}
	return out
}

// Text returns the plain text of s.
func (s String) Text() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		b.WriteRune(c.Rune)
	}
	return b.String()
}
