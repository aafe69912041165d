package minigui

import (
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestColor_Encode(t *testing.T) {
	if got := RGB(0xAB, 0xCD, 0xEF).Encode(); got != 0x00ABCDEF {
		t.Errorf("Encode() = %#08x, want 0x00abcdef", got)
	}
	if got := DecodeColor(0x00123456); got != RGB(0x12, 0x34, 0x56) {
		t.Errorf("DecodeColor(0x00123456) = %+v, want {0x12 0x34 0x56}", got)
	}
}

func TestColor_DecodeIgnoresUpperByte(t *testing.T) {
	if got := DecodeColor(0xFF123456); got != RGB(0x12, 0x34, 0x56) {
		t.Errorf("DecodeColor(0xFF123456) = %+v", got)
	}
}

func TestColor_Roundtrip(t *testing.T) {
	// Every red/blue pair against a spread of greens keeps the test fast
	// while touching every byte value in every channel.
	for r := 0; r < 256; r++ {
		for b := 0; b < 256; b++ {
			for _, g := range []int{0, 1, 0x7f, 0x80, 0xfe, 0xff, r, b} {
				c := RGB(uint8(r), uint8(g), uint8(b))
				if got := DecodeColor(c.Encode()); got != c {
					t.Fatalf("DecodeColor(Encode(%+v)) = %+v", c, got)
				}
				if c.Encode()>>24 != 0 {
					t.Fatalf("Encode(%+v) has a non-zero upper byte", c)
				}
			}
		}
	}
}

func TestColor_RGBA(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"black", Black, 0, 0, 0, 0xffff},
		{"white", White, 0xffff, 0xffff, 0xffff, 0xffff},
		{"red", Red, 0xffff, 0, 0, 0xffff},
		{"mid", RGB(0x80, 0x40, 0x01), 0x8080, 0x4040, 0x0101, 0xffff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	if got := FromColor(color.RGBA{R: 10, G: 20, B: 30, A: 255}); got != RGB(10, 20, 30) {
		t.Errorf("FromColor(opaque) = %+v", got)
	}
	if got := FromColor(color.NRGBA{R: 200, G: 100, B: 50, A: 128}); got != RGB(200, 100, 50) {
		t.Errorf("FromColor(nrgba) = %+v", got)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Red},
		{"00ff00", Green},
		{"#00F", Blue},
		{"fff", White},
		{"#3498db", RGB(0x34, 0x98, 0xdb)},
		{"", Black},
		{"#12345", Black},
		{"zzzzzz", Black},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Hex(tt.in); got != tt.want {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
