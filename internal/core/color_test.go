package core

import "testing"

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		r, g, b uint8
	}{
		{"red", 0, 100, 50, 255, 0, 0},
		{"green", 120, 100, 50, 0, 255, 0},
		{"blue", 240, 100, 50, 0, 0, 255},
		{"white", 0, 0, 100, 255, 255, 255},
		{"black", 200, 80, 0, 0, 0, 0},
		{"negative hue wraps", -120, 100, 50, 0, 0, 255},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := HSL(tc.h, tc.s, tc.l)
			if !c.IsRGB() {
				t.Fatal("HSL() should produce an RGB color")
			}
			r, g, b := c.Components()
			if r != tc.r || g != tc.g || b != tc.b {
				t.Errorf("HSL(%v, %v, %v) = (%d, %d, %d), expected (%d, %d, %d)",
					tc.h, tc.s, tc.l, r, g, b, tc.r, tc.g, tc.b)
			}
		})
	}
}

func TestNamedColorsAreNotRGB(t *testing.T) {
	for c := ColorDefault; c <= ColorBrightRed; c++ {
		if c.IsRGB() {
			t.Errorf("named color %d reports IsRGB", c)
		}
	}
}
