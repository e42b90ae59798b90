package core

import "math"

// Color is the foreground color of a screen cell. Small values are named
// palette entries; values built with RGB carry a 24-bit color.
type Color uint32

// Named palette entries.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBlack
	ColorGray
	ColorOrange
	ColorPurple
	ColorTeal
	ColorPink
	ColorBrightGreen
	ColorBrightRed
)

const rgbFlag Color = 1 << 24

// RGB builds a true-color value.
func RGB(r, g, b uint8) Color {
	return rgbFlag | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// IsRGB reports whether c was built with RGB.
func (c Color) IsRGB() bool {
	return c&rgbFlag != 0
}

// Components returns the red, green and blue parts of an RGB color.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// HSL converts hue (degrees), saturation and lightness (percent) to RGB.
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = ClampF(s, 0, 100) / 100
	l = ClampF(l, 0, 100) / 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(channel(r+m), channel(g+m), channel(b+m))
}

func channel(v float64) uint8 {
	return uint8(math.Round(ClampF(v, 0, 1) * 255))
}
