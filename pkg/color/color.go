// Package color provides the RGB color arithmetic used for shading.
//
// Channels are plain float64 values and are never clamped by arithmetic.
// Out-of-gamut values (negative or above 1) are valid intermediates; use
// Clamped or InGamut at the presentation boundary.
package color

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a linear RGB triple.
type Color struct {
	R, G, B float64
}

// New creates a color from its red, green and blue components.
func New(r, g, b float64) Color {
	return Color{r, g, b}
}

// Black returns (0, 0, 0).
func Black() Color {
	return Color{}
}

// White returns (1, 1, 1).
func White() Color {
	return Color{1, 1, 1}
}

// Add returns the component-wise sum.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns the component-wise difference.
func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mul returns the component-wise (Hadamard) product, used to tint one color
// by another.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// ApproxEqual reports whether every channel differs by less than tol.
func (c Color) ApproxEqual(o Color, tol float64) bool {
	return math.Abs(c.R-o.R) < tol &&
		math.Abs(c.G-o.G) < tol &&
		math.Abs(c.B-o.B) < tol
}

// Colorful converts to a go-colorful color without clamping.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// FromColorful converts a go-colorful color.
func FromColorful(cf colorful.Color) Color {
	return Color{cf.R, cf.G, cf.B}
}

// InGamut reports whether every channel lies in [0, 1].
func (c Color) InGamut() bool {
	return c.Colorful().IsValid()
}

// Clamped returns the color with every channel clamped to [0, 1].
func (c Color) Clamped() Color {
	return FromColorful(c.Colorful().Clamped())
}

// Hex returns the "#rrggbb" form of the clamped color.
func (c Color) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// ParseHex parses a "#rgb" or "#rrggbb" string.
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return FromColorful(cf), nil
}
