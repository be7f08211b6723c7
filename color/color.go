// Package color provides the HDR Color triple and the HdrImage pixel
// buffer that every renderer writes into.
package color

import "math"

// Epsilon is the tolerance used by Aeq.
const Epsilon = 1e-5

// Aeq reports whether a and b differ by less than Epsilon.
func Aeq(a, b float32) bool { return float32(math.Abs(float64(a-b))) < Epsilon }

// Color is an unbounded (HDR) RGB triple.
type Color struct {
	R, G, B float32
}

// Black and White, the named colors used throughout SceneLang's defaults
// table (§6).
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// Add returns c + d.
func (c Color) Add(d Color) Color { return Color{c.R + d.R, c.G + d.G, c.B + d.B} }

// Sub returns c - d.
func (c Color) Sub(d Color) Color { return Color{c.R - d.R, c.G - d.G, c.B - d.B} }

// Mul returns c scaled by s.
func (c Color) Mul(s float32) Color { return Color{c.R * s, c.G * s, c.B * s} }

// Times returns the elementwise (Hadamard) product of c and d, used to
// modulate a pigment's color by incoming light.
func (c Color) Times(d Color) Color { return Color{c.R * d.R, c.G * d.G, c.B * d.B} }

// Luminosity returns the perceptual luminance of c, used by LDR tone
// mapping.
func (c Color) Luminosity() float32 {
	return (maxf(c.R, maxf(c.G, c.B)) + minf(c.R, minf(c.G, c.B))) / 2
}

// MaxComponent returns the largest of the three channels, used as the
// Russian-roulette survival probability in renderer.PathTracer.
func (c Color) MaxComponent() float32 { return maxf(c.R, maxf(c.G, c.B)) }

// Eq reports whether c and d are exactly equal.
func (c Color) Eq(d Color) bool { return c.R == d.R && c.G == d.G && c.B == d.B }

// Aeq reports whether c and d are equal within Epsilon.
func (c Color) Aeq(d Color) bool { return Aeq(c.R, d.R) && Aeq(c.G, d.G) && Aeq(c.B, d.B) }

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
