package color

import "fmt"

// HdrImage is a width x height buffer of unbounded Color values. Pixels are
// stored row-major with (0, 0) at the top-left corner, matching the
// orientation a renderer fills in scanline order; the PFM export contract
// (§6) walks the same buffer bottom-to-top since that is what the PFM
// format requires on disk.
type HdrImage struct {
	Width, Height int
	pixels        []Color
}

// NewHdrImage allocates a black width x height image.
func NewHdrImage(width, height int) *HdrImage {
	return &HdrImage{Width: width, Height: height, pixels: make([]Color, width*height)}
}

// index converts (x, y) to the row-major pixel offset, panicking (a
// programmer error, never a user-facing one) if out of range.
func (img *HdrImage) index(x, y int) int {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		panic(fmt.Sprintf("HdrImage: pixel (%d,%d) out of range for %dx%d image", x, y, img.Width, img.Height))
	}
	return y*img.Width + x
}

// Get returns the color at (x, y).
func (img *HdrImage) Get(x, y int) Color { return img.pixels[img.index(x, y)] }

// Set writes the color at (x, y). Each image-tracer worker owns a disjoint
// set of (x, y) so concurrent Set calls never race.
func (img *HdrImage) Set(x, y int, c Color) { img.pixels[img.index(x, y)] = c }

// Pixels returns the underlying row-major pixel slice, exposed read-only
// (by reference — callers must not retain it past a concurrent write) for
// bulk consumers such as the PFM/LDR export wrappers.
func (img *HdrImage) Pixels() []Color { return img.pixels }

// At returns the row-major offset into Pixels() for a display-oriented
// (x, y) pair, top-left origin.
func (img *HdrImage) At(x, y int) int { return img.index(x, y) }
