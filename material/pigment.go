// Package material provides the Pigment/BRDF/Material triple that gives a
// surface its appearance: what color it is (Pigment), how it scatters light
// (BRDF), and whether it emits light of its own (Material.EmittedRadiance).
package material

import (
	"math"

	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/geom"
)

// Pigment maps a surface uv coordinate to a Color. It is a closed sum of
// three cases (uniform, checkered, image), matching spec.md §4.5's pigment
// table; Go has no sum types, so PigmentKind tags the active case the way a
// hand-rolled discriminated union would in any language without one.
type PigmentKind int

const (
	Uniform PigmentKind = iota
	Checkered
	Image
)

// Pigment is a tagged union over PigmentKind. Exactly the fields relevant to
// Kind are meaningful; the rest are zero.
type Pigment struct {
	Kind PigmentKind

	// Uniform
	Color color.Color

	// Checkered
	Color1, Color2 color.Color
	NumSteps       int

	// Image
	Img *color.HdrImage
}

// NewUniformPigment returns a pigment with a single constant color.
func NewUniformPigment(c color.Color) Pigment { return Pigment{Kind: Uniform, Color: c} }

// NewCheckeredPigment returns an alternating two-color pigment with
// numSteps squares per unit uv axis on each side.
func NewCheckeredPigment(c1, c2 color.Color, numSteps int) Pigment {
	return Pigment{Kind: Checkered, Color1: c1, Color2: c2, NumSteps: numSteps}
}

// NewImagePigment returns a pigment that samples img, wrapping uv in [0,1)²
// to the image's pixel grid.
func NewImagePigment(img *color.HdrImage) Pigment {
	return Pigment{Kind: Image, Img: img}
}

// At evaluates the pigment at surface coordinate uv.
func (p Pigment) At(uv geom.Vec2D) color.Color {
	switch p.Kind {
	case Uniform:
		return p.Color
	case Checkered:
		u := int(math.Floor(uv.U * float64(p.NumSteps)))
		v := int(math.Floor(uv.V * float64(p.NumSteps)))
		if (u+v)%2 == 0 {
			return p.Color1
		}
		return p.Color2
	case Image:
		col := int(uv.U * float64(p.Img.Width))
		row := int(uv.V * float64(p.Img.Height))
		if col >= p.Img.Width {
			col = p.Img.Width - 1
		}
		if row >= p.Img.Height {
			row = p.Img.Height - 1
		}
		if col < 0 {
			col = 0
		}
		if row < 0 {
			row = 0
		}
		return p.Img.Get(col, row)
	default:
		panic("material: unknown pigment kind")
	}
}
