package geom

import "math"

// Transformation is an affine map carrying both its matrix and a cached
// inverse, so that repeated shape intersection tests never recompute an
// inverse on the hot path. The invariant matrix.Mult(inverse) ≈ Identity
// must hold for every Transformation built by the parser.
type Transformation struct {
	m, inv Mat4
}

// Identity is the identity Transformation.
var Identity = Transformation{IdentityMat4, IdentityMat4}

// NewTransformation wraps an explicit matrix and its precomputed inverse.
// Use this only when the inverse is already known cheaply (e.g. a
// translation or axis rotation); otherwise prefer FromMatrix.
func NewTransformation(m, inv Mat4) Transformation { return Transformation{m, inv} }

// FromMatrix builds a Transformation from m, computing its inverse.
func FromMatrix(m Mat4) Transformation { return Transformation{m, m.Inv()} }

// Matrix returns the forward matrix.
func (t Transformation) Matrix() Mat4 { return t.m }

// Inverse returns the Transformation with the matrix and inverse swapped.
func (t Transformation) Inverse() Transformation { return Transformation{t.inv, t.m} }

// Compose returns t followed by u: applying the result to a point is the
// same as applying t, then applying u (t.Compose(u) == t * u in matrix
// terms for the row-vector convention used by Mat4.MulPoint).
func (t Transformation) Compose(u Transformation) Transformation {
	return Transformation{t.m.Mult(u.m), u.inv.Mult(t.inv)}
}

// ApplyPoint transforms a Point by the forward matrix.
func (t Transformation) ApplyPoint(p Point) Point { return t.m.MulPoint(p) }

// ApplyVec transforms a free Vec by the forward matrix (ignoring
// translation).
func (t Transformation) ApplyVec(v Vec) Vec { return t.m.MulVec(v) }

// ApplyNormal transforms a Normal by the inverse-transpose of the matrix,
// which is the correct transform for surface normals under non-uniform
// scale.
func (t Transformation) ApplyNormal(n Normal) Normal {
	it := t.inv.Transpose()
	v := it.MulVec(n.ToVec())
	return Normal{v.X, v.Y, v.Z}
}

// InvApplyPoint transforms a Point by the inverse matrix. Shapes use this
// to bring a world-space ray into object space before solving.
func (t Transformation) InvApplyPoint(p Point) Point { return t.inv.MulPoint(p) }

// InvApplyVec transforms a free Vec by the inverse matrix.
func (t Transformation) InvApplyVec(v Vec) Vec { return t.inv.MulVec(v) }

// IsConsistent reports whether m * inv ≈ Identity, the core Transformation
// invariant (spec.md §8 invariant 1).
func (t Transformation) IsConsistent() bool {
	return t.m.Mult(t.inv).Aeq(IdentityMat4)
}

// Translation returns a Transformation that translates by (x, y, z).
func Translation(x, y, z float64) Transformation {
	return Transformation{
		Mat4{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 1, 0,
			x, y, z, 1,
		},
		Mat4{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 1, 0,
			-x, -y, -z, 1,
		},
	}
}

// UniformScaling returns a Transformation that scales all three axes by s.
func UniformScaling(s float64) Transformation { return Scaling(s, s, s) }

// Scaling returns a Transformation that scales each axis independently.
func Scaling(sx, sy, sz float64) Transformation {
	return Transformation{
		Mat4{
			sx, 0, 0, 0,
			0, sy, 0, 0,
			0, 0, sz, 0,
			0, 0, 0, 1,
		},
		Mat4{
			1 / sx, 0, 0, 0,
			0, 1 / sy, 0, 0,
			0, 0, 1 / sz, 0,
			0, 0, 0, 1,
		},
	}
}

// RotationX returns a Transformation that rotates by theta radians around
// the X axis.
func RotationX(theta float64) Transformation {
	s, c := math.Sin(theta), math.Cos(theta)
	m := Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
	return Transformation{m, m.Transpose()}
}

// RotationY returns a Transformation that rotates by theta radians around
// the Y axis.
func RotationY(theta float64) Transformation {
	s, c := math.Sin(theta), math.Cos(theta)
	m := Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
	return Transformation{m, m.Transpose()}
}

// RotationZ returns a Transformation that rotates by theta radians around
// the Z axis.
func RotationZ(theta float64) Transformation {
	s, c := math.Sin(theta), math.Cos(theta)
	m := Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	return Transformation{m, m.Transpose()}
}

// DegToRad converts the SceneLang ROTATE angle (degrees) to radians.
func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }
