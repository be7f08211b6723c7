package geom

// Matrix functions for 4x4 row-major matrices, following the same explicit
// field layout, Det/Cof/Adj naming and cofactor-expansion approach the
// teacher's math/lin package uses for its 3x3 inverse — generalized here to
// 4x4 since affine Transformations need a full 4x4 inverse, not just a
// rotation-block inverse.
//
//	[Xx, Xy, Xz, Xw]  X-Axis / row 0
//	[Yx, Yy, Yz, Yw]  Y-Axis / row 1
//	[Zx, Zy, Zz, Zw]  Z-Axis / row 2
//	[Wx, Wy, Wz, Ww]  translation row / row 3
type Mat4 struct {
	Xx, Xy, Xz, Xw float64
	Yx, Yy, Yz, Yw float64
	Zx, Zy, Zz, Zw float64
	Wx, Wy, Wz, Ww float64
}

// IdentityMat4 is the 4x4 identity matrix.
var IdentityMat4 = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// row returns the four elements of the given zero-based row.
func (m Mat4) row(i int) (a, b, c, d float64) {
	switch i {
	case 0:
		return m.Xx, m.Xy, m.Xz, m.Xw
	case 1:
		return m.Yx, m.Yy, m.Yz, m.Yw
	case 2:
		return m.Zx, m.Zy, m.Zz, m.Zw
	default:
		return m.Wx, m.Wy, m.Wz, m.Ww
	}
}

// at returns the element at row i, column j (both zero-based).
func (m Mat4) at(i, j int) float64 {
	a, b, c, d := m.row(i)
	switch j {
	case 0:
		return a
	case 1:
		return b
	case 2:
		return c
	default:
		return d
	}
}

// Mult returns l * r. With the row-vector convention of MulPoint (p*M),
// p*(l.Mult(r)) == (p*l)*r: l is applied first, then r.
func (l Mat4) Mult(r Mat4) Mat4 {
	return Mat4{
		l.Xx*r.Xx + l.Xy*r.Yx + l.Xz*r.Zx + l.Xw*r.Wx,
		l.Xx*r.Xy + l.Xy*r.Yy + l.Xz*r.Zy + l.Xw*r.Wy,
		l.Xx*r.Xz + l.Xy*r.Yz + l.Xz*r.Zz + l.Xw*r.Wz,
		l.Xx*r.Xw + l.Xy*r.Yw + l.Xz*r.Zw + l.Xw*r.Ww,

		l.Yx*r.Xx + l.Yy*r.Yx + l.Yz*r.Zx + l.Yw*r.Wx,
		l.Yx*r.Xy + l.Yy*r.Yy + l.Yz*r.Zy + l.Yw*r.Wy,
		l.Yx*r.Xz + l.Yy*r.Yz + l.Yz*r.Zz + l.Yw*r.Wz,
		l.Yx*r.Xw + l.Yy*r.Yw + l.Yz*r.Zw + l.Yw*r.Ww,

		l.Zx*r.Xx + l.Zy*r.Yx + l.Zz*r.Zx + l.Zw*r.Wx,
		l.Zx*r.Xy + l.Zy*r.Yy + l.Zz*r.Zy + l.Zw*r.Wy,
		l.Zx*r.Xz + l.Zy*r.Yz + l.Zz*r.Zz + l.Zw*r.Wz,
		l.Zx*r.Xw + l.Zy*r.Yw + l.Zz*r.Zw + l.Zw*r.Ww,

		l.Wx*r.Xx + l.Wy*r.Yx + l.Wz*r.Zx + l.Ww*r.Wx,
		l.Wx*r.Xy + l.Wy*r.Yy + l.Wz*r.Zy + l.Ww*r.Wy,
		l.Wx*r.Xz + l.Wy*r.Yz + l.Wz*r.Zz + l.Ww*r.Wz,
		l.Wx*r.Xw + l.Wy*r.Yw + l.Wz*r.Zw + l.Ww*r.Ww,
	}
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m.Xx, m.Yx, m.Zx, m.Wx,
		m.Xy, m.Yy, m.Zy, m.Wy,
		m.Xz, m.Yz, m.Zz, m.Wz,
		m.Xw, m.Yw, m.Zw, m.Ww,
	}
}

// Cof returns the (row, col) cofactor of m: the signed determinant of the
// 3x3 minor obtained by deleting that row and column.
func (m Mat4) Cof(row, col int) float64 {
	var sub [9]float64
	k := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			sub[k] = m.at(i, j)
			k++
		}
	}
	det3 := sub[0]*(sub[4]*sub[8]-sub[5]*sub[7]) -
		sub[1]*(sub[3]*sub[8]-sub[5]*sub[6]) +
		sub[2]*(sub[3]*sub[7]-sub[4]*sub[6])
	if (row+col)%2 != 0 {
		return -det3
	}
	return det3
}

// Det returns the determinant of m, expanded along the first row using Cof.
func (m Mat4) Det() float64 {
	a, b, c, d := m.row(0)
	return a*m.Cof(0, 0) + b*m.Cof(0, 1) + c*m.Cof(0, 2) + d*m.Cof(0, 3)
}

// Adj returns the adjugate (transpose of the cofactor matrix) of m.
func (m Mat4) Adj() Mat4 {
	var c [4][4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			c[i][j] = m.Cof(i, j)
		}
	}
	return Mat4{
		c[0][0], c[1][0], c[2][0], c[3][0],
		c[0][1], c[1][1], c[2][1], c[3][1],
		c[0][2], c[1][2], c[2][2], c[3][2],
		c[0][3], c[1][3], c[2][3], c[3][3],
	}
}

// Inv returns the inverse of m. The caller guarantees m is non-singular —
// every Transformation built by the parser is affine and invertible by
// construction (compositions and inverses of translate/rotate/scale).
func (m Mat4) Inv() Mat4 {
	det := m.Det()
	adj := m.Adj()
	inv := 1 / det
	return Mat4{
		adj.Xx * inv, adj.Xy * inv, adj.Xz * inv, adj.Xw * inv,
		adj.Yx * inv, adj.Yy * inv, adj.Yz * inv, adj.Yw * inv,
		adj.Zx * inv, adj.Zy * inv, adj.Zz * inv, adj.Zw * inv,
		adj.Wx * inv, adj.Wy * inv, adj.Wz * inv, adj.Ww * inv,
	}
}

// Aeq reports whether m and n are equal within Epsilon, element by element.
func (m Mat4) Aeq(n Mat4) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !Aeq(m.at(i, j), n.at(i, j)) {
				return false
			}
		}
	}
	return true
}

// MulPoint applies m to affine point p (row-vector convention: p is
// extended with w=1).
func (m Mat4) MulPoint(p Point) Point {
	x, y, z := p.X, p.Y, p.Z
	return Point{
		x*m.Xx + y*m.Yx + z*m.Zx + m.Wx,
		x*m.Xy + y*m.Yy + z*m.Zy + m.Wy,
		x*m.Xz + y*m.Yz + z*m.Zz + m.Wz,
	}
}

// MulVec applies m to free vector v (the translation row is ignored).
func (m Mat4) MulVec(v Vec) Vec {
	x, y, z := v.X, v.Y, v.Z
	return Vec{
		x*m.Xx + y*m.Yx + z*m.Zx,
		x*m.Xy + y*m.Yy + z*m.Zy,
		x*m.Xz + y*m.Yz + z*m.Zz,
	}
}
