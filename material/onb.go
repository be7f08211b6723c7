package material

import "github.com/ochrevis/slray/geom"

// onb is an orthonormal basis (e1, e2, e3) built around a unit normal, used
// to map a locally-sampled direction (e.g. cosine-weighted over the upper
// hemisphere) into world space. The construction is the branchless method
// of Duff et al. ("Building an Orthonormal Basis, Revisited"), which avoids
// the divide-by-near-zero case that a naive cross-product approach hits
// when the normal is close to an arbitrary fixed axis.
type onb struct {
	e1, e2, e3 geom.Vec
}

func newONB(normal geom.Normal) onb {
	n := normal.ToVec()
	sign := 1.0
	if n.Z < 0 {
		sign = -1.0
	}
	a := -1.0 / (sign + n.Z)
	b := n.X * n.Y * a
	e1 := geom.NewVec(1+sign*n.X*n.X*a, sign*b, -sign*n.X)
	e2 := geom.NewVec(b, sign+n.Y*n.Y*a, -n.Y)
	return onb{e1: e1, e2: e2, e3: n}
}

// transform maps a local-space direction (x, y, z) into world space.
func (b onb) transform(v geom.Vec) geom.Vec {
	return b.e1.Mul(v.X).Add(b.e2.Mul(v.Y)).Add(b.e3.Mul(v.Z))
}
