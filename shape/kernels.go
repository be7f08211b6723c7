package shape

import (
	"math"

	"github.com/ochrevis/slray/geom"
	"github.com/ochrevis/slray/ray"
)

// sphereKernel is the unit sphere of radius 1 centered at the origin.
type sphereKernel struct{}

func (sphereKernel) intervalsLocal(local ray.Ray) []ray.Interval {
	o, d := local.Origin.ToVec(), local.Dir
	a := d.Norm2()
	b := 2 * o.Dot(d)
	c := o.Norm2() - 1
	t1, t2, ok := quadraticRoots(a, b, c)
	if !ok {
		return nil
	}
	return []ray.Interval{{Min: t1, Max: t2}}
}

func (sphereKernel) normalAt(p geom.Point) geom.Normal {
	return p.ToVec().ToNormal().Normalize()
}

func (sphereKernel) uvAt(p geom.Point) geom.Vec2D {
	u := math.Atan2(p.Y, p.X) / (2 * math.Pi)
	if u < 0 {
		u += 1
	}
	v := math.Acos(clamp(p.Z, -1, 1)) / math.Pi
	return geom.Vec2D{U: u, V: v}
}

// planeKernel is the infinite plane z=0; the solid is the z<=0 half-space.
type planeKernel struct{}

func (planeKernel) intervalsLocal(local ray.Ray) []ray.Interval {
	oz, dz := local.Origin.Z, local.Dir.Z
	if math.Abs(dz) < geomEpsilon {
		if oz <= 0 {
			return []ray.Interval{{Min: math.Inf(-1), Max: math.Inf(1)}}
		}
		return nil
	}
	t0 := -oz / dz
	if dz < 0 {
		return []ray.Interval{{Min: t0, Max: math.Inf(1)}}
	}
	return []ray.Interval{{Min: math.Inf(-1), Max: t0}}
}

func (planeKernel) normalAt(geom.Point) geom.Normal { return geom.NewNormal(0, 0, 1) }

func (planeKernel) uvAt(p geom.Point) geom.Vec2D {
	u, v := p.X-math.Floor(p.X), p.Y-math.Floor(p.Y)
	return geom.Vec2D{U: u, V: v}
}

// cubeKernel is the axis-aligned box [-1,1]^3.
type cubeKernel struct{}

func (cubeKernel) intervalsLocal(local ray.Ray) []ray.Interval {
	iv := ray.Interval{Min: math.Inf(-1), Max: math.Inf(1)}
	axes := [3][2]float64{
		{local.Origin.X, local.Dir.X},
		{local.Origin.Y, local.Dir.Y},
		{local.Origin.Z, local.Dir.Z},
	}
	for _, a := range axes {
		o, d := a[0], a[1]
		var slab ray.Interval
		if math.Abs(d) < geomEpsilon {
			if o < -1 || o > 1 {
				return nil
			}
			slab = ray.Interval{Min: math.Inf(-1), Max: math.Inf(1)}
		} else {
			t1, t2 := (-1-o)/d, (1-o)/d
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			slab = ray.Interval{Min: t1, Max: t2}
		}
		var ok bool
		iv, ok = intersectInterval(iv, slab)
		if !ok {
			return nil
		}
	}
	return []ray.Interval{iv}
}

func (cubeKernel) normalAt(p geom.Point) geom.Normal {
	switch {
	case math.Abs(p.X-1) < 1e-6:
		return geom.NewNormal(1, 0, 0)
	case math.Abs(p.X+1) < 1e-6:
		return geom.NewNormal(-1, 0, 0)
	case math.Abs(p.Y-1) < 1e-6:
		return geom.NewNormal(0, 1, 0)
	case math.Abs(p.Y+1) < 1e-6:
		return geom.NewNormal(0, -1, 0)
	case math.Abs(p.Z-1) < 1e-6:
		return geom.NewNormal(0, 0, 1)
	default:
		return geom.NewNormal(0, 0, -1)
	}
}

func (cubeKernel) uvAt(p geom.Point) geom.Vec2D {
	switch {
	case math.Abs(p.X) > math.Abs(p.Y) && math.Abs(p.X) > math.Abs(p.Z):
		return geom.Vec2D{U: (p.Y + 1) / 2, V: (p.Z + 1) / 2}
	case math.Abs(p.Y) > math.Abs(p.Z):
		return geom.Vec2D{U: (p.X + 1) / 2, V: (p.Z + 1) / 2}
	default:
		return geom.Vec2D{U: (p.X + 1) / 2, V: (p.Y + 1) / 2}
	}
}

// cylinderKernel is the unit cylinder: radius 1 about the z axis, capped
// at z=0 and z=1.
type cylinderKernel struct{}

func zSlab(local ray.Ray) (ray.Interval, bool) {
	oz, dz := local.Origin.Z, local.Dir.Z
	if math.Abs(dz) < geomEpsilon {
		if oz >= 0 && oz <= 1 {
			return ray.Interval{Min: math.Inf(-1), Max: math.Inf(1)}, true
		}
		return ray.Interval{}, false
	}
	t0, t1 := -oz/dz, (1-oz)/dz
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return ray.Interval{Min: t0, Max: t1}, true
}

func (cylinderKernel) intervalsLocal(local ray.Ray) []ray.Interval {
	o, d := local.Origin, local.Dir
	a := d.X*d.X + d.Y*d.Y
	b := 2 * (o.X*d.X + o.Y*d.Y)
	c := o.X*o.X + o.Y*o.Y - 1
	var lateral ray.Interval
	if math.Abs(a) < geomEpsilon {
		if o.X*o.X+o.Y*o.Y >= 1 {
			return nil
		}
		lateral = ray.Interval{Min: math.Inf(-1), Max: math.Inf(1)}
	} else {
		t1, t2, ok := quadraticRoots(a, b, c)
		if !ok {
			return nil
		}
		lateral = ray.Interval{Min: t1, Max: t2}
	}
	slab, ok := zSlab(local)
	if !ok {
		return nil
	}
	iv, ok := intersectInterval(lateral, slab)
	if !ok {
		return nil
	}
	return []ray.Interval{iv}
}

func (cylinderKernel) normalAt(p geom.Point) geom.Normal {
	switch {
	case p.Z < 1e-6:
		return geom.NewNormal(0, 0, -1)
	case p.Z > 1-1e-6:
		return geom.NewNormal(0, 0, 1)
	default:
		return geom.NewVec(p.X, p.Y, 0).ToNormal().Normalize()
	}
}

func (cylinderKernel) uvAt(p geom.Point) geom.Vec2D {
	u := math.Atan2(p.Y, p.X) / (2 * math.Pi)
	if u < 0 {
		u += 1
	}
	return geom.Vec2D{U: u, V: p.Z}
}

// coneKernel is the unit cone: apex at (0,0,1), base circle of radius 1 at
// z=0.
type coneKernel struct{}

func (coneKernel) intervalsLocal(local ray.Ray) []ray.Interval {
	o, d := local.Origin, local.Dir
	a := d.X*d.X + d.Y*d.Y - d.Z*d.Z
	b := 2 * (o.X*d.X + o.Y*d.Y + d.Z*(1-o.Z))
	c := o.X*o.X + o.Y*o.Y - (1-o.Z)*(1-o.Z)
	var lateral ray.Interval
	if math.Abs(a) < geomEpsilon {
		if math.Abs(b) < geomEpsilon {
			return nil
		}
		t := -c / b
		lateral = ray.Interval{Min: t, Max: t + geomEpsilon}
	} else {
		t1, t2, ok := quadraticRoots(a, b, c)
		switch {
		case a > 0 && !ok:
			return nil
		case a > 0:
			lateral = ray.Interval{Min: t1, Max: t2}
		default:
			// Steeper than the surface: the double cone's inside lies outside
			// [t1, t2] (everywhere if there are no roots). Keep the side on
			// the lower nappe, which is the one the z slab below can overlap.
			lateral = ray.Interval{Min: math.Inf(-1), Max: math.Inf(1)}
			if ok && d.Z < 0 {
				lateral.Min = t2
			} else if ok {
				lateral.Max = t1
			}
		}
	}
	slab, ok := zSlab(local)
	if !ok {
		return nil
	}
	iv, ok := intersectInterval(lateral, slab)
	if !ok {
		return nil
	}
	return []ray.Interval{iv}
}

func (coneKernel) normalAt(p geom.Point) geom.Normal {
	if p.Z < 1e-6 {
		return geom.NewNormal(0, 0, -1)
	}
	return geom.NewVec(p.X, p.Y, 1-p.Z).ToNormal().Normalize()
}

func (coneKernel) uvAt(p geom.Point) geom.Vec2D {
	u := math.Atan2(p.Y, p.X) / (2 * math.Pi)
	if u < 0 {
		u += 1
	}
	return geom.Vec2D{U: u, V: p.Z}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
