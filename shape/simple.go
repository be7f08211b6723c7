package shape

import (
	"math"

	"github.com/ochrevis/slray/geom"
	"github.com/ochrevis/slray/material"
	"github.com/ochrevis/slray/ray"
)

// kernel is the unit-space geometry of a single SimpleShape primitive: a
// sphere of radius 1 at the origin, an infinite z=0 plane, the axis-aligned
// box [-1,1]^3, and so on. SimpleShape wraps a kernel with a Transformation
// and a Material and handles the local/world conversions uniformly, the
// way the teacher's load package keeps file-format parsing (mtl.go,
// obj.go) separate from the in-memory mesh types they populate.
type kernel interface {
	// intervalsLocal returns the solid's inside spans for a ray already
	// expressed in the kernel's own unit space.
	intervalsLocal(local ray.Ray) []ray.Interval
	// normalAt returns the outward-facing geometric normal at a local
	// surface point, before the FacingAgainst shading convention is
	// applied.
	normalAt(local geom.Point) geom.Normal
	// uvAt returns the surface parameterization at a local surface point.
	uvAt(local geom.Point) geom.Vec2D
}

// SimpleShape is a single geometric primitive: a kernel placed in the
// scene by a Transformation and given a Material.
type SimpleShape struct {
	kernel    kernel
	Transform geom.Transformation
	Material  material.Material
}

// NewSphere returns a unit sphere (radius 1, centered at the origin in its
// own local space) placed by t.
func NewSphere(t geom.Transformation, m material.Material) SimpleShape {
	return SimpleShape{kernel: sphereKernel{}, Transform: t, Material: m}
}

// NewPlane returns the infinite plane z=0, solid on the z<=0 side, placed
// by t.
func NewPlane(t geom.Transformation, m material.Material) SimpleShape {
	return SimpleShape{kernel: planeKernel{}, Transform: t, Material: m}
}

// NewCube returns the axis-aligned box [-1,1]^3 placed by t.
func NewCube(t geom.Transformation, m material.Material) SimpleShape {
	return SimpleShape{kernel: cubeKernel{}, Transform: t, Material: m}
}

// NewCylinder returns the unit cylinder (radius 1 about the z axis,
// capped at z=0 and z=1) placed by t.
func NewCylinder(t geom.Transformation, m material.Material) SimpleShape {
	return SimpleShape{kernel: cylinderKernel{}, Transform: t, Material: m}
}

// NewCone returns the unit cone (apex at z=1, base circle of radius 1 at
// z=0) placed by t.
func NewCone(t geom.Transformation, m material.Material) SimpleShape {
	return SimpleShape{kernel: coneKernel{}, Transform: t, Material: m}
}

func (s SimpleShape) toLocal(r ray.Ray) ray.Ray { return r.Transform(s.Transform.Inverse()) }

// Intervals implements Shape.
func (s SimpleShape) Intervals(r ray.Ray) []ray.Interval {
	return s.kernel.intervalsLocal(s.toLocal(r))
}

// hitTs returns every interval boundary of the local ray's domain, sorted
// ascending: the t values at which the ray crosses the solid's surface.
func hitTs(ivs []ray.Interval) []float64 {
	var ts []float64
	for _, iv := range ivs {
		if !math.IsInf(iv.Min, 0) {
			ts = append(ts, iv.Min)
		}
		if !math.IsInf(iv.Max, 0) {
			ts = append(ts, iv.Max)
		}
	}
	return ts
}

// AnyHit implements Shape.
func (s SimpleShape) AnyHit(r ray.Ray) bool {
	local := s.toLocal(r)
	for _, t := range hitTs(s.kernel.intervalsLocal(local)) {
		if local.InDomain(t) {
			return true
		}
	}
	return false
}

// Intersect implements Shape.
func (s SimpleShape) Intersect(r ray.Ray) (HitRecord, bool) {
	local := s.toLocal(r)
	best, found := math.Inf(1), false
	for _, t := range hitTs(s.kernel.intervalsLocal(local)) {
		if local.InDomain(t) && t < best {
			best, found = t, true
		}
	}
	if !found {
		return HitRecord{}, false
	}
	localPoint := local.At(best)
	localNormal := s.kernel.normalAt(localPoint).FacingAgainst(local.Dir)
	uv := s.kernel.uvAt(localPoint)

	mat := s.Material
	return HitRecord{
		Point:    s.Transform.ApplyPoint(localPoint),
		Normal:   s.Transform.ApplyNormal(localNormal),
		UV:       uv,
		T:        best,
		World:    r,
		Material: &mat,
	}, true
}
