// Package camera provides the two camera projections SceneLang exposes:
// Orthogonal and Perspective. Both map a normalized (u,v) in [0,1]^2 on the
// image plane to a world-space Ray, differing only in how that ray's
// origin and direction depend on (u,v).
package camera

import (
	"github.com/ochrevis/slray/geom"
	"github.com/ochrevis/slray/ray"
)

// Kind tags which of the two projections a Camera uses.
type Kind int

const (
	Orthogonal Kind = iota
	Perspective
)

// Camera fires a Ray for each sampled (u,v) on the image plane, in its own
// local space (looking down +X, with the image plane spanning
// y in [-aspectRatio, aspectRatio], z in [-1, 1]), placed in the world by
// Transform.
type Camera struct {
	Kind        Kind
	AspectRatio float64
	Distance    float64 // Perspective only: eye-to-screen distance
	Transform   geom.Transformation
}

// NewOrthogonal returns an orthogonal camera with the given aspect ratio
// (width/height), placed by t.
func NewOrthogonal(aspectRatio float64, t geom.Transformation) Camera {
	return Camera{Kind: Orthogonal, AspectRatio: aspectRatio, Transform: t}
}

// NewPerspective returns a perspective camera with the given aspect ratio
// and eye-to-screen distance, placed by t.
func NewPerspective(aspectRatio, distance float64, t geom.Transformation) Camera {
	return Camera{Kind: Perspective, AspectRatio: aspectRatio, Distance: distance, Transform: t}
}

// FireRay returns the ray through normalized image coordinate (u, v), with
// u increasing rightward and v increasing upward, both in [0, 1].
func (c Camera) FireRay(u, v float64) ray.Ray {
	y := (1 - 2*u) * c.AspectRatio
	z := 2*v - 1

	var local ray.Ray
	switch c.Kind {
	case Orthogonal:
		local = ray.New(geom.NewPoint(-1, y, z), geom.NewVec(1, 0, 0))
	case Perspective:
		local = ray.New(geom.NewPoint(-c.Distance, 0, 0), geom.NewVec(c.Distance, y, z))
	default:
		panic("camera: unknown camera kind")
	}
	return local.Transform(c.Transform)
}
