// Package shape implements the SimpleShape primitives (sphere, plane, cube,
// cylinder, cone) and the CompositeShape constructive-solid-geometry
// combinator built over them.
package shape

import (
	"github.com/ochrevis/slray/geom"
	"github.com/ochrevis/slray/material"
	"github.com/ochrevis/slray/ray"
)

// HitRecord describes where a ray struck a shape's surface. It lives here,
// rather than in package ray, so that ray itself never needs to import
// material: a HitRecord references the Material at the hit point, but a
// bare Ray never does.
type HitRecord struct {
	Point    geom.Point
	Normal   geom.Normal
	UV       geom.Vec2D
	T        float64
	World    ray.Ray
	Material *material.Material
}

// Shape is anything a World can hold and a ray can strike: the SimpleShape
// primitives and CompositeShape CSG combinations both implement it.
type Shape interface {
	// Intersect returns the nearest valid hit of r (given in the shape's
	// parent frame) against the shape, or false if there is none.
	Intersect(r ray.Ray) (HitRecord, bool)

	// AnyHit reports whether r strikes the shape at all, without computing
	// the hit's normal or uv. Used for shadow-ray visibility tests.
	AnyHit(r ray.Ray) bool

	// Intervals returns the open-open spans of r's parameter during which
	// r is inside the shape, sorted ascending by start. Spans do not
	// overlap, except under a Unite composite, which keeps each child's
	// spans as they are. Used by CompositeShape to combine children via the
	// CSG set algebra.
	Intervals(r ray.Ray) []ray.Interval
}
