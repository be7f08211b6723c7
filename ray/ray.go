// Package ray provides the parametric Ray, with its valid [tmin, tmax]
// domain, and the open Interval used as a CSG sub-shape's "inside"
// interval.
package ray

import (
	"math"

	"github.com/ochrevis/slray/geom"
)

// DefaultTMin is the lower bound a freshly constructed camera ray starts
// with: a small epsilon to avoid self-intersection at the origin. New sets
// the upper bound to +Inf, since the nearest real hit is what matters.
const (
	DefaultTMin = 1e-5
)

// Ray is a parametric ray: origin + t*dir for t in (TMin, TMax). Depth
// counts secondary-ray bounces and is used by the path tracer's max-depth
// and Russian-roulette cutoffs.
type Ray struct {
	Origin     geom.Point
	Dir        geom.Vec
	TMin, TMax float64
	Depth      int
}

// New builds a Ray with the default [TMin, +Inf) domain and depth 0.
func New(origin geom.Point, dir geom.Vec) Ray {
	return Ray{Origin: origin, Dir: dir, TMin: DefaultTMin, TMax: math.Inf(1), Depth: 0}
}

// At returns the point reached by travelling t units of Dir from Origin.
func (r Ray) At(t float64) geom.Point { return r.Origin.Add(r.Dir.Mul(t)) }

// Transform returns r with Origin and Dir pre-multiplied by t, preserving
// TMin/TMax/Depth. Shapes inverse-transform the incoming world ray this way
// before solving against their unit kernel.
func (r Ray) Transform(t geom.Transformation) Ray {
	return Ray{
		Origin: t.ApplyPoint(r.Origin),
		Dir:    t.ApplyVec(r.Dir),
		TMin:   r.TMin,
		TMax:   r.TMax,
		Depth:  r.Depth,
	}
}

// WithDepth returns a copy of r with Depth replaced, used when spawning a
// scattered/shadow ray one bounce deeper.
func (r Ray) WithDepth(depth int) Ray {
	r2 := r
	r2.Depth = depth
	return r2
}

// InDomain reports whether t lies strictly within (TMin, TMax).
func (r Ray) InDomain(t float64) bool { return t > r.TMin && t < r.TMax }
