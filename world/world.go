// Package world holds the two ordered collections every renderer queries
// against: the World of visible shapes and its Lights.
package world

import (
	"math"

	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/geom"
	"github.com/ochrevis/slray/ray"
	"github.com/ochrevis/slray/shape"
)

// World is the ordered sequence of shapes a scene spawns into existence.
// Order only matters for reproducibility of SceneLang's SPAWN semantics;
// ray queries are order-independent except for ties, which never occur for
// a continuous geometry.
type World struct {
	shapes []shape.Shape
}

// New returns an empty World.
func New() *World { return &World{} }

// Add appends s to the world.
func (w *World) Add(s shape.Shape) { w.shapes = append(w.shapes, s) }

// Shapes returns the world's shapes in spawn order.
func (w *World) Shapes() []shape.Shape { return w.shapes }

// Intersect returns the nearest hit of r across every shape in the world.
func (w *World) Intersect(r ray.Ray) (shape.HitRecord, bool) {
	var best shape.HitRecord
	found := false
	nearest := math.Inf(1)
	for _, s := range w.shapes {
		rec, ok := s.Intersect(r)
		if !ok {
			continue
		}
		if d := r.Origin.Sub(rec.Point).Norm2(); !found || d < nearest {
			best, found, nearest = rec, true, d
		}
	}
	return best, found
}

// AnyHit reports whether r strikes any shape in the world, used for shadow
// rays where only visibility (not the nearest hit's shading data) matters.
func (w *World) AnyHit(r ray.Ray) bool {
	for _, s := range w.shapes {
		if s.AnyHit(r) {
			return true
		}
	}
	return false
}

// PointLight is a single point-source light: a position, a color and a
// linear falloff factor matching the teacher-grounded PointLight renderer's
// simple lighting model (spec.md §4.5).
type PointLight struct {
	Position     geom.Point
	Color        color.Color
	LinearRadius float64
}

// Lights is the ordered sequence of point lights a scene spawns.
type Lights struct {
	lights []PointLight
}

// NewLights returns an empty Lights collection.
func NewLights() *Lights { return &Lights{} }

// Add appends l to the collection.
func (l *Lights) Add(pl PointLight) { l.lights = append(l.lights, pl) }

// All returns every light in spawn order.
func (l *Lights) All() []PointLight { return l.lights }
