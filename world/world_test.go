package world

import (
	"testing"

	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/geom"
	"github.com/ochrevis/slray/material"
	"github.com/ochrevis/slray/ray"
	"github.com/ochrevis/slray/shape"
)

func diffuseWhite() material.Material {
	return material.NewMaterial(material.NewDiffuseBRDF(material.NewUniformPigment(color.White)))
}

func TestWorldIntersectPicksNearest(t *testing.T) {
	w := New()
	w.Add(shape.NewSphere(geom.Translation(0, 0, -10), diffuseWhite()))
	w.Add(shape.NewSphere(geom.Identity, diffuseWhite()))

	r := ray.New(geom.NewPoint(0, 0, 5), geom.NewVec(0, 0, -1))
	rec, ok := w.Intersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if want := geom.NewPoint(0, 0, 1); !rec.Point.Aeq(want) {
		t.Errorf("expected the nearer sphere: got %+v want %+v", rec.Point, want)
	}
}

func TestWorldIntersectMiss(t *testing.T) {
	w := New()
	w.Add(shape.NewSphere(geom.Identity, diffuseWhite()))
	r := ray.New(geom.NewPoint(10, 10, 10), geom.NewVec(0, 0, -1))
	if _, ok := w.Intersect(r); ok {
		t.Fatal("expected no hit")
	}
}

func TestWorldAnyHit(t *testing.T) {
	w := New()
	w.Add(shape.NewSphere(geom.Identity, diffuseWhite()))
	hit := ray.New(geom.NewPoint(0, 0, 5), geom.NewVec(0, 0, -1))
	miss := ray.New(geom.NewPoint(10, 10, 10), geom.NewVec(0, 0, -1))
	if !w.AnyHit(hit) {
		t.Error("AnyHit: expected true")
	}
	if w.AnyHit(miss) {
		t.Error("AnyHit: expected false")
	}
}

func TestLightsAdd(t *testing.T) {
	ls := NewLights()
	ls.Add(PointLight{Position: geom.NewPoint(0, 0, 0), Color: color.White, LinearRadius: 1})
	ls.Add(PointLight{Position: geom.NewPoint(1, 1, 1), Color: color.White, LinearRadius: 1})
	if got := len(ls.All()); got != 2 {
		t.Errorf("All: got %d lights want 2", got)
	}
}
