package shape

import (
	"testing"

	"github.com/ochrevis/slray/geom"
	"github.com/ochrevis/slray/ray"
)

func sphereAt(x, y, z float64) SimpleShape {
	return NewSphere(geom.Translation(x, y, z), diffuseWhite())
}

func TestUniteHitsNearerChild(t *testing.T) {
	a := sphereAt(0, 0, 0)
	b := sphereAt(0, 0, -10)
	u := NewComposite(Unite, a, b, geom.Identity)
	r := ray.New(geom.NewPoint(0, 0, 5), geom.NewVec(0, 0, -1))
	rec, ok := u.Intersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if want := geom.NewPoint(0, 0, 1); !rec.Point.Aeq(want) {
		t.Errorf("expected to hit the nearer sphere a: got %+v want %+v", rec.Point, want)
	}
}

func TestIntersectOfDisjointSpheresIsEmpty(t *testing.T) {
	a := sphereAt(0, 0, 0)
	b := sphereAt(10, 0, 0)
	in := NewComposite(Intersect, a, b, geom.Identity)
	r := ray.New(geom.NewPoint(0, 0, 5), geom.NewVec(0, 0, -1))
	if _, ok := in.Intersect(r); ok {
		t.Fatal("expected no hit: the two spheres never overlap")
	}
}

func TestIntersectOfOverlappingSpheres(t *testing.T) {
	a := NewSphere(geom.Identity, diffuseWhite())
	b := NewSphere(geom.Translation(1, 0, 0), diffuseWhite())
	in := NewComposite(Intersect, a, b, geom.Identity)
	r := ray.New(geom.NewPoint(0.5, 0, 5), geom.NewVec(0, 0, -1))
	rec, ok := in.Intersect(r)
	if !ok {
		t.Fatal("expected a hit in the lens-shaped overlap")
	}
	if rec.Point.Z <= 0 {
		t.Errorf("expected the overlap's near surface, got %+v", rec.Point)
	}
}

func TestDiffRemovesOverlap(t *testing.T) {
	a := NewSphere(geom.Identity, diffuseWhite())
	b := NewSphere(geom.Translation(0, 0, 1.5), diffuseWhite())
	d := NewComposite(Diff, a, b, geom.Identity)

	// Straight down the axis: a's cap above z=0.5 lies inside b and is
	// removed, so the nearest surviving surface is b's boundary at z=0.5,
	// carved into a.
	r := ray.New(geom.NewPoint(0, 0, 5), geom.NewVec(0, 0, -1))
	rec, ok := d.Intersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if rec.Point.Z <= 0.4 {
		t.Errorf("expected to still see a's surface outside b's reach: got %+v", rec.Point)
	}
}

func TestDiffAllSubtractsUnionOfRest(t *testing.T) {
	a := NewSphere(geom.Identity, diffuseWhite())
	b := sphereAt(0, 0, 1.5)
	c := sphereAt(0, 1.5, 0)
	combined := DiffAll(geom.Identity, a, b, c)

	r := ray.New(geom.NewPoint(0, 0, 5), geom.NewVec(0, 0, -1))
	if _, ok := combined.Intersect(r); !ok {
		t.Fatal("expected part of a to survive subtracting b and c")
	}
}

func TestUniteAllBuildsBalancedTreeOverManyShapes(t *testing.T) {
	shapes := make([]Shape, 0, 5)
	for i := 0; i < 5; i++ {
		shapes = append(shapes, sphereAt(float64(i)*3, 0, 0))
	}
	group := UniteAll(geom.Identity, shapes...)
	r := ray.New(geom.NewPoint(6, 0, 5), geom.NewVec(0, 0, -1))
	rec, ok := group.Intersect(r)
	if !ok {
		t.Fatal("expected a hit against the third sphere in the group")
	}
	if want := geom.NewPoint(6, 0, 1); !rec.Point.Aeq(want) {
		t.Errorf("Point: got %+v want %+v", rec.Point, want)
	}
}

func TestPlacedAppliesOuterTransform(t *testing.T) {
	s := NewSphere(geom.Identity, diffuseWhite())
	p := Placed{Shape: s, Transform: geom.Translation(0, 0, 5)}
	r := ray.New(geom.NewPoint(0, 0, 10), geom.NewVec(0, 0, -1))
	rec, ok := p.Intersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if want := geom.NewPoint(0, 0, 6); !rec.Point.Aeq(want) {
		t.Errorf("Point: got %+v want %+v", rec.Point, want)
	}
}
