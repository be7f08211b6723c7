package parser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ochrevis/slray/diag"
	"github.com/ochrevis/slray/geom"
	"github.com/ochrevis/slray/lang/lexer"
	"github.com/ochrevis/slray/ray"
	"github.com/ochrevis/slray/scene"
)

func parseSrc(t *testing.T, src string) (*scene.Scene, error) {
	t.Helper()
	lex := lexer.New(strings.NewReader(src), "<test>")
	return ParseScene(lex, scene.New(), &bytes.Buffer{})
}

// E1: SET a 9  SET res $1 + 2a$ -> a=9, res=19.
func TestE1_SetAndMathExpression(t *testing.T) {
	sc, err := parseSrc(t, `SET a 9 SET res $1 + 2a$`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, ok := sc.IDs.Lookup(scene.TypeFloat, "a")
	if !ok || a.(float64) != 9 {
		t.Fatalf("a = %v, %v", a, ok)
	}
	res, ok := sc.IDs.Lookup(scene.TypeFloat, "res")
	if !ok || res.(float64) != 19 {
		t.Fatalf("res = %v, %v", res, ok)
	}
}

// E2: referencing an undefined identifier inside a math expression errors.
func TestE2_UndefinedIdentifierInMathExpression(t *testing.T) {
	_, err := parseSrc(t, `SET a 9 SET res $1 + 2b$`)
	if err == nil {
		t.Fatal("expected an UndefinedIdentifier error")
	}
	if !strings.Contains(err.Error(), "b") {
		t.Errorf("expected the error to mention the undefined name %q, got %v", "b", err)
	}
}

// E3: a single spawned sphere is hit at t=4 by a ray from {-5,0,0} toward +x.
func TestE3_SpawnedSphereNearestHit(t *testing.T) {
	sc, err := parseSrc(t, `SET s Shape.Sphere() SPAWN s`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sc.World.Shapes()) != 1 {
		t.Fatalf("expected 1 spawned shape, got %d", len(sc.World.Shapes()))
	}
	r := ray.New(geom.NewPoint(-5, 0, 0), geom.NewVec(1, 0, 0))
	rec, ok := sc.World.Intersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !geom.Aeq(rec.T, 4) {
		t.Errorf("t = %v, want 4", rec.T)
	}
}

// E4: a cube scaled by 2 is hit at t=1 by a ray from {-3,0,0} toward +x.
func TestE4_ScaledCubeHit(t *testing.T) {
	sc, err := parseSrc(t, `SET c Shape.Cube(.transformation SCALE 2) SPAWN c`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := ray.Ray{Origin: geom.NewPoint(-3, 0, 0), Dir: geom.NewVec(1, 0, 0), TMax: 1e10}
	rec, ok := sc.World.Intersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !geom.Aeq(rec.T, 1) {
		t.Errorf("t = %v, want 1", rec.T)
	}
}

// E5: a second USING Camera raises SettingRedefinition.
func TestE5_SecondUsingCameraIsSettingRedefinition(t *testing.T) {
	_, err := parseSrc(t, `USING Camera.Perspective() USING Camera.Orthogonal()`)
	if err == nil {
		t.Fatal("expected a SettingRedefinition error")
	}
	de, ok := err.(*diag.Error)
	if !ok {
		t.Fatalf("expected a *diag.Error, got %T", err)
	}
	if !strings.Contains(de.Message, "already set") {
		t.Errorf("expected a redefinition message, got %q", de.Message)
	}
}

// E7: two overlapping unit spheres centered at x=-0.5 and x=0.5 (radius 1,
// so their surfaces are at local t={3.5,5.5} and t={4.5,6.5} for this ray).
// UNITE retains every boundary of both children instead of coalescing the
// overlap, so all_ray_intersections returns all 4 ts (paired into 2
// intervals), and the nearest hit is the smallest of them: the near
// sphere's own entering surface at t=3.5.
func TestE7_UniteOfTwoSpheres(t *testing.T) {
	sc, err := parseSrc(t, `
SET s1 Shape.Sphere(.transformation TRANSLATE(.X -0.5))
SET s2 Shape.Sphere(.transformation TRANSLATE(.X 0.5))
SPAWN UNITE(s1, s2)
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := ray.New(geom.NewPoint(-5, 0, 0), geom.NewVec(1, 0, 0))
	rec, ok := sc.World.Intersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !geom.Aeq(rec.T, 3.5) {
		t.Errorf("t = %v, want 3.5", rec.T)
	}

	sh := sc.World.Shapes()[0]
	ivs := sh.Intervals(r)
	if len(ivs) != 2 {
		t.Fatalf("expected 2 intervals (4 boundary ts), got %d", len(ivs))
	}
}

// E8: the same pair INTERSECTed keeps only points inside both spheres — the
// lens-shaped overlap (t=4.5 to t=5.5) — so the nearest hit is its entry,
// t=4.5 (the later of the two spheres' own entries).
func TestE8_IntersectOfTwoOverlappingSpheres(t *testing.T) {
	sc, err := parseSrc(t, `
SET s1 Shape.Sphere(.transformation TRANSLATE(.X -0.5))
SET s2 Shape.Sphere(.transformation TRANSLATE(.X 0.5))
SPAWN INTERSECT(s1, s2)
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := ray.New(geom.NewPoint(-5, 0, 0), geom.NewVec(1, 0, 0))
	rec, ok := sc.World.Intersect(r)
	if !ok {
		t.Fatal("expected a hit (the spheres overlap on x)")
	}
	if !geom.Aeq(rec.T, 4.5) {
		t.Errorf("t = %v, want 4.5", rec.T)
	}
}

// A SET of the same name at a real source line is IdentifierRedefinition.
func TestSetSameNameTwiceIsIdentifierRedefinition(t *testing.T) {
	_, err := parseSrc(t, "SET a 1\nSET a 2\n")
	if err == nil {
		t.Fatal("expected an IdentifierRedefinition error")
	}
}

// UNSET then SET restores a fresh binding.
func TestUnsetThenSetRebinds(t *testing.T) {
	sc, err := parseSrc(t, "SET a 1 UNSET a SET a 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := sc.IDs.Lookup(scene.TypeFloat, "a")
	if !ok || v.(float64) != 2 {
		t.Fatalf("a = %v, %v", v, ok)
	}
}

// SCALE 1 is the identity transformation (testable property 9).
func TestScaleOneIsIdentity(t *testing.T) {
	sc, err := parseSrc(t, `SET c Shape.Cube(.transformation SCALE 1) SPAWN c`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := ray.Ray{Origin: geom.NewPoint(-3, 0, 0), Dir: geom.NewVec(1, 0, 0), TMax: 1e10}
	rec, ok := sc.World.Intersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !geom.Aeq(rec.T, 2) {
		t.Errorf("t = %v, want 2 (unit cube face at x=-1)", rec.T)
	}
}

// ROTATE(.X 360) is approximately identity (testable property 10).
func TestRotate360IsApproximatelyIdentity(t *testing.T) {
	sc, err := parseSrc(t, `SET t ROTATE(.X 360)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := sc.IDs.Lookup(scene.TypeTransformation, "t")
	tr := v.(geom.Transformation)
	p := geom.NewPoint(1, 2, 3)
	if !tr.ApplyPoint(p).Aeq(p) {
		t.Errorf("ROTATE(.X 360) moved %v to %v", p, tr.ApplyPoint(p))
	}
}
