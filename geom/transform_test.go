package geom

import (
	"math"
	"testing"
)

func TestTransformationInverseConsistent(t *testing.T) {
	cases := []Transformation{
		Identity,
		Translation(1, -2, 3),
		UniformScaling(2),
		Scaling(1, 2, 3),
		RotationX(DegToRad(37)),
		RotationY(DegToRad(-12)),
		RotationZ(DegToRad(90)),
		Translation(1, 2, 3).Compose(RotationY(DegToRad(45))).Compose(Scaling(2, 1, 1)),
	}
	for i, tr := range cases {
		if !tr.IsConsistent() {
			t.Errorf("case %d: matrix * inverse is not the identity", i)
		}
	}
}

func TestUniformScalingOne(t *testing.T) {
	tr := UniformScaling(1)
	if !tr.Matrix().Aeq(IdentityMat4) {
		t.Errorf("SCALE 1 should be the identity transformation")
	}
}

func TestRotationFullTurn(t *testing.T) {
	tr := RotationX(DegToRad(360))
	if !tr.Matrix().Aeq(IdentityMat4) {
		t.Errorf("ROTATE(.X 360) should be ~identity within tolerance")
	}
}

func TestTranslationAppliesToPointNotVec(t *testing.T) {
	tr := Translation(1, 2, 3)
	p := tr.ApplyPoint(Point{0, 0, 0})
	if !p.Aeq(Point{1, 2, 3}) {
		t.Errorf("ApplyPoint: got %+v want {1 2 3}", p)
	}
	v := tr.ApplyVec(Vec{0, 0, 0})
	if !v.Aeq(Vec{0, 0, 0}) {
		t.Errorf("ApplyVec: translation must not move a free vector, got %+v", v)
	}
}

func TestComposeOrderMatchesRotateThenTranslate(t *testing.T) {
	// ROTATE(.Z 90) * TRANSLATE(1,0,0) applied right-to-left: translate
	// first, then rotate the translated point about the origin.
	rot := RotationZ(DegToRad(90))
	trn := Translation(1, 0, 0)
	combined := trn.Compose(rot)
	got := combined.ApplyPoint(Point{0, 0, 0})
	want := Point{0, 1, 0}
	if !got.Aeq(want) {
		t.Errorf("Compose: got %+v want %+v", got, want)
	}
}

func TestApplyNormalUsesInverseTranspose(t *testing.T) {
	// non-uniform scale must transform normals by the inverse-transpose,
	// not the forward matrix, to stay perpendicular to the scaled surface.
	tr := Scaling(2, 1, 1)
	n := Normal{1, 0, 0}.Normalize()
	got := tr.ApplyNormal(n).Normalize()
	want := Normal{0.5, 0, 0}.Normalize()
	if !got.Aeq(want) {
		t.Errorf("ApplyNormal: got %+v want %+v", got, want)
	}
}

func TestMat4DetIdentity(t *testing.T) {
	if got := IdentityMat4.Det(); !Aeq(got, 1) {
		t.Errorf("Det(identity): got %v want 1", got)
	}
}

func TestMat4InvRoundTrip(t *testing.T) {
	m := RotationY(math.Pi / 7).Matrix().Mult(Translation(3, -1, 2).Matrix())
	got := m.Mult(m.Inv())
	if !got.Aeq(IdentityMat4) {
		t.Errorf("m * m.Inv(): got %+v want identity", got)
	}
}
