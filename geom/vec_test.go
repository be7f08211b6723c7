package geom

import "testing"

func TestVecAdd(t *testing.T) {
	v, w := Vec{1, 2, 3}, Vec{4, 5, 6}
	got := v.Add(w)
	want := Vec{5, 7, 9}
	if !got.Eq(want) {
		t.Errorf("Add: got %+v want %+v", got, want)
	}
}

func TestVecCross(t *testing.T) {
	x, y := Vec{1, 0, 0}, Vec{0, 1, 0}
	got := x.Cross(y)
	want := Vec{0, 0, 1}
	if !got.Eq(want) {
		t.Errorf("Cross: got %+v want %+v", got, want)
	}
}

func TestVecDot(t *testing.T) {
	v, w := Vec{1, 2, 3}, Vec{4, -5, 6}
	if got, want := v.Dot(w), 12.0; got != want {
		t.Errorf("Dot: got %v want %v", got, want)
	}
}

func TestVecNormalized(t *testing.T) {
	v := Vec{3, 0, 4}
	got := v.Normalized()
	if !Aeq(got.Norm(), 1) {
		t.Errorf("Normalized: got norm %v want 1", got.Norm())
	}
	if !got.Aeq(Vec{0.6, 0, 0.8}) {
		t.Errorf("Normalized: got %+v want {0.6 0 0.8}", got)
	}
}

func TestPointSub(t *testing.T) {
	p, q := Point{5, 5, 5}, Point{1, 2, 3}
	got := p.Sub(q)
	want := Vec{4, 3, 2}
	if !got.Eq(want) {
		t.Errorf("Sub: got %+v want %+v", got, want)
	}
}

func TestNormalFacingAgainst(t *testing.T) {
	n := Normal{0, 0, 1}
	rd := Vec{0, 0, 1} // ray travelling +z hits a surface whose outward normal is +z
	got := n.FacingAgainst(rd)
	want := Normal{0, 0, -1}
	if !got.Eq(want) {
		t.Errorf("FacingAgainst: got %+v want %+v", got, want)
	}
	// a ray travelling -z should leave the +z normal untouched.
	if got := n.FacingAgainst(Vec{0, 0, -1}); !got.Eq(n) {
		t.Errorf("FacingAgainst: got %+v want %+v", got, n)
	}
}

func TestNormalIsNormalized(t *testing.T) {
	if !(Normal{1, 0, 0}).IsNormalized() {
		t.Errorf("IsNormalized: expected unit normal to report true")
	}
	if (Normal{2, 0, 0}).IsNormalized() {
		t.Errorf("IsNormalized: expected non-unit normal to report false")
	}
}
