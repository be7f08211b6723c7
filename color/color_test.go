package color

import "testing"

func TestColorArithmetic(t *testing.T) {
	a, b := Color{1, 2, 3}, Color{0.1, 0.2, 0.3}
	if got, want := a.Add(b), (Color{1.1, 2.2, 3.3}); !got.Aeq(want) {
		t.Errorf("Add: got %+v want %+v", got, want)
	}
	if got, want := a.Sub(b), (Color{0.9, 1.8, 2.7}); !got.Aeq(want) {
		t.Errorf("Sub: got %+v want %+v", got, want)
	}
	if got, want := a.Mul(2), (Color{2, 4, 6}); !got.Eq(want) {
		t.Errorf("Mul: got %+v want %+v", got, want)
	}
	if got, want := a.Times(b), (Color{0.1, 0.4, 0.9}); !got.Aeq(want) {
		t.Errorf("Times: got %+v want %+v", got, want)
	}
}

func TestColorMaxComponent(t *testing.T) {
	if got := (Color{0.2, 0.9, 0.5}).MaxComponent(); !Aeq(got, 0.9) {
		t.Errorf("MaxComponent: got %v want 0.9", got)
	}
}

func TestHdrImageGetSet(t *testing.T) {
	img := NewHdrImage(3, 2)
	c := Color{1, 0.5, 0.25}
	img.Set(2, 1, c)
	if got := img.Get(2, 1); !got.Eq(c) {
		t.Errorf("Get: got %+v want %+v", got, c)
	}
	if got := img.Get(0, 0); !got.Eq(Black) {
		t.Errorf("Get: fresh pixel got %+v want Black", got)
	}
}

func TestHdrImageOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic indexing out of range")
		}
	}()
	NewHdrImage(2, 2).Get(5, 0)
}
