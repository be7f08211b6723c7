package ray

import (
	"math"
	"testing"

	"github.com/ochrevis/slray/geom"
)

func TestRayAt(t *testing.T) {
	r := New(geom.NewPoint(1, 2, 3), geom.NewVec(1, 0, 0))
	got := r.At(2)
	want := geom.NewPoint(3, 2, 3)
	if !got.Aeq(want) {
		t.Errorf("At(2): got %+v want %+v", got, want)
	}
}

func TestRayDefaultDomain(t *testing.T) {
	r := New(geom.NewPoint(0, 0, 0), geom.NewVec(0, 0, 1))
	if !math.IsInf(r.TMax, 1) {
		t.Errorf("TMax: got %v want +Inf", r.TMax)
	}
	if r.TMin != DefaultTMin {
		t.Errorf("TMin: got %v want %v", r.TMin, DefaultTMin)
	}
	if r.InDomain(r.TMin) {
		t.Errorf("InDomain should be strict at TMin")
	}
	if !r.InDomain(r.TMin + 1) {
		t.Errorf("InDomain should hold just past TMin")
	}
}

func TestRayTransformPreservesDomainAndDepth(t *testing.T) {
	r := New(geom.NewPoint(0, 0, 0), geom.NewVec(1, 0, 0)).WithDepth(3)
	r.TMax = 100
	tr := geom.Translation(0, 5, 0)
	got := r.Transform(tr)
	if got.TMin != r.TMin || got.TMax != r.TMax || got.Depth != r.Depth {
		t.Errorf("Transform changed TMin/TMax/Depth: got %+v", got)
	}
	wantOrigin := geom.NewPoint(0, 5, 0)
	if !got.Origin.Aeq(wantOrigin) {
		t.Errorf("Transform origin: got %+v want %+v", got.Origin, wantOrigin)
	}
	if !got.Dir.Aeq(r.Dir) {
		t.Errorf("Transform dir under pure translation: got %+v want %+v", got.Dir, r.Dir)
	}
}

func TestRayWithDepthIsCopy(t *testing.T) {
	r := New(geom.NewPoint(0, 0, 0), geom.NewVec(0, 1, 0))
	r2 := r.WithDepth(5)
	if r.Depth != 0 {
		t.Errorf("original ray mutated: Depth=%d", r.Depth)
	}
	if r2.Depth != 5 {
		t.Errorf("WithDepth: got %d want 5", r2.Depth)
	}
}

func TestIntervalContainsIsOpenOpen(t *testing.T) {
	iv := Interval{Min: 1, Max: 3}
	if iv.Contains(1) || iv.Contains(3) {
		t.Errorf("Contains should be strict at the endpoints")
	}
	if !iv.Contains(2) {
		t.Errorf("Contains(2) should hold inside (1,3)")
	}
}

func TestBuildIntervalsPairsConsecutive(t *testing.T) {
	got := BuildIntervals([]float64{1, 2, 5, 7})
	want := []Interval{{1, 2}, {5, 7}}
	if len(got) != len(want) {
		t.Fatalf("BuildIntervals: got %d intervals want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("BuildIntervals[%d]: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestBuildIntervalsOddLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on odd-length input")
		}
	}()
	BuildIntervals([]float64{1, 2, 3})
}

func TestAnyContains(t *testing.T) {
	intervals := []Interval{{0, 1}, {4, 6}}
	if !AnyContains(intervals, 5) {
		t.Errorf("AnyContains(5): want true")
	}
	if AnyContains(intervals, 2) {
		t.Errorf("AnyContains(2): want false")
	}
}
