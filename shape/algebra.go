package shape

import (
	"math"
	"sort"

	"github.com/ochrevis/slray/ray"
)

// quadraticRoots solves a*t^2 + b*t + c = 0 and returns its real roots
// sorted ascending. A near-zero a is treated as a degenerate (no-solid)
// case rather than falling back to the linear solution: every kernel that
// calls this only cares about quadratics that bound a genuine volume, and a
// grazing linear root bounds none.
func quadraticRoots(a, b, c float64) (t1, t2 float64, ok bool) {
	if math.Abs(a) < geomEpsilon {
		return 0, 0, false
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	r1 := (-b - sq) / (2 * a)
	r2 := (-b + sq) / (2 * a)
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return r1, r2, true
}

const geomEpsilon = 1e-9

// intersectInterval returns the intersection of a and b, which may each
// carry ±Inf bounds, or ok=false if they do not overlap.
func intersectInterval(a, b ray.Interval) (ray.Interval, bool) {
	lo := math.Max(a.Min, b.Min)
	hi := math.Min(a.Max, b.Max)
	if lo >= hi {
		return ray.Interval{}, false
	}
	return ray.Interval{Min: lo, Max: hi}, true
}

// sortIntervals orders a slice of intervals ascending by Min; CSG
// combinators below assume their inputs already satisfy this.
func sortIntervals(ivs []ray.Interval) {
	sort.Slice(ivs, func(i, j int) bool { return ivs[i].Min < ivs[j].Min })
}

// mergeOverlapping coalesces adjacent/overlapping intervals in a sorted
// slice, the normal form Fuse produces.
func mergeOverlapping(ivs []ray.Interval) []ray.Interval {
	if len(ivs) == 0 {
		return nil
	}
	sortIntervals(ivs)
	out := []ray.Interval{ivs[0]}
	for _, iv := range ivs[1:] {
		last := &out[len(out)-1]
		if iv.Min <= last.Max {
			if iv.Max > last.Max {
				last.Max = iv.Max
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

// uniteIntervals implements Unite (spec.md §4.4: inside either operand,
// interior boundaries retained). Unlike fuseIntervals it never coalesces
// overlapping regions: every boundary either operand contributes stays a
// distinct crossing, even where it falls strictly inside the other operand.
func uniteIntervals(a, b []ray.Interval) []ray.Interval {
	all := append(append([]ray.Interval{}, a...), b...)
	sortIntervals(all)
	return all
}

// fuseIntervals returns the union of a and b with interior boundaries
// removed (spec.md §4.4: Fuse), i.e. the ordinary set union treated as a
// single solid.
func fuseIntervals(a, b []ray.Interval) []ray.Interval {
	all := append(append([]ray.Interval{}, a...), b...)
	return mergeOverlapping(all)
}

// intersectIntervals returns the set of points inside both a and b.
func intersectIntervals(a, b []ray.Interval) []ray.Interval {
	var out []ray.Interval
	for _, x := range a {
		for _, y := range b {
			if iv, ok := intersectInterval(x, y); ok {
				out = append(out, iv)
			}
		}
	}
	sortIntervals(out)
	return out
}

// complementIntervals returns the complement of ivs over (-Inf, +Inf),
// i.e. every point NOT inside any interval of ivs.
func complementIntervals(ivs []ray.Interval) []ray.Interval {
	merged := mergeOverlapping(ivs)
	var out []ray.Interval
	prev := math.Inf(-1)
	for _, iv := range merged {
		if iv.Min > prev {
			out = append(out, ray.Interval{Min: prev, Max: iv.Min})
		}
		prev = iv.Max
	}
	if prev < math.Inf(1) {
		out = append(out, ray.Interval{Min: prev, Max: math.Inf(1)})
	}
	return out
}

// diffIntervals returns the points inside a but not inside b: a ∩ ¬b.
func diffIntervals(a, b []ray.Interval) []ray.Interval {
	return intersectIntervals(a, complementIntervals(b))
}
