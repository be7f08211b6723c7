package ray

// Interval is an open-open span (Min, Max) of the ray parameter t. It is
// used in the CSG interval algebra (spec.md §4.4) to describe the span
// during which a ray is "inside" a shape; a Ray keeps its own validity
// window in its TMin and TMax fields.
type Interval struct {
	Min, Max float64
}

// Contains reports whether t lies strictly between Min and Max.
func (iv Interval) Contains(t float64) bool { return t > iv.Min && t < iv.Max }

// BuildIntervals pairs a sorted, even-length list of hit parameters into
// consecutive open-open intervals: (t0,t1), (t2,t3), and so on. Callers must
// ensure ts is sorted ascending and has even length — an odd-length
// sequence is a precondition violation (spec.md §4.4) and this function
// panics rather than silently dropping the trailing hit, since it indicates
// a broken shape kernel rather than a user-facing scenario.
func BuildIntervals(ts []float64) []Interval {
	if len(ts)%2 != 0 {
		panic("ray: BuildIntervals requires an even-length, sorted hit sequence")
	}
	intervals := make([]Interval, 0, len(ts)/2)
	for i := 0; i+1 < len(ts); i += 2 {
		intervals = append(intervals, Interval{ts[i], ts[i+1]})
	}
	return intervals
}

// AnyContains reports whether t lies strictly inside any of the given
// intervals.
func AnyContains(intervals []Interval, t float64) bool {
	for _, iv := range intervals {
		if iv.Contains(t) {
			return true
		}
	}
	return false
}
