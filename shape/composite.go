package shape

import (
	"math"

	"github.com/ochrevis/slray/geom"
	"github.com/ochrevis/slray/ray"
)

// Rule selects which CSG set operation a CompositeShape's two children are
// combined with.
type Rule int

const (
	// Unite keeps every point inside either child — used for the plain
	// multi-shape grouping form (no boolean simplification beyond the set
	// union itself).
	Unite Rule = iota
	// Intersect keeps only points inside both children.
	Intersect
	// Diff keeps points inside the left child but not the right.
	Diff
	// Fuse is Unite's boolean-union sibling, used when reducing a multi-arg
	// DIFF's subtrahends into a single right-hand operand
	// (DIFF(a,b,c,...) = a \ Fuse(b,c,...)). Unlike Unite, Fuse coalesces
	// overlapping regions and removes the interior boundary between them,
	// so SceneLang can distinguish "these are separate objects that happen
	// to overlap" (Unite, every child boundary stays a hit) from "treat the
	// union as a single solid" (Fuse, the seam disappears).
	Fuse
)

// CompositeShape combines two child shapes via a Rule. It owns no Material
// of its own: at a hit, the material comes from whichever child's surface
// the ray actually struck.
type CompositeShape struct {
	Rule        Rule
	Left, Right Shape
	Transform   geom.Transformation
}

// NewComposite returns a CompositeShape combining left and right under
// rule, placed by t.
func NewComposite(rule Rule, left, right Shape, t geom.Transformation) CompositeShape {
	return CompositeShape{Rule: rule, Left: left, Right: right, Transform: t}
}

func (c CompositeShape) toLocal(r ray.Ray) ray.Ray { return r.Transform(c.Transform.Inverse()) }

func combine(rule Rule, left, right []ray.Interval) []ray.Interval {
	switch rule {
	case Unite:
		return uniteIntervals(left, right)
	case Fuse:
		return fuseIntervals(left, right)
	case Intersect:
		return intersectIntervals(left, right)
	case Diff:
		return diffIntervals(left, right)
	default:
		panic("shape: unknown CSG rule")
	}
}

// Intervals implements Shape.
func (c CompositeShape) Intervals(r ray.Ray) []ray.Interval {
	local := c.toLocal(r)
	return combine(c.Rule, c.Left.Intervals(local), c.Right.Intervals(local))
}

// AnyHit implements Shape.
func (c CompositeShape) AnyHit(r ray.Ray) bool {
	local := c.toLocal(r)
	combined := combine(c.Rule, c.Left.Intervals(local), c.Right.Intervals(local))
	for _, t := range hitTs(combined) {
		if local.InDomain(t) {
			return true
		}
	}
	return false
}

// Intersect implements Shape.
func (c CompositeShape) Intersect(r ray.Ray) (HitRecord, bool) {
	local := c.toLocal(r)
	leftIvs := c.Left.Intervals(local)
	rightIvs := c.Right.Intervals(local)
	combined := combine(c.Rule, leftIvs, rightIvs)

	best, found := math.Inf(1), false
	for _, t := range hitTs(combined) {
		if local.InDomain(t) && t < best {
			best, found = t, true
		}
	}
	if !found {
		return HitRecord{}, false
	}

	var rec HitRecord
	var ok bool
	if boundaryBelongsTo(leftIvs, best) {
		rec, ok = recordAt(c.Left, local, best)
	}
	if !ok && boundaryBelongsTo(rightIvs, best) {
		rec, ok = recordAt(c.Right, local, best)
	}
	if !ok {
		// Neither child's own boundary list contains best within
		// tolerance: fall back to whichever child actually has a surface
		// there, preferring the nearer genuine hit.
		if lr, lok := c.Left.Intersect(ray.Ray{Origin: local.Origin, Dir: local.Dir, TMin: best - geomEpsilon, TMax: best + geomEpsilon, Depth: local.Depth}); lok {
			rec, ok = lr, true
		} else if rr, rok := c.Right.Intersect(ray.Ray{Origin: local.Origin, Dir: local.Dir, TMin: best - geomEpsilon, TMax: best + geomEpsilon, Depth: local.Depth}); rok {
			rec, ok = rr, true
		}
	}
	if !ok {
		return HitRecord{}, false
	}

	rec.Point = c.Transform.ApplyPoint(rec.Point)
	rec.Normal = c.Transform.ApplyNormal(rec.Normal)
	rec.T = best
	rec.World = r
	return rec, true
}

// boundaryBelongsTo reports whether t matches one of ivs' endpoints within
// tolerance.
func boundaryBelongsTo(ivs []ray.Interval, t float64) bool {
	for _, iv := range ivs {
		if !math.IsInf(iv.Min, 0) && math.Abs(iv.Min-t) < 1e-6 {
			return true
		}
		if !math.IsInf(iv.Max, 0) && math.Abs(iv.Max-t) < 1e-6 {
			return true
		}
	}
	return false
}

// recordAt asks child for the HitRecord at exactly parameter t of localRay,
// without re-searching for the nearest boundary.
func recordAt(child Shape, localRay ray.Ray, t float64) (HitRecord, bool) {
	pinned := ray.Ray{Origin: localRay.Origin, Dir: localRay.Dir, TMin: t - geomEpsilon, TMax: t + geomEpsilon, Depth: localRay.Depth}
	return child.Intersect(pinned)
}

// UniteAll, IntersectAll, FuseAll build a balanced binary tree of
// CompositeShape nodes over three or more operands, so no single node ends
// up with an unbalanced comb of children for a large shape count.
func UniteAll(t geom.Transformation, shapes ...Shape) Shape { return buildBalanced(Unite, t, shapes) }
func IntersectAll(t geom.Transformation, shapes ...Shape) Shape {
	return buildBalanced(Intersect, t, shapes)
}
func FuseAll(t geom.Transformation, shapes ...Shape) Shape { return buildBalanced(Fuse, t, shapes) }

// DiffAll returns first \ Fuse(rest...), matching the multi-arg DIFF
// reduction: subtract the union of every other operand from the first.
func DiffAll(t geom.Transformation, first Shape, rest ...Shape) Shape {
	if len(rest) == 0 {
		return first
	}
	subtrahend := FuseAll(geom.Identity, rest...)
	return NewComposite(Diff, first, subtrahend, t)
}

// buildBalanced recursively halves shapes into a balanced tree of
// CompositeShape nodes under rule. Every internal node besides the root
// uses the identity transform: only the outermost composite carries t.
func buildBalanced(rule Rule, t geom.Transformation, shapes []Shape) Shape {
	switch len(shapes) {
	case 0:
		panic("shape: cannot combine zero shapes")
	case 1:
		return Placed{Shape: shapes[0], Transform: t}
	default:
		mid := len(shapes) / 2
		left := buildBalancedIdentity(rule, shapes[:mid])
		right := buildBalancedIdentity(rule, shapes[mid:])
		return NewComposite(rule, left, right, t)
	}
}

func buildBalancedIdentity(rule Rule, shapes []Shape) Shape {
	if len(shapes) == 1 {
		return shapes[0]
	}
	mid := len(shapes) / 2
	left := buildBalancedIdentity(rule, shapes[:mid])
	right := buildBalancedIdentity(rule, shapes[mid:])
	return NewComposite(rule, left, right, geom.Identity)
}

// Placed wraps a single shape with an extra outer Transformation, without
// combining it with anything — the degenerate one-operand case of a
// balanced UNITE/INTERSECT/FUSE group, and generally useful whenever
// SceneLang places an already-built shape tree under a further transform.
type Placed struct {
	Shape     Shape
	Transform geom.Transformation
}

func (p Placed) toLocal(r ray.Ray) ray.Ray { return r.Transform(p.Transform.Inverse()) }

func (p Placed) Intersect(r ray.Ray) (HitRecord, bool) {
	rec, ok := p.Shape.Intersect(p.toLocal(r))
	if !ok {
		return HitRecord{}, false
	}
	rec.Point = p.Transform.ApplyPoint(rec.Point)
	rec.Normal = p.Transform.ApplyNormal(rec.Normal)
	rec.World = r
	return rec, true
}

func (p Placed) AnyHit(r ray.Ray) bool { return p.Shape.AnyHit(p.toLocal(r)) }

func (p Placed) Intervals(r ray.Ray) []ray.Interval { return p.Shape.Intervals(p.toLocal(r)) }
