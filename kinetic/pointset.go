package kinetic

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// PointSet is an immutable, indexed collection of kinetic points together
// with the admissibility criterion used to pre-filter candidate edges.
type PointSet struct {
	points    []Point
	clearance float64
}

// PointSetOption configures a PointSet at construction time.
type PointSetOption func(*PointSet)

// WithClearance sets the minimal distance a third point must keep from a
// segment at t=0 and at t=1 for the segment to be admissible.
// Non-positive values disable the distance check (passing through a segment
// is still rejected).
func WithClearance(d float64) PointSetOption {
	return func(ps *PointSet) {
		ps.clearance = d
	}
}

// NewPointSet copies points into a new PointSet and renumbers them so that
// Point(i).Index == i.
func NewPointSet(points []Point, opts ...PointSetOption) *PointSet {
	ps := &PointSet{points: make([]Point, len(points))}
	for i, p := range points {
		p.Index = i
		ps.points[i] = p
	}
	for _, opt := range opts {
		opt(ps)
	}

	return ps
}

// Len returns the number of points.
func (ps *PointSet) Len() int { return len(ps.points) }

// Point returns the i-th point. It panics if i is out of range.
func (ps *PointSet) Point(i int) Point { return ps.points[i] }

// Points returns a copy of all points in index order.
func (ps *PointSet) Points() []Point {
	out := make([]Point, len(ps.points))
	copy(out, ps.points)

	return out
}

// Clearance returns the configured clearance.
func (ps *PointSet) Clearance() float64 { return ps.clearance }

// SortedByY returns the points ordered by initial y, then initial x.
// Ties keep index order. Indices are preserved.
func (ps *PointSet) SortedByY() []Point {
	out := ps.Points()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}

		return out[i].X < out[j].X
	})

	return out
}

// Admissible reports whether s satisfies the point criterion.
func (ps *PointSet) Admissible(s Segment) bool {
	return !ps.ViolatesPointCriterion(s)
}

// ViolatesPointCriterion reports whether some third point of the set
//   - passes through the interior of s at some t∈[0,1], or
//   - lies closer than the clearance to s at t=0 or at t=1.
//
// Points coinciding with an endpoint of s are not third points.
//
// Complexity: O(n).
func (ps *PointSet) ViolatesPointCriterion(s Segment) bool {
	for _, p := range ps.points {
		if p.Coincides(s.A) || p.Coincides(s.B) {
			continue
		}
		if passesThrough(s, p) {
			return true
		}
		if ps.clearance > 0 &&
			(distanceAt(s, p, 0) < ps.clearance || distanceAt(s, p, 1) < ps.clearance) {
			return true
		}
	}

	return false
}

// passesThrough reports whether p lies strictly inside s at some t∈[0,1].
// p can only be on the line through s where orient(A,B,p) vanishes, so the
// candidate instants are the roots of that polynomial (plus the interval ends).
func passesThrough(s Segment, p Point) bool {
	q := orientation(s.A, s.B, p)
	if q.zero() {
		// Collinear for the whole motion: probe both ends and the middle.
		return insideAt(s, p, 0) || insideAt(s, p, 0.5) || insideAt(s, p, 1)
	}

	var buf [4]float64
	ts := q.rootsIn(buf[:0])
	if q.sign(0) == 0 {
		ts = append(ts, 0)
	}
	if q.sign(1) == 0 {
		ts = append(ts, 1)
	}
	for _, t := range ts {
		if insideAt(s, p, t) {
			return true
		}
	}

	return false
}

// insideAt reports whether the projection of p onto s at time t falls
// strictly between the endpoints and p is on the segment's line.
func insideAt(s Segment, p Point, t float64) bool {
	a, b, x := s.A.At(t), s.B.At(t), p.At(t)
	ab := r2.Sub(b, a)
	l2 := r2.Norm2(ab)
	if l2 == 0 {
		return false
	}
	ax := r2.Sub(x, a)
	lambda := r2.Dot(ax, ab) / l2
	if lambda <= relEps || lambda >= 1-relEps {
		return false
	}
	off := r2.Cross(ab, ax)

	return off*off <= relEps*l2*r2.Norm2(ax)
}

// distanceAt is the Euclidean distance from p to segment s at time t.
func distanceAt(s Segment, p Point, t float64) float64 {
	a, b, x := s.A.At(t), s.B.At(t), p.At(t)
	ab := r2.Sub(b, a)
	l2 := r2.Norm2(ab)
	if l2 == 0 {
		return r2.Norm(r2.Sub(x, a))
	}
	lambda := r2.Dot(r2.Sub(x, a), ab) / l2
	lambda = max(0, min(1, lambda))

	return r2.Norm(r2.Sub(x, r2.Add(a, r2.Scale(lambda, ab))))
}
