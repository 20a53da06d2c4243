// Package kinetic provides the geometry of points that move with constant
// velocity over the normalized time interval t∈[0,1].
//
// What & Why
//
//   - A kinetic Point has an initial position (X,Y) and a velocity (DX,DY);
//     its position at time t is (X+t·DX, Y+t·DY).
//
//   - A kinetic Segment joins two kinetic points and therefore moves (and may
//     rotate, stretch or collapse) continuously over [0,1].
//
//   - Two kinetic segments cross when they intersect transversally at some
//     shared instant. Spanning trees whose edges never cross are the subject of
//     package planar; this package owns the predicate they rely on.
//
// Crossing predicate
//
// The classical static test declares segments ab and cd crossing when
//
//	orient(a,b,c)·orient(a,b,d) < 0  and  orient(c,d,a)·orient(c,d,b) < 0
//
// where orient(a,b,c) = (b−a)×(c−a). With positions affine in t every
// orientation becomes a polynomial of degree ≤ 2 in t. Crosses finds the roots
// of the four polynomials inside (0,1), which split [0,1] into sub-intervals
// on which no orientation changes sign, and evaluates the strict static test
// once at each sub-interval midpoint. Because the strict test describes an
// open set of instants, a crossing at any t∈[0,1] is always visible at some
// midpoint.
//
// Touching, collinear overlap and shared endpoints are never crossings.
//
// Counter wraps the predicate with a comparison count for instrumentation.
//
// Other queries
//
//   - Segment.Length0 – Euclidean length at t=0.
//   - Segment.SweptArea – area covered by the moving segment, counted with
//     multiplicity: ∫∫|det J| over the bilinear patch (s,t) ↦ A(t)+s(B(t)−A(t)).
//   - PointSet.Admissible – the "point criterion": a segment is rejected when a
//     third point passes through it or stays closer than the configured
//     clearance at t=0 or t=1.
//   - Generate – deterministic random scenarios for experiments.
//
// Complexity:
//   - Crosses: O(1) (at most 9 sub-intervals, 4 polynomial evaluations each).
//   - SweptArea: O(1) (at most 3 pieces of 3-point Gauss–Legendre).
//   - Admissible: O(n) over the point set.
package kinetic
