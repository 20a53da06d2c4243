package kinetic

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/spatial/r2"
)

// legendreNodes is enough Gauss–Legendre nodes to integrate a polynomial of
// degree ≤ 5 exactly; every piece of the swept-area integrand has degree ≤ 2.
const legendreNodes = 3

// SweptArea returns the area covered by the segment while it moves over
// [0,1], counted with multiplicity.
//
// The moving segment is the bilinear patch p(s,t) = A(t) + s·(B(t)−A(t)).
// With e0 = B0−A0, e1 = vB−vA and vA the velocity of A, its Jacobian is
//
//	det J(s,t) = (e0 + t·e1) × (vA + s·e1) = c + a·s + b·t
//
// where c = e0×vA, a = e0×e1, b = e1×vA (the s·t term is e1×e1 = 0).
// The inner integral over s has the closed form
//
//	g(t) = ∫₀¹ |α + a·s| ds,   α = c + b·t
//	     = |α + a/2|                  if α and α+a share a sign,
//	     = (α² + (α+a)²) / (2|a|)     otherwise.
//
// g is piecewise polynomial of degree ≤ 2 with kinks where α = 0 or α+a = 0,
// so splitting [0,1] at those instants and using a 3-point Gauss–Legendre rule
// per piece is exact.
//
// Complexity: O(1).
func (s Segment) SweptArea() float64 {
	e0 := r2.Sub(s.B.Start(), s.A.Start())
	e1 := r2.Sub(s.B.Velocity(), s.A.Velocity())
	vA := s.A.Velocity()

	c := r2.Cross(e0, vA)
	a := r2.Cross(e0, e1)
	b := r2.Cross(e1, vA)
	scale := (r2.Norm(e0) + r2.Norm(e1)) * (r2.Norm(vA) + r2.Norm(e1))
	if scale == 0 {
		return 0
	}
	tiny := func(x float64) bool { return math.Abs(x) <= relEps*scale }

	g := func(t float64) float64 {
		alpha := c + b*t
		if tiny(a) {
			return math.Abs(alpha)
		}
		beta := alpha + a
		if alpha*beta >= 0 {
			return math.Abs(alpha + a/2)
		}

		return (alpha*alpha + beta*beta) / (2 * math.Abs(a))
	}

	cuts := []float64{0, 1}
	if !tiny(b) {
		for _, t := range [2]float64{-c / b, -(c + a) / b} {
			if t > 0 && t < 1 {
				cuts = append(cuts, t)
			}
		}
	}
	sort.Float64s(cuts)

	var area float64
	for i := 1; i < len(cuts); i++ {
		if cuts[i]-cuts[i-1] <= minSpan {
			continue
		}
		area += quad.Fixed(g, cuts[i-1], cuts[i], legendreNodes, quad.Legendre{}, 0)
	}

	return area
}
