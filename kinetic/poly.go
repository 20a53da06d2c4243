package kinetic

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// relEps is the relative tolerance under which a polynomial coefficient or
// value is treated as zero. It is relative to the magnitude of the vectors
// that produced the polynomial, so it is independent of the coordinate scale.
const relEps = 1e-12

// quadratic is the polynomial c0 + c1·t + c2·t².
// scale bounds the magnitude of the products the coefficients came from and
// is used to decide when a coefficient or a value is numerically zero.
type quadratic struct {
	c0, c1, c2 float64
	scale      float64
}

// orientation returns the orientation determinant (b−a)×(c−a) of three
// kinetic points as a polynomial in t.
//
// With u(t) = u0 + t·u1 and v(t) = v0 + t·v1:
//
//	u(t)×v(t) = u0×v0 + t·(u0×v1 + u1×v0) + t²·(u1×v1)
func orientation(a, b, c Point) quadratic {
	u0 := r2.Sub(b.Start(), a.Start())
	u1 := r2.Sub(b.Velocity(), a.Velocity())
	v0 := r2.Sub(c.Start(), a.Start())
	v1 := r2.Sub(c.Velocity(), a.Velocity())

	return quadratic{
		c0:    r2.Cross(u0, v0),
		c1:    r2.Cross(u0, v1) + r2.Cross(u1, v0),
		c2:    r2.Cross(u1, v1),
		scale: (r2.Norm(u0) + r2.Norm(u1)) * (r2.Norm(v0) + r2.Norm(v1)),
	}
}

// eval evaluates the polynomial at t (Horner).
func (q quadratic) eval(t float64) float64 {
	return q.c0 + t*(q.c1+t*q.c2)
}

// negligible reports whether x is zero at the polynomial's scale.
func (q quadratic) negligible(x float64) bool {
	return math.Abs(x) <= relEps*q.scale
}

// zero reports whether the polynomial vanishes identically.
func (q quadratic) zero() bool {
	return q.negligible(q.c0) && q.negligible(q.c1) && q.negligible(q.c2)
}

// sign returns −1, 0 or +1 for the value at t.
func (q quadratic) sign(t float64) int {
	v := q.eval(t)
	switch {
	case q.negligible(v):
		return 0
	case v < 0:
		return -1
	default:
		return 1
	}
}

// rootsIn appends the real roots of q lying strictly inside (0,1) to dst.
// The degree degrades to linear or constant when leading coefficients vanish;
// an identically zero polynomial has no isolated roots.
func (q quadratic) rootsIn(dst []float64) []float64 {
	keep := func(t float64) {
		if t > 0 && t < 1 {
			dst = append(dst, t)
		}
	}

	switch {
	case !q.negligible(q.c2):
		disc := q.c1*q.c1 - 4*q.c2*q.c0
		if disc < 0 {
			return dst
		}
		if disc == 0 {
			keep(-q.c1 / (2 * q.c2))
			return dst
		}
		// Numerically stable form: q = −(c1 + sgn(c1)·√disc)/2, roots q/c2 and c0/q.
		s := math.Copysign(math.Sqrt(disc), q.c1)
		h := -0.5 * (q.c1 + s)
		keep(h / q.c2)
		if h != 0 {
			keep(q.c0 / h)
		}
	case !q.negligible(q.c1):
		keep(-q.c0 / q.c1)
	}

	return dst
}
