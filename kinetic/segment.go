package kinetic

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Segment is the continuously moving segment between two kinetic points.
// The pair is ordered only for bookkeeping; geometry is symmetric in A and B.
type Segment struct {
	A, B Point
}

// NewSegment returns the kinetic segment from a to b.
func NewSegment(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Length0 returns the Euclidean length at t=0.
func (s Segment) Length0() float64 {
	return s.LengthAt(0)
}

// LengthAt returns the Euclidean length at time t.
func (s Segment) LengthAt(t float64) float64 {
	return r2.Norm(r2.Sub(s.B.At(t), s.A.At(t)))
}

// SharesEndpoint reports whether s and o have an endpoint that coincides for
// the whole motion. Such segments touch at that endpoint and never cross.
func (s Segment) SharesEndpoint(o Segment) bool {
	return s.A.Coincides(o.A) || s.A.Coincides(o.B) ||
		s.B.Coincides(o.A) || s.B.Coincides(o.B)
}

// Crosses reports whether s and o intersect transversally at some shared
// instant in [0,1]. See the package Crosses function.
func (s Segment) Crosses(o Segment) bool {
	return Crosses(s, o)
}

// String renders the endpoint indices, e.g. "[0→3]".
func (s Segment) String() string {
	return fmt.Sprintf("[%d→%d]", s.A.Index, s.B.Index)
}
