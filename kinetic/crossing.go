package kinetic

import "sort"

// minSpan is the shortest sub-interval of [0,1] worth probing. Breakpoints
// closer than this are the same root found twice.
const minSpan = 1e-12

// Crosses reports whether two kinetic segments intersect transversally at
// some shared instant t∈[0,1].
//
// Steps:
//  1. Segments sharing an endpoint never cross.
//  2. Build the four orientation polynomials orient(A,B,C), orient(A,B,D),
//     orient(C,D,A), orient(C,D,B) for s=AB and o=CD.
//  3. Collect their roots inside (0,1) together with 0 and 1, and sort them.
//     Between consecutive breakpoints no orientation changes sign.
//  4. Evaluate the strict four-orientation test at every sub-interval
//     midpoint; report true on the first success.
//
// Collinear and touching configurations yield a zero orientation and are
// therefore reported as non-crossing.
//
// Complexity: O(1).
func Crosses(s, o Segment) bool {
	if s.SharesEndpoint(o) {
		return false
	}

	polys := [4]quadratic{
		orientation(s.A, s.B, o.A),
		orientation(s.A, s.B, o.B),
		orientation(o.A, o.B, s.A),
		orientation(o.A, o.B, s.B),
	}

	// At most two roots per polynomial plus both interval ends.
	var buf [10]float64
	cuts := append(buf[:0], 0)
	for _, q := range polys {
		cuts = q.rootsIn(cuts)
	}
	cuts = append(cuts, 1)
	sort.Float64s(cuts)

	for i := 1; i < len(cuts); i++ {
		if cuts[i]-cuts[i-1] <= minSpan {
			continue
		}
		if properAt(&polys, (cuts[i-1]+cuts[i])/2) {
			return true
		}
	}

	return false
}

// properAt is the strict static crossing test at a single instant.
func properAt(p *[4]quadratic, t float64) bool {
	return p[0].sign(t)*p[1].sign(t) < 0 && p[2].sign(t)*p[3].sign(t) < 0
}

// Counter evaluates the crossing predicate and counts every pairwise
// comparison it performs. The zero value is ready to use.
// A Counter belongs to one search and is not safe for concurrent use.
type Counter struct {
	comparisons int
}

// Crosses counts one comparison and delegates to the package Crosses.
func (c *Counter) Crosses(s, o Segment) bool {
	c.comparisons++

	return Crosses(s, o)
}

// Comparisons returns the number of comparisons performed so far.
func (c *Counter) Comparisons() int { return c.comparisons }

// Reset sets the comparison count back to zero.
func (c *Counter) Reset() { c.comparisons = 0 }
