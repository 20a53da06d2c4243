package planar

import "sort"

// YMonotonePath connects the points in order of their initial position,
// sorted by y and then by x, into a single path.
//
// The path always has n−1 edges and needs no crossing tests, so it serves as
// a trivial upper reference. It is planar at t=0 but not necessarily while
// the points move.
//
// Error Conditions: ErrNilPointSet, ErrEmptyPointSet.
//
// Complexity: O(n log n). Visited is n−1, Comparisons is always zero.
func YMonotonePath(ps PointSet, opts ...Option) (Result, error) {
	if err := validatePointSet(ps); err != nil {
		return Result{}, err
	}
	o := buildOptions(opts)
	n := ps.Len()

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := ps.Point(order[a]), ps.Point(order[b])
		if pa.Y != pb.Y {
			return pa.Y < pb.Y
		}

		return pa.X < pb.X
	})

	edges := make([]Edge, 0, n-1)
	for k := 1; k < n; k++ {
		i, j := order[k-1], order[k]
		e := NewEdge(ps.Point(i), ps.Point(j), o.Weight)
		e.Src, e.Dst = i, j
		edges = append(edges, e)
	}

	return Result{Edges: edges, Weight: TotalWeight(edges), Visited: n - 1}, nil
}
