package planar

// Candidates generates the weight-sorted candidate edges for ps.
//
// Steps:
//  1. Validate the point set (non-nil, non-empty).
//  2. Enumerate pairs (i,j), i<j, in lexicographic order; this is the
//     generation order that breaks weight ties.
//  3. If Options.Restricted, drop pairs the point set deems inadmissible.
//  4. Weigh every edge according to Options.Weight and sort stably.
//
// Errors: ErrNilPointSet, ErrEmptyPointSet.
//
// Complexity: O(n²·C + E log E), where C is the cost of the admissibility
// oracle (O(n) for *kinetic.PointSet).
func Candidates(ps PointSet, opts ...Option) ([]Edge, error) {
	if err := validatePointSet(ps); err != nil {
		return nil, err
	}

	return candidates(ps, buildOptions(opts)), nil
}

func validatePointSet(ps PointSet) error {
	if ps == nil {
		return ErrNilPointSet
	}
	if ps.Len() == 0 {
		return ErrEmptyPointSet
	}

	return nil
}

// candidates assumes a validated point set. Every returned edge carries its
// position in the sorted list as rank.
func candidates(ps PointSet, o Options) []Edge {
	n := ps.Len()
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			e := NewEdge(ps.Point(i), ps.Point(j), o.Weight)
			e.Src, e.Dst = i, j
			if o.Restricted && !ps.Admissible(e.Segment) {
				continue
			}
			edges = append(edges, e)
		}
	}
	SortEdges(edges)
	for i := range edges {
		edges[i].rank = i
	}

	return edges
}
