package planar

// Kruskal computes the minimum spanning tree of the candidate graph while
// ignoring crossings: the non-planar baseline every planar result is
// measured against.
//
// With WithRestrictedCandidates(true) it runs over the admissible edges only,
// which gives the "crossing-stable" baseline.
//
// Error Conditions:
//   - ErrNilPointSet, ErrEmptyPointSet : invalid input.
//   - ErrInfeasible                    : the candidate graph is disconnected
//     (only possible in restricted mode).
//
// Steps:
//  1. Validate; a single point is a trivial tree (no edges, weight 0).
//  2. Generate and stably sort candidates.
//  3. Initialize the union-find forest, every point its own root.
//  4. Dequeue candidates in order; accept each one joining two components.
//  5. Stop at n−1 edges; running out first is ErrInfeasible.
//
// Complexity: O(E log E + E·n). Comparisons is always zero.
func Kruskal(ps PointSet, opts ...Option) (Result, error) {
	// 1. Validate.
	if err := validatePointSet(ps); err != nil {
		return Result{}, err
	}
	n := ps.Len()
	if n == 1 {
		return Result{Edges: []Edge{}}, nil
	}

	// 2. Candidates, sorted by weight with generation-order ties.
	queue := candidates(ps, buildOptions(opts))

	// 3. Union-find forest.
	f := newForest(n)

	// 4. Kruskal loop.
	var (
		res  Result
		tree = make([]Edge, 0, n-1)
	)
	for _, e := range queue {
		res.Visited++
		if f.connected(e.Src, e.Dst) {
			continue
		}
		f.union(e.Src, e.Dst)
		tree = append(tree, e)
		if len(tree) == n-1 {
			break
		}
	}

	// 5. A forest is never reported as a tree.
	if len(tree) < n-1 {
		return res, ErrInfeasible
	}
	res.Edges = tree
	res.Weight = TotalWeight(tree)

	return res, nil
}
