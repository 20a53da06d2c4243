package planar

import "github.com/katalvlaran/kinetree/kinetic"

// Greedy builds a planar spanning tree in one Kruskal-style pass: a candidate
// joining two components is accepted only if it crosses none of the edges
// accepted so far; otherwise it is discarded for good.
//
// Greedy never backtracks, so it can end sub-optimal or fail outright
// (ErrInfeasible) on instances where a planar tree exists. Its result is
// always the all-reject path of Exhaustive.
//
// Error Conditions: ErrNilPointSet, ErrEmptyPointSet, ErrInfeasible.
//
// Complexity: O(E log E + E·n) plus up to n−2 crossing tests per candidate.
func Greedy(ps PointSet, opts ...Option) (Result, error) {
	if err := validatePointSet(ps); err != nil {
		return Result{}, err
	}
	n := ps.Len()
	if n == 1 {
		return Result{Edges: []Edge{}}, nil
	}

	queue := candidates(ps, buildOptions(opts))
	f := newForest(n)

	var (
		res     Result
		counter kinetic.Counter
		tree    = make([]Edge, 0, n-1)
	)
	for _, e := range queue {
		res.Visited++
		if f.connected(e.Src, e.Dst) {
			continue
		}
		if crossesAny(&counter, e, tree) {
			continue
		}
		f.union(e.Src, e.Dst)
		tree = append(tree, e)
		if len(tree) == n-1 {
			break
		}
	}
	res.Comparisons = counter.Comparisons()

	if len(tree) < n-1 {
		return res, ErrInfeasible
	}
	res.Edges = tree
	res.Weight = TotalWeight(tree)

	return res, nil
}

// crossesAny reports whether e crosses any edge of tree, stopping at the
// first crossing. Every test is counted.
func crossesAny(c *kinetic.Counter, e Edge, tree []Edge) bool {
	for _, t := range tree {
		if c.Crosses(e.Segment, t.Segment) {
			return true
		}
	}

	return false
}
