// Package planar: branch-and-bound, the exact search with an admissible lower bound.
//
// BranchAndBound walks the same tree as Exhaustive and adds:
//  1. An incumbent upper bound UB, the lightest completed tree so far, shared
//     by the whole invocation and tightened on every better completion.
//  2. A lower bound per node, checked before the next candidate is dequeued:
//
//     LB = weight of the minimum spanning tree over the candidates the
//     sub-branch has not excluded.
//
//     Accepted edges are not committed: a later force-include may evict them
//     and re-offer earlier candidates. Every completion is nevertheless a
//     spanning tree over non-excluded candidates, so dropping the crossing
//     constraint gives LB. It changes only when the excluded set grows, so
//     it is computed once per branch. No spanning tree means LB = +∞.
//     Prune unless LB < UB.
//  3. Reject is explored before force-include, which completes the greedy
//     path first and tightens UB early.
//
// Pruning removes whole subtrees of the exhaustive search and never adds
// nodes, so Visited never exceeds the Exhaustive count on the same input,
// and the optimum weight is the same.
package planar

import "math"

// prune reports whether node b cannot beat the incumbent.
//
// Complexity: O(1); the bound is precomputed per branch.
func (e *searchEngine) prune(b branch) bool {
	return b.floor >= e.bestWeight
}

// relaxedFloor runs Kruskal over the sorted candidates that are not excluded
// and returns the weight of the resulting tree, or +Inf if they do not span
// the point set.
//
// Complexity: O(E·n).
func (e *searchEngine) relaxedFloor(excluded []bool) float64 {
	f := newForest(e.n)
	var (
		w     float64
		added int
	)
	for _, c := range e.all {
		if excluded[c.rank] || f.connected(c.Src, c.Dst) {
			continue
		}
		f.union(c.Src, c.Dst)
		w += c.Weight
		added++
		if added == e.n-1 {
			return w
		}
	}

	return math.Inf(1)
}

// BranchAndBound computes a minimum-weight planar spanning tree, pruning
// subtrees whose lower bound does not beat the best tree found so far.
// It returns the same weight as Exhaustive with at most as many visited
// candidates. There is no time limit.
//
// Error Conditions: as Exhaustive.
//
// Complexity: worst case as Exhaustive; practical speed comes from pruning.
func BranchAndBound(ps PointSet, opts ...Option) (Result, error) {
	return runSearch(ps, true, opts)
}
