package planar

// Exhaustive computes a minimum-weight planar spanning tree by backtracking
// over every crossing conflict (see the engine description in search.go).
//
// It is exponential in the number of conflicts and intended as a ground-truth
// oracle on small instances (a few dozen candidates with many crossings).
// Ties between equally light trees go to the branch that rejects the
// conflicting candidate, so the result is deterministic.
//
// Error Conditions:
//   - ErrNilPointSet, ErrEmptyPointSet : invalid input.
//   - ErrInfeasible                    : every branch ran out of candidates.
//   - ErrInvariantViolation (wrapped)  : internal logic error; the search aborts.
//
// Complexity: O(2^k · E · n) for k conflicts along a root-to-leaf path.
func Exhaustive(ps PointSet, opts ...Option) (Result, error) {
	return runSearch(ps, false, opts)
}
