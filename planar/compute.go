package planar

import "fmt"

// Algorithm names a spanning-tree algorithm for Compute.
type Algorithm string

const (
	// AlgoNonPlanar is Kruskal ignoring crossings.
	AlgoNonPlanar Algorithm = "nonplanar"
	// AlgoGreedy is the single-pass planar heuristic.
	AlgoGreedy Algorithm = "greedy"
	// AlgoExhaustive is the backtracking search without bounding.
	AlgoExhaustive Algorithm = "exhaustive"
	// AlgoBranchAndBound is the backtracking search with bounding.
	AlgoBranchAndBound Algorithm = "branchandbound"
	// AlgoYMonotone is the y-sorted path.
	AlgoYMonotone Algorithm = "ymonotone"
)

// Algorithms lists every algorithm in reporting order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoNonPlanar, AlgoGreedy, AlgoExhaustive, AlgoBranchAndBound, AlgoYMonotone}
}

// ParseAlgorithm validates an algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if string(a) == s {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Compute runs the named algorithm on ps.
//
// Errors: ErrUnknownAlgorithm, plus those of the selected algorithm.
func Compute(ps PointSet, algo Algorithm, opts ...Option) (Result, error) {
	switch algo {
	case AlgoNonPlanar:
		return Kruskal(ps, opts...)
	case AlgoGreedy:
		return Greedy(ps, opts...)
	case AlgoExhaustive:
		return Exhaustive(ps, opts...)
	case AlgoBranchAndBound:
		return BranchAndBound(ps, opts...)
	case AlgoYMonotone:
		return YMonotonePath(ps, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}
