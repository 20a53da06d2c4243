// Package planar computes spanning trees over kinetic point sets whose edges
// never cross while the points move.
//
// What & Why
//
//   - A kinetic point moves linearly over normalized time t ∈ [0,1]. An edge
//     between two kinetic points is a moving segment; two edges cross if they
//     intersect transversally at some shared instant.
//
//   - A planar spanning tree connects all n points with n−1 edges, no two of
//     which ever cross. Drawing such a tree keeps a dynamic layout readable
//     for the whole animation.
//
//   - The cheapest planar tree is not the MST: the MST ignores crossings, and
//     a plain greedy pass can paint itself into a corner.
//
// Algorithms Provided
//
//   - Kruskal(ps, opts...)        non-planar baseline (lower bound on weight).
//   - Greedy(ps, opts...)         one Kruskal pass that discards crossing edges.
//   - Exhaustive(ps, opts...)     backtracking over every crossing conflict.
//   - BranchAndBound(ps, opts...) the same search with an admissible bound.
//   - YMonotonePath(ps, opts...)  points chained in (y, x) order.
//
// Compute dispatches by Algorithm name. Diff, ValidateTree and CrossingPairs
// inspect results.
//
// Options
//
//   - WithWeightMode(WeightLength | WeightSweptArea): length at t=0 or the
//     area swept over [0,1].
//   - WithRestrictedCandidates(true): drop edges the point set deems
//     inadmissible before searching.
//
// Determinism
//
//   - Candidates are enumerated as (i,j), i<j, and sorted stably, so equal
//     weights keep generation order and every run returns the same tree.
//
// Errors
//
//   - ErrNilPointSet, ErrEmptyPointSet for invalid input.
//   - ErrInfeasible when the candidates run out before n−1 edges.
//   - ErrInvariantViolation when the search state is inconsistent.
//
// Every Result carries the number of dequeued candidates (Visited) and of
// kinetic crossing tests (Comparisons).
package planar
