// Package kinetree computes spanning trees over moving point sets whose edges
// never cross while the points move.
//
// Every point starts somewhere and travels in a straight line at constant
// velocity over normalized time t ∈ [0,1]. A tree drawn over such points
// stays readable only if no two of its edges ever intersect; the cheapest
// such tree is what kinetree looks for.
//
// Under the hood, everything is organized in a few packages:
//
//	kinetic/           kinetic points and segments, the crossing predicate,
//	                   swept area, the point criterion, random scenarios
//	planar/            candidate edges, the non-planar baseline, greedy,
//	                   exhaustive and branch-and-bound searches, tree diff
//	stats/             per-algorithm sample collection, summaries, CSV
//	internal/scenario/ JSON scenario files
//	internal/cli/      the kinetree command (generate, run, experiment)
//
// Quick ASCII example:
//
//	P3───P2
//	│     │
//	P0───P1
//
// Four static corners of a square: the diagonals cross, so the optimum takes
// three sides.
//
//	go install github.com/katalvlaran/kinetree/cmd/kinetree@latest
package kinetree
