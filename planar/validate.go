package planar

import (
	"fmt"

	"github.com/katalvlaran/kinetree/kinetic"
)

// ValidateTree reports whether edges form a spanning tree over n points:
// exactly n−1 edges, endpoints in [0,n) and no cycle. Crossings are not
// checked; see CrossingPairs.
//
// Errors: ErrNotSpanning (wrapped with the reason).
func ValidateTree(n int, edges []Edge) error {
	if n < 1 {
		return fmt.Errorf("%w: %d points", ErrNotSpanning, n)
	}
	if len(edges) != n-1 {
		return fmt.Errorf("%w: %d edges for %d points", ErrNotSpanning, len(edges), n)
	}
	f := newForest(n)
	for _, e := range edges {
		if e.Src < 0 || e.Src >= n || e.Dst < 0 || e.Dst >= n {
			return fmt.Errorf("%w: edge %s out of range", ErrNotSpanning, e)
		}
		if f.connected(e.Src, e.Dst) {
			return fmt.Errorf("%w: edge %s closes a cycle", ErrNotSpanning, e)
		}
		f.union(e.Src, e.Dst)
	}

	return nil
}

// CrossingPairs returns the index pairs (i,j), i<j, of edges that cross at
// some instant. A planar tree yields an empty slice.
//
// Complexity: O(E²) crossing tests.
func CrossingPairs(edges []Edge) [][2]int {
	pairs := [][2]int{}
	for i := 0; i < len(edges)-1; i++ {
		for j := i + 1; j < len(edges); j++ {
			if kinetic.Crosses(edges[i].Segment, edges[j].Segment) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return pairs
}
