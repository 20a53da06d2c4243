package planar

import "fmt"

// root marks a forest entry without parent.
const root = -1

// forest is a union-find parent array over point indices.
// No path compression and no union by rank.
type forest []int

func newForest(n int) forest {
	f := make(forest, n)
	for i := range f {
		f[i] = root
	}

	return f
}

// find follows parent links to the representative of x.
func (f forest) find(x int) int {
	for f[x] != root {
		x = f[x]
	}

	return x
}

// union attaches the root of a under the root of b.
// Calling it for already connected points is a no-op.
func (f forest) union(a, b int) {
	ra, rb := f.find(a), f.find(b)
	if ra == rb {
		return
	}
	f[ra] = rb
}

func (f forest) connected(a, b int) bool {
	return f.find(a) == f.find(b)
}

// forestOf rebuilds the union-find forest induced by edges over n points.
// An edge whose endpoints are already connected means edges contains a cycle;
// this is reported as ErrInvariantViolation.
//
// Complexity: O(E·n) without path compression.
func forestOf(n int, edges []Edge) (forest, error) {
	f := newForest(n)
	for _, e := range edges {
		if f.connected(e.Src, e.Dst) {
			return nil, fmt.Errorf("%w: edge %s closes a cycle", ErrInvariantViolation, e)
		}
		f.union(e.Src, e.Dst)
	}

	return f, nil
}
