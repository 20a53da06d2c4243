package planar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kinetree/kinetic"
	"github.com/katalvlaran/kinetree/planar"
)

// eps absorbs floating-point noise in weight comparisons.
const eps = 1e-9

// square returns four stationary points on the corners of a 10×10 square:
//
//	P3(0,10) ── P2(10,10)
//	   │           │
//	P0(0,0) ─── P1(10,0)
//
// The sides never cross, the diagonals cross each other.
func square() *kinetic.PointSet {
	return kinetic.NewPointSet([]kinetic.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	})
}

// allowList restricts admissibility to an explicit set of index pairs.
type allowList struct {
	*kinetic.PointSet
	allowed map[[2]int]bool
}

func (a allowList) Admissible(s kinetic.Segment) bool {
	i, j := s.A.Index, s.B.Index
	if i > j {
		i, j = j, i
	}

	return a.allowed[[2]int{i, j}]
}

// greedyTrap is a restricted instance where greedy fails but a planar tree
// exists. Candidates in order: 2-3 (2), 1-2 (√26), 1-3 (√26), 0-1 (10).
// Greedy takes 2-3 and 1-2, then 0-1 crosses 2-3 and 3 has no way left.
// The optimum forces 0-1, evicts 2-3 and reattaches 3 through 1-3.
func greedyTrap() allowList {
	return allowList{
		PointSet: kinetic.NewPointSet([]kinetic.Point{
			{X: 0, Y: 0},
			{X: 10, Y: 0},
			{X: 5, Y: 1},
			{X: 5, Y: -1},
		}),
		allowed: map[[2]int]bool{
			{0, 1}: true,
			{1, 2}: true,
			{1, 3}: true,
			{2, 3}: true,
		},
	}
}

// greedyTrapOptimum is 0-1 + 1-2 + 1-3.
var greedyTrapOptimum = 10 + 2*math.Sqrt(26)

// random draws a moving scenario with the default canvas and velocities.
func random(t testing.TB, n int, seed int64) *kinetic.PointSet {
	t.Helper()
	opts := kinetic.DefaultGeneratorOptions()
	opts.N = n
	opts.Seed = seed
	ps, err := kinetic.Generate(opts)
	require.NoError(t, err)

	return ps
}

// names renders edges as "i-j" strings.
func names(edges []planar.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.String()
	}

	return out
}

// requirePlanarTree asserts that res is a crossing-free spanning tree of ps.
func requirePlanarTree(t *testing.T, ps planar.PointSet, res planar.Result) {
	t.Helper()
	require.NoError(t, planar.ValidateTree(ps.Len(), res.Edges))
	require.Empty(t, planar.CrossingPairs(res.Edges))
	require.InDelta(t, planar.TotalWeight(res.Edges), res.Weight, eps)
}
