package planar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kinetree/kinetic"
	"github.com/katalvlaran/kinetree/planar"
)

type searchFunc func(planar.PointSet, ...planar.Option) (planar.Result, error)

var exactSearches = map[string]searchFunc{
	"exhaustive":     planar.Exhaustive,
	"branchandbound": planar.BranchAndBound,
}

func TestExact_Square(t *testing.T) {
	for name, search := range exactSearches {
		t.Run(name, func(t *testing.T) {
			res, err := search(square())
			require.NoError(t, err)
			assert.Equal(t, []string{"0-1", "0-3", "1-2"}, names(res.Edges))
			assert.InDelta(t, 30, res.Weight, eps)
			assert.Equal(t, 3, res.Visited)
		})
	}
}

func TestExact_RecoversGreedyTrap(t *testing.T) {
	for name, search := range exactSearches {
		t.Run(name, func(t *testing.T) {
			res, err := search(greedyTrap(), planar.WithRestrictedCandidates(true))
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"0-1", "1-2", "1-3"}, names(res.Edges))
			assert.InDelta(t, greedyTrapOptimum, res.Weight, eps)
			assert.Equal(t, 5, res.Visited)
			requirePlanarTree(t, greedyTrap(), res)
		})
	}
}

func TestExact_InvalidInput(t *testing.T) {
	for name, search := range exactSearches {
		t.Run(name, func(t *testing.T) {
			_, err := search(nil)
			assert.ErrorIs(t, err, planar.ErrNilPointSet)
			_, err = search(kinetic.NewPointSet(nil))
			assert.ErrorIs(t, err, planar.ErrEmptyPointSet)

			res, err := search(kinetic.NewPointSet([]kinetic.Point{{X: 3, Y: 4}}))
			require.NoError(t, err)
			assert.Empty(t, res.Edges)
		})
	}
}

func TestExact_RestrictedInfeasible(t *testing.T) {
	ps := allowList{
		PointSet: kinetic.NewPointSet([]kinetic.Point{{X: 0}, {X: 1, Y: 5}, {X: 2}}),
		allowed:  map[[2]int]bool{{0, 1}: true},
	}
	for name, search := range exactSearches {
		t.Run(name, func(t *testing.T) {
			res, err := search(ps, planar.WithRestrictedCandidates(true))
			assert.ErrorIs(t, err, planar.ErrInfeasible)
			assert.Nil(t, res.Edges)
		})
	}
}

// TestExact_Properties checks on random moving scenarios that
//   - both searches agree on feasibility and weight,
//   - their trees are planar spanning trees,
//   - bounding never visits more candidates,
//   - greedy is never lighter and Kruskal never heavier than the optimum.
func TestExact_Properties(t *testing.T) {
	for _, n := range []int{3, 4, 5, 6} {
		for seed := int64(1); seed <= 5; seed++ {
			ps := random(t, n, seed)
			for _, w := range []planar.WeightMode{planar.WeightLength, planar.WeightSweptArea} {
				opt := planar.WithWeightMode(w)

				ex, exErr := planar.Exhaustive(ps, opt)
				bb, bbErr := planar.BranchAndBound(ps, opt)
				if exErr != nil {
					assert.ErrorIs(t, exErr, planar.ErrInfeasible)
					assert.ErrorIs(t, bbErr, planar.ErrInfeasible)
					continue
				}
				require.NoError(t, bbErr, "n=%d seed=%d %s", n, seed, w)

				requirePlanarTree(t, ps, ex)
				requirePlanarTree(t, ps, bb)
				assert.InDelta(t, ex.Weight, bb.Weight, eps, "n=%d seed=%d %s", n, seed, w)
				assert.LessOrEqual(t, bb.Visited, ex.Visited)

				mst, err := planar.Kruskal(ps, opt)
				require.NoError(t, err)
				assert.LessOrEqual(t, mst.Weight, ex.Weight+eps)

				if gr, err := planar.Greedy(ps, opt); err == nil {
					assert.GreaterOrEqual(t, gr.Weight, ex.Weight-eps)
				}
			}
		}
	}
}

func TestExact_Deterministic(t *testing.T) {
	ps := random(t, 6, 42)
	for name, search := range exactSearches {
		t.Run(name, func(t *testing.T) {
			first, err1 := search(ps)
			second, err2 := search(ps)
			assert.Equal(t, err1, err2)
			assert.Equal(t, names(first.Edges), names(second.Edges))
			assert.Equal(t, first.Weight, second.Weight)
			assert.Equal(t, first.Visited, second.Visited)
			assert.Equal(t, first.Comparisons, second.Comparisons)
		})
	}
}
