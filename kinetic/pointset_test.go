package kinetic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kinetree/kinetic"
)

func TestNewPointSet_Renumbers(t *testing.T) {
	ps := kinetic.NewPointSet([]kinetic.Point{
		kinetic.NewPoint(7, 1, 1, 0, 0),
		kinetic.NewPoint(7, 2, 2, 0, 0),
	})
	require.Equal(t, 2, ps.Len())
	assert.Equal(t, 0, ps.Point(0).Index)
	assert.Equal(t, 1, ps.Point(1).Index)

	pts := ps.Points()
	pts[0].X = 99
	assert.Equal(t, 1.0, ps.Point(0).X, "Points must return a copy")
}

func TestSortedByY(t *testing.T) {
	ps := kinetic.NewPointSet([]kinetic.Point{
		{X: 5, Y: 3},
		{X: 1, Y: 1},
		{X: 0, Y: 3},
		{X: 2, Y: 1},
	})
	got := ps.SortedByY()
	idx := make([]int, len(got))
	for i, p := range got {
		idx[i] = p.Index
	}
	assert.Equal(t, []int{1, 3, 2, 0}, idx)
}

func TestPointCriterion_StaticCollinear(t *testing.T) {
	ps := kinetic.NewPointSet([]kinetic.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 5, Y: 0},
	})
	long := kinetic.NewSegment(ps.Point(0), ps.Point(1))
	short := kinetic.NewSegment(ps.Point(0), ps.Point(2))

	assert.True(t, ps.ViolatesPointCriterion(long), "point 2 lies inside 0-1")
	assert.False(t, ps.Admissible(long))
	assert.True(t, ps.Admissible(short), "point 1 lies beyond the end of 0-2")
}

func TestPointCriterion_PassingPoint(t *testing.T) {
	ps := kinetic.NewPointSet([]kinetic.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 5, Y: 5, DY: -10}, // crosses y=0 at t=0.5
		{X: 20, Y: 5, DY: -10},
	})
	base := kinetic.NewSegment(ps.Point(0), ps.Point(1))
	assert.False(t, ps.Admissible(base))

	// Without point 2 the segment is clear: point 3 passes beyond x=10.
	clear := kinetic.NewPointSet([]kinetic.Point{ps.Point(0), ps.Point(1), ps.Point(3)})
	assert.True(t, clear.Admissible(kinetic.NewSegment(clear.Point(0), clear.Point(1))))
}

func TestPointCriterion_Clearance(t *testing.T) {
	pts := []kinetic.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 5, Y: 1},
	}
	tight := kinetic.NewPointSet(pts, kinetic.WithClearance(2))
	loose := kinetic.NewPointSet(pts, kinetic.WithClearance(0.5))
	none := kinetic.NewPointSet(pts)

	s := kinetic.NewSegment(tight.Point(0), tight.Point(1))
	assert.False(t, tight.Admissible(s))
	assert.True(t, loose.Admissible(s))
	assert.True(t, none.Admissible(s))
	assert.Equal(t, 2.0, tight.Clearance())
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := kinetic.DefaultGeneratorOptions()
	opts.Seed = 42

	a, err := kinetic.Generate(opts)
	require.NoError(t, err)
	b, err := kinetic.Generate(opts)
	require.NoError(t, err)
	assert.Equal(t, a.Points(), b.Points())

	opts.Seed = 43
	c, err := kinetic.Generate(opts)
	require.NoError(t, err)
	assert.NotEqual(t, a.Points(), c.Points())
}

func TestGenerate_RangesAndIntegral(t *testing.T) {
	opts := kinetic.DefaultGeneratorOptions()
	opts.N = 50
	opts.Seed = 7
	ps, err := kinetic.Generate(opts)
	require.NoError(t, err)
	require.Equal(t, 50, ps.Len())

	for i, p := range ps.Points() {
		assert.Equal(t, i, p.Index)
		assert.GreaterOrEqual(t, p.X, opts.XMin)
		assert.Less(t, p.X, opts.XMax)
		assert.GreaterOrEqual(t, p.Y, opts.YMin)
		assert.Less(t, p.Y, opts.YMax)
		assert.Greater(t, p.DX, opts.DXMin-1)
		assert.Less(t, p.DX, opts.DXMax)
		assert.Equal(t, math.Trunc(p.X), p.X)
		assert.Equal(t, math.Trunc(p.DY), p.DY)
	}
}

func TestGenerate_Errors(t *testing.T) {
	opts := kinetic.DefaultGeneratorOptions()
	opts.N = -1
	_, err := kinetic.Generate(opts)
	assert.ErrorIs(t, err, kinetic.ErrNegativeCount)

	opts = kinetic.DefaultGeneratorOptions()
	opts.XMin, opts.XMax = 10, 0
	_, err = kinetic.Generate(opts)
	assert.ErrorIs(t, err, kinetic.ErrBadBounds)
}

func TestSampleSeed_Distinct(t *testing.T) {
	seen := map[int64]bool{}
	for k := uint64(0); k < 100; k++ {
		s := kinetic.SampleSeed(1, k)
		assert.False(t, seen[s])
		seen[s] = true
	}
	assert.Equal(t, kinetic.SampleSeed(5, 3), kinetic.SampleSeed(5, 3))
}
