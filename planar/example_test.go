package planar_test

import (
	"fmt"

	"github.com/katalvlaran/kinetree/kinetic"
	"github.com/katalvlaran/kinetree/planar"
)

// ExampleBranchAndBound finds the cheapest planar tree of a static square:
// three sides, since the diagonals are longer and cross each other.
func ExampleBranchAndBound() {
	ps := kinetic.NewPointSet([]kinetic.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	})

	res, err := planar.BranchAndBound(ps)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("weight=%.0f edges=%v\n", res.Weight, res.Edges)
	// Output:
	// weight=30 edges=[0-1 0-3 1-2]
}

// ExampleDiff compares the y-monotone path with the optimal tree.
func ExampleDiff() {
	ps := kinetic.NewPointSet([]kinetic.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	})
	path, _ := planar.YMonotonePath(ps)
	best, _ := planar.Exhaustive(ps)

	missing, additional := planar.Diff(best.Edges, path.Edges)
	fmt.Println("missing:", missing)
	fmt.Println("additional:", additional)
	// Output:
	// missing: [1-3 3-2]
	// additional: [0-3 1-2]
}
