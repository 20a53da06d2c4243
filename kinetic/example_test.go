package kinetic_test

import (
	"fmt"

	"github.com/katalvlaran/kinetree/kinetic"
)

// ExampleCrosses shows a crossing that exists only while the points move:
// a short vertical edge falls through a static horizontal one.
func ExampleCrosses() {
	ps := kinetic.NewPointSet([]kinetic.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 5, Y: 1, DY: -4},
		{X: 5, Y: 3, DY: -4},
	})
	horizontal := kinetic.NewSegment(ps.Point(0), ps.Point(1))
	falling := kinetic.NewSegment(ps.Point(2), ps.Point(3))

	fmt.Println("crosses:", kinetic.Crosses(horizontal, falling))
	fmt.Println("length at t0:", falling.Length0())
	// Output:
	// crosses: true
	// length at t0: 2
}

// ExampleSegment_SweptArea measures the area covered by an edge that
// rotates a quarter turn around one endpoint.
func ExampleSegment_SweptArea() {
	s := kinetic.NewSegment(
		kinetic.NewPoint(0, 0, 0, 0, 0),
		kinetic.NewPoint(1, 2, 0, -2, 2),
	)
	fmt.Printf("%.3f\n", s.SweptArea())
	// Output: 2.000
}
