package kinetic

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a point moving with constant velocity over t∈[0,1].
// Index identifies the point inside its PointSet; it carries no geometry.
type Point struct {
	Index int

	// X, Y is the position at t=0.
	X, Y float64

	// DX, DY is the displacement over the whole interval, so the position
	// at t=1 is (X+DX, Y+DY).
	DX, DY float64
}

// NewPoint returns a kinetic point with the given index, start position and velocity.
func NewPoint(index int, x, y, dx, dy float64) Point {
	return Point{Index: index, X: x, Y: y, DX: dx, DY: dy}
}

// Start returns the position at t=0.
func (p Point) Start() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// Velocity returns the displacement per unit of time.
func (p Point) Velocity() r2.Vec { return r2.Vec{X: p.DX, Y: p.DY} }

// End returns the position at t=1.
func (p Point) End() r2.Vec { return p.At(1) }

// At returns the position at time t.
func (p Point) At(t float64) r2.Vec {
	return r2.Add(p.Start(), r2.Scale(t, p.Velocity()))
}

// Stationary reports whether the point does not move.
func (p Point) Stationary() bool { return p.DX == 0 && p.DY == 0 }

// Coincides reports whether p and q stay at the same position for the
// entire motion. Indices are ignored.
func (p Point) Coincides(q Point) bool {
	return p.X == q.X && p.Y == q.Y && p.DX == q.DX && p.DY == q.DY
}

// String renders the start position and the velocity, e.g. "(1, 2)+t(3, 4)".
func (p Point) String() string {
	if p.Stationary() {
		return fmt.Sprintf("(%g, %g)", p.X, p.Y)
	}

	return fmt.Sprintf("(%g, %g)+t(%g, %g)", p.X, p.Y, p.DX, p.DY)
}
