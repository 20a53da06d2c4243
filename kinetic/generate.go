package kinetic

import (
	"errors"
	"math"
)

var (
	// ErrNegativeCount indicates a negative number of points was requested.
	ErrNegativeCount = errors.New("kinetic: point count must be non-negative")
	// ErrBadBounds indicates an empty or inverted coordinate or velocity range.
	ErrBadBounds = errors.New("kinetic: range minimum must not exceed maximum")
)

// GeneratorOptions controls random scenario generation.
// Positions are drawn uniformly from [XMin,XMax)×[YMin,YMax) and velocities
// from [DXMin,DXMax)×[DYMin,DYMax).
type GeneratorOptions struct {
	N int

	XMin, XMax   float64
	YMin, YMax   float64
	DXMin, DXMax float64
	DYMin, DYMax float64

	// Integral truncates every coordinate and velocity towards zero, which
	// reproduces integer pixel scenarios.
	Integral bool

	// Seed selects the random stream; 0 means a fixed default seed.
	Seed int64

	// Clearance is passed to the resulting PointSet (see WithClearance).
	Clearance float64
}

// DefaultGeneratorOptions returns options for 8 integral points on an
// 800×600 canvas with velocities in [−200,200)² and no clearance.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		N:        8,
		XMin:     0,
		XMax:     800,
		YMin:     0,
		YMax:     600,
		DXMin:    -200,
		DXMax:    200,
		DYMin:    -200,
		DYMax:    200,
		Integral: true,
	}
}

// Generate draws a random point set.
//
// Errors:
//   - ErrNegativeCount if opts.N < 0.
//   - ErrBadBounds if any range has min > max.
//
// Complexity: O(N).
func Generate(opts GeneratorOptions) (*PointSet, error) {
	if opts.N < 0 {
		return nil, ErrNegativeCount
	}
	if opts.XMin > opts.XMax || opts.YMin > opts.YMax ||
		opts.DXMin > opts.DXMax || opts.DYMin > opts.DYMax {
		return nil, ErrBadBounds
	}

	rng := rngFromSeed(opts.Seed)
	draw := func(lo, hi float64) float64 {
		v := lo + rng.Float64()*(hi-lo)
		if opts.Integral {
			v = math.Trunc(v)
		}

		return v
	}

	points := make([]Point, opts.N)
	for i := range points {
		points[i] = Point{
			Index: i,
			X:     draw(opts.XMin, opts.XMax),
			Y:     draw(opts.YMin, opts.YMax),
			DX:    draw(opts.DXMin, opts.DXMax),
			DY:    draw(opts.DYMin, opts.DYMax),
		}
	}

	return NewPointSet(points, WithClearance(opts.Clearance)), nil
}
