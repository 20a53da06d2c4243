// Package planar defines configuration options, results and sentinel errors
// for kinetic spanning-tree search.
package planar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kinetree/kinetic"
)

// ErrNilPointSet indicates that a search was started without a point set.
var ErrNilPointSet = errors.New("planar: nil point set")

// ErrEmptyPointSet indicates that the point set has no points, so there is
// nothing to span.
var ErrEmptyPointSet = errors.New("planar: empty point set")

// ErrInfeasible indicates that the candidates ran out before n−1 edges were
// accepted. No partial forest is ever reported as a tree.
var ErrInfeasible = errors.New("planar: candidates exhausted before the tree was complete")

// ErrInvariantViolation indicates that union-find reported two endpoints of a
// surviving tree edge as already connected while rebuilding after a forced
// inclusion. It is a logic error and aborts the search.
var ErrInvariantViolation = errors.New("planar: union-find invariant violated")

// ErrUnknownAlgorithm indicates that Compute received an unknown algorithm name.
var ErrUnknownAlgorithm = errors.New("planar: unknown algorithm")

// ErrUnknownWeightMode indicates that ParseWeightMode received an unknown name.
var ErrUnknownWeightMode = errors.New("planar: unknown weight mode")

// ErrNotSpanning indicates that an edge list is not a spanning tree of the
// point set (wrong size, out-of-range endpoint or a cycle).
var ErrNotSpanning = errors.New("planar: edges do not form a spanning tree")

// PointSet is what the search consumes from the point-set collaborator:
// the points and the static admissibility oracle used for restricted
// candidate generation. *kinetic.PointSet implements it.
type PointSet interface {
	Len() int
	Point(i int) kinetic.Point
	Admissible(s kinetic.Segment) bool
}

// WeightMode selects the scalar weight attached to a candidate edge.
type WeightMode int

const (
	// WeightLength weighs an edge by its Euclidean length at t=0.
	WeightLength WeightMode = iota
	// WeightSweptArea weighs an edge by the area it sweeps over [0,1].
	WeightSweptArea
)

// String returns "length" or "area".
func (m WeightMode) String() string {
	switch m {
	case WeightLength:
		return "length"
	case WeightSweptArea:
		return "area"
	default:
		return fmt.Sprintf("WeightMode(%d)", int(m))
	}
}

// ParseWeightMode is the inverse of WeightMode.String.
func ParseWeightMode(s string) (WeightMode, error) {
	switch s {
	case "length":
		return WeightLength, nil
	case "area":
		return WeightSweptArea, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownWeightMode, s)
	}
}

// Options configures candidate generation for every algorithm.
//
// Fields:
//
//	Weight     WeightMode: edge weight (length at t0 or swept area).
//	Restricted bool:       drop candidates the point set deems inadmissible.
type Options struct {
	Weight     WeightMode
	Restricted bool
}

// Option configures Options.
type Option func(*Options)

// WithWeightMode returns an Option that sets the edge weight mode.
func WithWeightMode(m WeightMode) Option {
	return func(o *Options) {
		o.Weight = m
	}
}

// WithRestrictedCandidates returns an Option that enables or disables the
// admissibility pre-filter.
func WithRestrictedCandidates(on bool) Option {
	return func(o *Options) {
		o.Restricted = on
	}
}

// DefaultOptions returns Options for the full complete graph weighted by
// length at t=0.
func DefaultOptions() Options {
	return Options{
		Weight:     WeightLength,
		Restricted: false,
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result is the outcome of one search invocation.
//
// On ErrInfeasible, Edges is nil and Weight is zero, but Visited and
// Comparisons still describe the work done.
type Result struct {
	// Edges of the spanning tree, n−1 of them on success.
	Edges []Edge

	// Weight is the sum of edge weights.
	Weight float64

	// Visited counts candidates dequeued.
	Visited int

	// Comparisons counts kinetic crossing tests (zero for the non-planar baseline).
	Comparisons int
}
