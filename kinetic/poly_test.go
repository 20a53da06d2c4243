package kinetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadratic_RootsIn(t *testing.T) {
	cases := []struct {
		name string
		q    quadratic
		want []float64
	}{
		{"two roots inside", quadratic{c0: 0.1875, c1: -1, c2: 1, scale: 1}, []float64{0.75, 0.25}},
		{"roots outside", quadratic{c0: 2, c1: -3, c2: 1, scale: 1}, nil}, // roots 1 and 2
		{"no real roots", quadratic{c0: 1, c1: 0, c2: 1, scale: 1}, nil},
		{"double root", quadratic{c0: 0.25, c1: -1, c2: 1, scale: 1}, []float64{0.5}},
		{"linear", quadratic{c0: -1, c1: 4, scale: 1}, []float64{0.25}},
		{"constant", quadratic{c0: 3, scale: 1}, nil},
		{"identically zero", quadratic{scale: 1}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.q.rootsIn(nil)
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.InDeltaSlice(t, tc.want, got, 1e-12)
		})
	}
}

func TestOrientation_MatchesSnapshots(t *testing.T) {
	a := NewPoint(0, 0, 0, 1, 2)
	b := NewPoint(1, 10, 0, -3, 4)
	c := NewPoint(2, 3, 7, 5, -6)
	q := orientation(a, b, c)
	for _, tt := range []float64{0, 0.25, 0.5, 1} {
		pa, pb, pc := a.At(tt), b.At(tt), c.At(tt)
		want := (pb.X-pa.X)*(pc.Y-pa.Y) - (pb.Y-pa.Y)*(pc.X-pa.X)
		assert.InDelta(t, want, q.eval(tt), 1e-9)
	}
}
