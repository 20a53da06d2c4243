package kinetic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kinetree/kinetic"
)

func TestSweptArea(t *testing.T) {
	cases := []struct {
		name string
		a, b kinetic.Point
		want float64
	}{
		{
			name: "stationary",
			a:    kinetic.NewPoint(0, 0, 0, 0, 0),
			b:    kinetic.NewPoint(1, 10, 0, 0, 0),
			want: 0,
		},
		{
			name: "unit translation",
			a:    kinetic.NewPoint(0, 0, 0, 0, 1),
			b:    kinetic.NewPoint(1, 1, 0, 0, 1),
			want: 1,
		},
		{
			name: "translation along itself",
			a:    kinetic.NewPoint(0, 0, 0, 5, 0),
			b:    kinetic.NewPoint(1, 1, 0, 5, 0),
			want: 0,
		},
		{
			name: "quarter turn around a fixed end",
			a:    kinetic.NewPoint(0, 0, 0, 0, 0),
			b:    kinetic.NewPoint(1, 1, 0, -1, 1),
			want: 0.5,
		},
		{
			name: "bow tie",
			a:    kinetic.NewPoint(0, 0, 0, 0, 1),
			b:    kinetic.NewPoint(1, 1, 0, 0, -1),
			want: 0.5,
		},
		{
			name: "stretching trapezoid",
			a:    kinetic.NewPoint(0, 0, 0, 0, 2),
			b:    kinetic.NewPoint(1, 2, 0, 2, 2),
			want: 6, // trapezoid with parallel sides 2 and 4, height 2
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := kinetic.NewSegment(tc.a, tc.b)
			assert.InDelta(t, tc.want, s.SweptArea(), 1e-9)
			assert.InDelta(t, tc.want, kinetic.NewSegment(tc.b, tc.a).SweptArea(), 1e-9)
		})
	}
}
