package planar

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/kinetree/kinetic"
)

// Edge is a candidate or tree edge: two point indices, the kinetic segment
// between them and its weight.
type Edge struct {
	Src, Dst int
	Segment  kinetic.Segment
	Weight   float64

	// rank is the position in the sorted candidate list that produced the
	// edge; the exact searches key per-branch flags by it.
	rank int
}

// NewEdge builds the edge between points a and b weighted according to mode.
func NewEdge(a, b kinetic.Point, mode WeightMode) Edge {
	s := kinetic.NewSegment(a, b)

	return Edge{Src: a.Index, Dst: b.Index, Segment: s, Weight: weightOf(s, mode)}
}

func weightOf(s kinetic.Segment, mode WeightMode) float64 {
	if mode == WeightSweptArea {
		return s.SweptArea()
	}

	return s.Length0()
}

// Same reports whether e and o connect the same unordered pair of points.
// Weights and geometry are ignored.
func (e Edge) Same(o Edge) bool {
	return (e.Src == o.Src && e.Dst == o.Dst) || (e.Src == o.Dst && e.Dst == o.Src)
}

// Crosses reports whether the two edges cross at some instant.
func (e Edge) Crosses(o Edge) bool {
	return kinetic.Crosses(e.Segment, o.Segment)
}

// String renders the endpoint pair, e.g. "0-3".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.Src, e.Dst)
}

// Less orders edges by ascending weight. Combined with a stable sort it keeps
// generation order among equal weights.
func Less(a, b Edge) bool {
	return a.Weight < b.Weight
}

// SortEdges sorts edges in place by Less, keeping the relative order of
// equal-weight edges.
//
// Complexity: O(E log E).
func SortEdges(edges []Edge) {
	sort.SliceStable(edges, func(i, j int) bool {
		return Less(edges[i], edges[j])
	})
}

// TotalWeight returns the sum of edge weights.
func TotalWeight(edges []Edge) float64 {
	if len(edges) == 0 {
		return 0
	}
	w := make([]float64, len(edges))
	for i, e := range edges {
		w[i] = e.Weight
	}

	return floats.Sum(w)
}

func cloneEdges(edges []Edge) []Edge {
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out
}
