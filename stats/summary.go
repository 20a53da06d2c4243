package stats

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates one series.
//
// Weight statistics cover successful samples only; Visited and Comparisons
// means cover every sample. StdDevWeight is the sample standard deviation
// and zero with fewer than two successes. Weight fields are zero when every
// sample failed.
type Summary struct {
	Series   string
	Count    int
	Failures int

	MeanWeight   float64
	StdDevWeight float64
	MinWeight    float64
	MaxWeight    float64

	MeanVisited     float64
	MeanComparisons float64
}

// Summary aggregates series.
//
// Errors: ErrUnknownSeries.
func (c *Collector) Summary(series string) (Summary, error) {
	samples, ok := c.samples[series]
	if !ok {
		return Summary{}, fmt.Errorf("%w: %q", ErrUnknownSeries, series)
	}

	sum := Summary{Series: series, Count: len(samples)}
	weights := make([]float64, 0, len(samples))
	visited := make([]float64, len(samples))
	comparisons := make([]float64, len(samples))
	for i, s := range samples {
		visited[i] = float64(s.Visited)
		comparisons[i] = float64(s.Comparisons)
		if s.Failed {
			sum.Failures++
			continue
		}
		weights = append(weights, s.Weight)
	}

	sum.MeanVisited = stat.Mean(visited, nil)
	sum.MeanComparisons = stat.Mean(comparisons, nil)

	switch len(weights) {
	case 0:
	case 1:
		sum.MeanWeight = weights[0]
		sum.MinWeight, sum.MaxWeight = weights[0], weights[0]
	default:
		sum.MeanWeight, sum.StdDevWeight = stat.MeanStdDev(weights, nil)
		sum.MinWeight = floats.Min(weights)
		sum.MaxWeight = floats.Max(weights)
	}

	return sum, nil
}

// Summaries returns one Summary per series in first-recorded order.
func (c *Collector) Summaries() []Summary {
	out := make([]Summary, 0, len(c.order))
	for _, name := range c.order {
		s, _ := c.Summary(name)
		out = append(out, s)
	}

	return out
}
