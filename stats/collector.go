package stats

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kinetree/planar"
)

// ErrUnknownSeries indicates a lookup of a series that has no samples.
var ErrUnknownSeries = errors.New("stats: unknown series")

// Sample is one measurement of one algorithm on one scenario.
type Sample struct {
	Weight      float64
	Visited     int
	Comparisons int

	// Failed marks an infeasible run; Weight is meaningless then.
	Failed bool
}

// Collector accumulates samples per series. It is not safe for concurrent use.
type Collector struct {
	points  int
	order   []string
	samples map[string][]Sample
}

// NewCollector returns an empty Collector for scenarios of the given size.
func NewCollector(points int) *Collector {
	return &Collector{points: points, samples: make(map[string][]Sample)}
}

// Points returns the scenario size the collector was created for.
func (c *Collector) Points() int { return c.points }

// Add appends s to series.
func (c *Collector) Add(series string, s Sample) {
	if _, ok := c.samples[series]; !ok {
		c.order = append(c.order, series)
	}
	c.samples[series] = append(c.samples[series], s)
}

// Record appends the outcome of one planar run. ErrInfeasible is recorded as
// a failed sample; any other error is returned and nothing is recorded.
func (c *Collector) Record(series string, res planar.Result, err error) error {
	if err != nil && !errors.Is(err, planar.ErrInfeasible) {
		return fmt.Errorf("recording %s: %w", series, err)
	}
	c.Add(series, Sample{
		Weight:      res.Weight,
		Visited:     res.Visited,
		Comparisons: res.Comparisons,
		Failed:      err != nil,
	})

	return nil
}

// Series returns the series names in first-recorded order.
func (c *Collector) Series() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// Samples returns a copy of the samples of series, or nil if unknown.
func (c *Collector) Samples(series string) []Sample {
	s, ok := c.samples[series]
	if !ok {
		return nil
	}
	out := make([]Sample, len(s))
	copy(out, s)

	return out
}

// SampleCount returns the length of the longest series.
func (c *Collector) SampleCount() int {
	longest := 0
	for _, s := range c.samples {
		if len(s) > longest {
			longest = len(s)
		}
	}

	return longest
}
