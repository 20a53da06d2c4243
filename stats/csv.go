package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes all samples to w.
//
// Layout:
//
//	points,<n>,samples,<k>
//	<s1>_weight,…,<sN>_weight,<s1>_visited,…,<s1>_comparisons,…
//	one row per sample index
//
// Failed samples leave the weight cell empty; a series shorter than the
// longest one leaves its remaining cells empty.
func (c *Collector) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	k := c.SampleCount()

	if err := cw.Write([]string{"points", strconv.Itoa(c.points), "samples", strconv.Itoa(k)}); err != nil {
		return fmt.Errorf("writing csv preamble: %w", err)
	}

	header := make([]string, 0, 3*len(c.order))
	for _, col := range []string{"weight", "visited", "comparisons"} {
		for _, name := range c.order {
			header = append(header, name+"_"+col)
		}
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for i := 0; i < k; i++ {
		row := make([]string, 0, len(header))
		row = c.appendColumn(row, i, func(s Sample) string {
			if s.Failed {
				return ""
			}

			return strconv.FormatFloat(s.Weight, 'f', -1, 64)
		})
		row = c.appendColumn(row, i, func(s Sample) string { return strconv.Itoa(s.Visited) })
		row = c.appendColumn(row, i, func(s Sample) string { return strconv.Itoa(s.Comparisons) })
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %d: %w", i, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// appendColumn appends one cell per series for sample index i.
func (c *Collector) appendColumn(row []string, i int, cell func(Sample) string) []string {
	for _, name := range c.order {
		s := c.samples[name]
		if i >= len(s) {
			row = append(row, "")
			continue
		}
		row = append(row, cell(s[i]))
	}

	return row
}
