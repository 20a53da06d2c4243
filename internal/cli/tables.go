package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/katalvlaran/kinetree/kinetic"
	"github.com/katalvlaran/kinetree/planar"
	"github.com/katalvlaran/kinetree/stats"
)

// outcome is one algorithm run inside the run command.
type outcome struct {
	algo    planar.Algorithm
	res     planar.Result
	err     error
	elapsed time.Duration
}

func renderTable(rows [][]string) (string, error) {
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', 3, 64)
}

// pointRows lists the points bottom to top.
func pointRows(ps *kinetic.PointSet) [][]string {
	rows := [][]string{{"Point", "X", "Y", "DX", "DY"}}
	for _, p := range ps.SortedByY() {
		rows = append(rows, []string{
			strconv.Itoa(p.Index),
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
			strconv.FormatFloat(p.DX, 'g', -1, 64),
			strconv.FormatFloat(p.DY, 'g', -1, 64),
		})
	}

	return rows
}

func outcomeRows(outcomes []outcome) [][]string {
	rows := [][]string{{"Algorithm", "Status", "Weight", "Edges", "Visited", "Comparisons", "Time"}}
	for _, o := range outcomes {
		status, w, edges := "ok", formatWeight(o.res.Weight), strconv.Itoa(len(o.res.Edges))
		if o.err != nil {
			status, w, edges = "infeasible", "-", "-"
		}
		rows = append(rows, []string{
			string(o.algo),
			status,
			w,
			edges,
			strconv.Itoa(o.res.Visited),
			strconv.Itoa(o.res.Comparisons),
			o.elapsed.Round(time.Microsecond).String(),
		})
	}

	return rows
}

func summaryRows(summaries []stats.Summary) [][]string {
	rows := [][]string{{"Series", "Samples", "Failures", "Mean", "StdDev", "Min", "Max", "Visited", "Comparisons"}}
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Series,
			strconv.Itoa(s.Count),
			strconv.Itoa(s.Failures),
			formatWeight(s.MeanWeight),
			formatWeight(s.StdDevWeight),
			formatWeight(s.MinWeight),
			formatWeight(s.MaxWeight),
			strconv.FormatFloat(s.MeanVisited, 'f', 1, 64),
			strconv.FormatFloat(s.MeanComparisons, 'f', 1, 64),
		})
	}

	return rows
}

// diffLine lists the reference edges tree lacks and the edges it has
// instead.
func diffLine(name string, reference, tree []planar.Edge) string {
	missing, additional := planar.Diff(tree, reference)
	if len(missing) == 0 && len(additional) == 0 {
		return fmt.Sprintf("%s: identical", name)
	}

	return fmt.Sprintf("%s: missing %v, additional %v", name, missing, additional)
}
