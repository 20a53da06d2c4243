package cli

import (
	"errors"
	"fmt"
	"time"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kinetree/internal/scenario"
	"github.com/katalvlaran/kinetree/kinetic"
	"github.com/katalvlaran/kinetree/planar"
)

var (
	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Solve one scenario with the selected algorithms and compare the trees",
	}

	runIn         = runCmd.Flags().String("in", "", "Scenario file (generate a random one if empty)")
	runPoints     = runCmd.Flags().Int("points", 8, "Number of points when generating")
	runSeed       = runCmd.Flags().Int64("seed", 0, "Random seed when generating")
	runAlgorithms = runCmd.Flags().StringSlice("algorithms", []string{"all"}, "Algorithms to run: all or a list of nonplanar, greedy, exhaustive, branchandbound, ymonotone")
)

func runRun(cmd *cobra.Command, args []string) error {
	s, err := currentSettings()
	if err != nil {
		return err
	}
	algos, err := parseAlgorithms(*runAlgorithms)
	if err != nil {
		return err
	}
	ps, err := loadOrGenerate(s, *runIn, *runPoints, *runSeed)
	if err != nil {
		return err
	}

	outcomes, err := solveAll(ps, algos, s.options())
	if err != nil {
		return err
	}

	table, err := renderTable(outcomeRows(outcomes))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, table)

	reference, ok := exactReference(ps, outcomes, s.options())
	if !ok {
		zlog.Warn().Msg("No planar spanning tree found, skipping comparison")
		return nil
	}
	for _, o := range outcomes {
		if o.err != nil {
			continue
		}
		fmt.Fprintln(out, diffLine(string(o.algo), reference, o.res.Edges))
	}

	return nil
}

func loadOrGenerate(s settings, path string, points int, seed int64) (*kinetic.PointSet, error) {
	if path != "" {
		f, err := scenario.Load(path)
		if err != nil {
			return nil, err
		}
		zlog.Info().Str("file", path).Int("points", len(f.Points)).Msg("Scenario loaded")
		if s.clearance > 0 {
			f.Clearance = s.clearance
		}

		return f.PointSet(), nil
	}

	ps, err := kinetic.Generate(s.generator(points, seed))
	if err != nil {
		return nil, err
	}
	zlog.Info().Int("points", points).Int64("seed", seed).Msg("Scenario generated")

	return ps, nil
}

// solveAll runs every algorithm; ErrInfeasible is kept in the outcome, any
// other error aborts.
func solveAll(ps planar.PointSet, algos []planar.Algorithm, opts []planar.Option) ([]outcome, error) {
	outcomes := make([]outcome, 0, len(algos))
	for _, a := range algos {
		start := time.Now()
		res, err := planar.Compute(ps, a, opts...)
		o := outcome{algo: a, res: res, err: err, elapsed: time.Since(start)}
		if err != nil && !errors.Is(err, planar.ErrInfeasible) {
			return nil, fmt.Errorf("%s: %w", a, err)
		}
		zlog.Debug().Str("algorithm", string(a)).Float64("weight", res.Weight).
			Int("visited", res.Visited).Int("comparisons", res.Comparisons).
			Dur("elapsed", o.elapsed).Bool("infeasible", err != nil).Msg("Solved")
		outcomes = append(outcomes, o)
	}

	return outcomes, nil
}

// exactReference returns the optimal tree, reusing an exact outcome when
// one was computed.
func exactReference(ps planar.PointSet, outcomes []outcome, opts []planar.Option) ([]planar.Edge, bool) {
	for _, o := range outcomes {
		if o.algo == planar.AlgoExhaustive || o.algo == planar.AlgoBranchAndBound {
			return o.res.Edges, o.err == nil
		}
	}
	res, err := planar.BranchAndBound(ps, opts...)
	if err != nil {
		return nil, false
	}

	return res.Edges, true
}
