package cli

import (
	"fmt"
	"os"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kinetree/kinetic"
	"github.com/katalvlaran/kinetree/planar"
	"github.com/katalvlaran/kinetree/stats"
)

// crossingStable names the series of Kruskal over admissible edges only.
const crossingStable = "crossingstable"

var (
	experimentCmd = &cobra.Command{
		Use:   "experiment",
		Short: "Run every algorithm on many random scenarios and summarize",
	}

	experimentSamples    = experimentCmd.Flags().Int("samples", 20, "Number of random scenarios")
	experimentPoints     = experimentCmd.Flags().Int("points", 8, "Points per scenario")
	experimentSeed       = experimentCmd.Flags().Int64("seed", 1, "Base seed; sample i uses a seed derived from it")
	experimentCSV        = experimentCmd.Flags().String("csv", "", "Write all samples to this CSV file")
	experimentAlgorithms = experimentCmd.Flags().StringSlice("algorithms", []string{"all"}, "Algorithms to run")
)

func runExperiment(cmd *cobra.Command, args []string) error {
	s, err := currentSettings()
	if err != nil {
		return err
	}
	algos, err := parseAlgorithms(*experimentAlgorithms)
	if err != nil {
		return err
	}
	if *experimentSamples < 1 {
		return fmt.Errorf("samples must be positive, got %d", *experimentSamples)
	}

	c, err := experiment(s, algos, *experimentSamples, *experimentPoints, *experimentSeed)
	if err != nil {
		return err
	}

	table, err := renderTable(summaryRows(c.Summaries()))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)

	if *experimentCSV != "" {
		if err := writeCSV(*experimentCSV, c); err != nil {
			return err
		}
		zlog.Info().Str("file", *experimentCSV).Msg("Samples written")
	}

	return nil
}

// experiment solves samples random scenarios with every algorithm. Without
// restricted candidates it also records the crossing-stable baseline next to
// the non-planar one.
func experiment(s settings, algos []planar.Algorithm, samples, points int, base int64) (*stats.Collector, error) {
	c := stats.NewCollector(points)
	for i := 0; i < samples; i++ {
		seed := kinetic.SampleSeed(base, uint64(i))
		ps, err := kinetic.Generate(s.generator(points, seed))
		if err != nil {
			return nil, err
		}
		for _, a := range algos {
			res, solveErr := planar.Compute(ps, a, s.options()...)
			if err := c.Record(string(a), res, solveErr); err != nil {
				return nil, err
			}
			if a != planar.AlgoNonPlanar || s.restricted {
				continue
			}
			res, solveErr = planar.Kruskal(ps, append(s.options(), planar.WithRestrictedCandidates(true))...)
			if err := c.Record(crossingStable, res, solveErr); err != nil {
				return nil, err
			}
		}
		zlog.Debug().Int("sample", i).Int64("seed", seed).Msg("Sample done")
	}
	zlog.Info().Int("samples", samples).Int("points", points).Msg("Experiment finished")

	return c, nil
}

func writeCSV(path string, c *stats.Collector) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.WriteCSV(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
