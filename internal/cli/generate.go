package cli

import (
	"fmt"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kinetree/internal/scenario"
	"github.com/katalvlaran/kinetree/kinetic"
)

var (
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a random moving point set and save it as a scenario file",
	}

	generatePoints = generateCmd.Flags().Int("points", 8, "Number of points")
	generateSeed   = generateCmd.Flags().Int64("seed", 0, "Random seed (0 uses the fixed default seed)")
	generateOut    = generateCmd.Flags().String("out", "scenario.json", "Output file")
)

func runGenerate(cmd *cobra.Command, args []string) error {
	s, err := currentSettings()
	if err != nil {
		return err
	}
	ps, err := kinetic.Generate(s.generator(*generatePoints, *generateSeed))
	if err != nil {
		return err
	}
	if err := scenario.Save(*generateOut, scenario.FromPointSet(ps, *generateSeed)); err != nil {
		return err
	}
	zlog.Info().Str("file", *generateOut).Int("points", ps.Len()).Int64("seed", *generateSeed).Msg("Scenario written")

	table, err := renderTable(pointRows(ps))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)

	return nil
}
