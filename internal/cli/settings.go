package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/kinetree/kinetic"
	"github.com/katalvlaran/kinetree/planar"
)

// settings are the options shared by every subcommand.
type settings struct {
	weight     planar.WeightMode
	restricted bool
	clearance  float64
}

func parseSettings(weightName string, restrictedOn bool, minClearance float64) (settings, error) {
	w, err := planar.ParseWeightMode(weightName)
	if err != nil {
		return settings{}, err
	}
	if minClearance < 0 {
		return settings{}, fmt.Errorf("clearance must be non-negative, got %v", minClearance)
	}

	return settings{weight: w, restricted: restrictedOn, clearance: minClearance}, nil
}

func currentSettings() (settings, error) {
	return parseSettings(*weight, *restricted, *clearance)
}

func (s settings) options() []planar.Option {
	return []planar.Option{
		planar.WithWeightMode(s.weight),
		planar.WithRestrictedCandidates(s.restricted),
	}
}

func (s settings) generator(points int, seed int64) kinetic.GeneratorOptions {
	opts := kinetic.DefaultGeneratorOptions()
	opts.N = points
	opts.Seed = seed
	opts.Clearance = s.clearance

	return opts
}

// parseAlgorithms validates names; "all" or an empty list selects every
// algorithm. Duplicates are dropped.
func parseAlgorithms(names []string) ([]planar.Algorithm, error) {
	if len(names) == 0 || (len(names) == 1 && strings.EqualFold(names[0], "all")) {
		return planar.Algorithms(), nil
	}
	seen := make(map[planar.Algorithm]bool, len(names))
	out := make([]planar.Algorithm, 0, len(names))
	for _, n := range names {
		a, err := planar.ParseAlgorithm(strings.ToLower(strings.TrimSpace(n)))
		if err != nil {
			return nil, err
		}
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}

	return out, nil
}
