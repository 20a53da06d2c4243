// Package cli implements the kinetree command line: scenario generation,
// single runs with a per-algorithm comparison and batch experiments.
package cli

import (
	"errors"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	Root = &cobra.Command{
		Use:              "kinetree",
		Short:            "Planar spanning trees over moving point sets",
		SilenceErrors:    true,
		SilenceUsage:     true,
		TraverseChildren: true,
	}

	loglevel   = Root.PersistentFlags().String("loglevel", "info", "Console log level (trace, debug, info, warn, error)")
	configfile = Root.PersistentFlags().String("config", "", "Configuration file (default ./kinetree.yaml if present)")

	weight     = Root.PersistentFlags().String("weight", "length", "Edge weight: length (at t=0) or area (swept over [0,1])")
	restricted = Root.PersistentFlags().Bool("restricted", false, "Drop candidate edges that violate the point criterion")
	clearance  = Root.PersistentFlags().Float64("clearance", 0, "Minimal distance of third points from an edge at t=0 and t=1")
)

func bindFlags(cmd *cobra.Command) {
	apply := func(f *pflag.Flag) {
		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && viper.IsSet(f.Name) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				sv.Replace(viper.GetStringSlice(f.Name))
			} else {
				f.Value.Set(viper.GetString(f.Name))
			}
		}
	}
	cmd.PersistentFlags().VisitAll(apply)
	cmd.Flags().VisitAll(apply)
	for _, subCommand := range cmd.Commands() {
		bindFlags(subCommand)
	}
}

func loadConfiguration(cmd *cobra.Command) {
	viper.SetEnvPrefix("KINETREE")
	viper.AutomaticEnv()

	if *configfile != "" {
		viper.SetConfigFile(*configfile)
	} else {
		viper.SetConfigName("kinetree")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		zlog.Debug().Str("file", viper.ConfigFileUsed()).Msg("Using configuration file")
	case errors.As(err, &notFound):
		zlog.Debug().Msg("No configuration file found")
	default:
		zlog.Warn().Err(err).Msg("Could not read configuration file")
	}

	bindFlags(cmd)
}

func init() {
	cobra.OnInitialize(func() {
		loadConfiguration(Root)
	})

	// Assigned here rather than in the literals: the RunE functions read the
	// subcommand flags, which would form an initialization cycle.
	generateCmd.RunE = runGenerate
	runCmd.RunE = runRun
	experimentCmd.RunE = runExperiment
	Root.AddCommand(generateCmd, runCmd, experimentCmd)
	Root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return setLogLevel(*loglevel)
	}
}

// Execute runs the root command with os.Args.
func Execute() error {
	return Root.Execute()
}
