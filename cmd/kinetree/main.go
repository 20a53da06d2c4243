package main

import (
	"os"

	zlog "github.com/rs/zerolog/log"

	"github.com/katalvlaran/kinetree/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		zlog.Error().Err(err).Msg("kinetree failed")
		os.Exit(1)
	}
}
