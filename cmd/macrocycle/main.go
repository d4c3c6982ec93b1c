// Command macrocycle decomposes the configured macroeconomic series into trend and cycle,
// correlates their cycles and runs growth accounting over a country panel.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aouyang1/go-macrocycle/config"
)

func main() {
	configPath := flag.String("config", "macrocycle.yaml", "config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger setup failed: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, logger, os.Stdout); err != nil {
		logger.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}
