package main

import (
	"fmt"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/spf13/cobra"
)

// resolveConfig layers preset, config file and changed flags, in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if len(args) > 0 {
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Rows = rows
	}
	if flags.Changed("cols") {
		cfg.Cols = cols
	}
	if flags.Changed("generations") {
		cfg.Generations = generations
	}
	if flags.Changed("kernel") {
		cfg.Kernel = kernel
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("density") {
		cfg.Density = density
	}
	if flags.Changed("stable") {
		cfg.StopWhenStable = stable
	}
	if flags.Changed("delay") {
		cfg.DelayMs = delayMs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func presetName(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Name
}
