package automation

import (
	"context"
	"fmt"
	"os"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/experiment"
	"github.com/san-kum/lifesim/internal/sim"
	"github.com/san-kum/lifesim/internal/storage"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted sequence of runs
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Runs        []Run  `yaml:"runs"`
}

// Run is a single entry in a scenario. Config, when set, replaces the preset.
type Run struct {
	Preset      string         `yaml:"preset"`
	Config      *config.Config `yaml:"config"`
	Generations int            `yaml:"generations"`
	Seed        *int64         `yaml:"seed"`
	SaveAs      string         `yaml:"save_as"`
}

// UnmarshalYAML decodes an inline config over DefaultConfig so omitted
// fields keep their defaults, as config.Load does.
func (r *Run) UnmarshalYAML(value *yaml.Node) error {
	type plain Run
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*r = Run(p)
	if r.Config == nil || value.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value != "config" {
			continue
		}
		cfg := config.DefaultConfig()
		if err := value.Content[i+1].Decode(cfg); err != nil {
			return err
		}
		r.Config = cfg
	}
	return nil
}

// Outcome pairs a scenario run with its result and stored run id.
type Outcome struct {
	Label  string
	RunID  string
	Result *sim.Result
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Runs) == 0 {
		return nil, fmt.Errorf("scenario %q has no runs", scenario.Name)
	}

	return &scenario, nil
}

func (r Run) resolve() (*config.Config, error) {
	var cfg *config.Config
	switch {
	case r.Config != nil:
		c := *r.Config
		if c.Kernel == "" {
			c.Kernel = config.DefaultKernel
		}
		cfg = &c
	case r.Preset != "":
		cfg = config.GetPreset(r.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", r.Preset)
		}
	default:
		cfg = config.DefaultConfig()
	}

	if r.Generations > 0 {
		cfg.Generations = r.Generations
	}
	if r.Seed != nil {
		cfg.Seed = *r.Seed
	}
	return cfg, nil
}

func (r Run) label() string {
	switch {
	case r.SaveAs != "":
		return r.SaveAs
	case r.Preset != "":
		return r.Preset
	case r.Config != nil && r.Config.Name != "":
		return r.Config.Name
	}
	return "custom"
}

// RunScenario executes all runs in order. Runs are persisted when store is non-nil.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry, store *storage.Store) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(scenario.Runs))

	for i, run := range scenario.Runs {
		label := run.label()
		fmt.Printf("Running %d/%d: %s\n", i+1, len(scenario.Runs), label)

		cfg, err := run.resolve()
		if err != nil {
			return outcomes, fmt.Errorf("run %d: %w", i+1, err)
		}

		exp := experiment.New(cfg)
		if err := exp.Setup(registry, registry.DefaultMetrics()); err != nil {
			return outcomes, fmt.Errorf("run %d setup: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return outcomes, fmt.Errorf("run %d: %w", i+1, err)
		}

		outcome := Outcome{Label: label, Result: result}
		if store != nil {
			id, err := store.Save(label, cfg.Seed, cfg.Kernel, result)
			if err != nil {
				return outcomes, fmt.Errorf("run %d save: %w", i+1, err)
			}
			outcome.RunID = id
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

// DensitySweep runs random soups across a range of initial densities
type DensitySweep struct {
	Rows        int
	Cols        int
	MinDensity  float64
	MaxDensity  float64
	NumSteps    int
	Generations int
	Seed        int64
	Kernel      string
}

type SweepResult struct {
	Density         float64
	FinalPopulation int
	PeakPopulation  int
	Generations     int
	Stable          bool
}

func RunSweep(ctx context.Context, sweep *DensitySweep, registry *experiment.Registry) ([]SweepResult, error) {
	if sweep.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d", sweep.NumSteps)
	}

	step := 0.0
	if sweep.NumSteps > 1 {
		step = (sweep.MaxDensity - sweep.MinDensity) / float64(sweep.NumSteps-1)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	for i := 0; i < sweep.NumSteps; i++ {
		density := sweep.MinDensity + float64(i)*step

		cfg := soupConfig(sweep.Rows, sweep.Cols, sweep.Generations, sweep.Kernel, sweep.Seed, density)
		exp := experiment.New(cfg)
		if err := exp.Setup(registry, nil); err != nil {
			return nil, err
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return nil, err
		}

		results = append(results, SweepResult{
			Density:         density,
			FinalPopulation: result.Final.Population(),
			PeakPopulation:  peak(result.Population),
			Generations:     result.Generations,
			Stable:          result.Stable,
		})

		fmt.Printf("Sweep %d/%d: density=%.3f\n", i+1, sweep.NumSteps, density)
	}

	return results, nil
}

// SoupTrials runs independently seeded random soups concurrently
type SoupTrials struct {
	Rows        int
	Cols        int
	Density     float64
	NumTrials   int
	Generations int
	Seed        int64
	Kernel      string
}

type TrialResult struct {
	TrialID         int
	Seed            int64
	FinalPopulation int
	Generations     int
	Stable          bool
}

func RunTrials(ctx context.Context, trials *SoupTrials, registry *experiment.Registry) ([]TrialResult, error) {
	if trials.NumTrials < 0 {
		return nil, fmt.Errorf("trial count must be non-negative, got %d", trials.NumTrials)
	}

	build := func(seed int64) (*sim.Simulator, error) {
		cfg := soupConfig(trials.Rows, trials.Cols, trials.Generations, trials.Kernel, seed, trials.Density)
		exp := experiment.New(cfg)
		if err := exp.Setup(registry, nil); err != nil {
			return nil, err
		}
		return exp.GetSimulator(), nil
	}

	ensemble := sim.NewEnsemble(build, trials.NumTrials, trials.Seed)
	results, err := ensemble.Run(ctx, sim.Config{Generations: trials.Generations, StopWhenStable: true})
	if err != nil {
		return nil, err
	}

	out := make([]TrialResult, len(results))
	for i, r := range results {
		out[i] = TrialResult{
			TrialID:         i,
			Seed:            trials.Seed + int64(i),
			FinalPopulation: r.Final.Population(),
			Generations:     r.Generations,
			Stable:          r.Stable,
		}
	}
	return out, nil
}

// TrialStats counts trials that settled versus ones still changing at the end.
func TrialStats(results []TrialResult) (stableCount int, activeCount int) {
	for _, r := range results {
		if r.Stable {
			stableCount++
		} else {
			activeCount++
		}
	}
	return
}

func soupConfig(rows, cols, generations int, kernel string, seed int64, density float64) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Name = "soup"
	cfg.Rows = rows
	cfg.Cols = cols
	cfg.Generations = generations
	cfg.Seed = seed
	cfg.Density = density
	cfg.StopWhenStable = true
	if kernel != "" {
		cfg.Kernel = kernel
	}
	return cfg
}

func peak(xs []int) int {
	m := 0
	for _, x := range xs {
		if x > m {
			m = x
		}
	}
	return m
}
