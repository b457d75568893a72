package experiment

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/patterns"
	"github.com/san-kum/lifesim/internal/sim"
)

type Experiment struct {
	cfg       *config.Config
	simulator *sim.Simulator
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Seed builds the initial grid: random fill first, then placements on top.
func Seed(cfg *config.Config) (*life.Grid, error) {
	g, err := life.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}

	if cfg.Density > 0 {
		rng := rand.New(rand.NewSource(cfg.Seed))
		for r := 0; r < cfg.Rows; r++ {
			for c := 0; c < cfg.Cols; c++ {
				if rng.Float64() < cfg.Density {
					g.Set(r, c, true)
				}
			}
		}
	}

	for i, p := range cfg.Placements {
		pat, err := resolve(p)
		if err != nil {
			return nil, fmt.Errorf("placement %d: %w", i, err)
		}
		patterns.Place(g, pat, p.Row, p.Col, p.FlipH, p.FlipV)
	}

	return g, nil
}

func resolve(p config.Placement) (patterns.Pattern, error) {
	if p.File == "" {
		return patterns.Get(p.Pattern)
	}
	f, err := os.Open(p.File)
	if err != nil {
		return patterns.Pattern{}, err
	}
	defer f.Close()
	return patterns.ParsePlaintext(f)
}

// Setup validates the config, seeds the grid and wires the kernel and metrics.
func (e *Experiment) Setup(registry *Registry, metrics []sim.Metric) error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	kernel, err := registry.GetKernel(e.cfg.Kernel, e.cfg.Workers)
	if err != nil {
		return err
	}
	seed, err := Seed(e.cfg)
	if err != nil {
		return err
	}

	e.simulator = sim.New(seed, kernel)
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	return e.simulator.Run(ctx, sim.Config{
		Generations:    e.cfg.Generations,
		StopWhenStable: e.cfg.StopWhenStable,
		Seed:           e.cfg.Seed,
	})
}

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}

func (e *Experiment) Config() *config.Config {
	return e.cfg
}
