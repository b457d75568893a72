package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/lifesim/internal/life"
)

// Simulator owns the current grid and the generation counter, replacing
// them on every step with the kernel's output.
type Simulator struct {
	seed       *life.Grid
	grid       *life.Grid
	generation int
	kernel     Kernel
	metrics    []Metric
	observers  []Observer
}

func New(seed *life.Grid, kernel Kernel) *Simulator {
	return &Simulator{
		seed:      seed.Clone(),
		grid:      seed.Clone(),
		kernel:    kernel,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Grid returns the current generation. Callers must treat it as read-only.
func (s *Simulator) Grid() *life.Grid { return s.grid }

func (s *Simulator) Generation() int { return s.generation }

// Reset restores the seed grid and zeroes the generation counter.
func (s *Simulator) Reset() {
	s.grid = s.seed.Clone()
	s.generation = 0
	for _, m := range s.metrics {
		m.Reset()
	}
}

// Step advances one generation. On error the current grid and counter are
// left unchanged.
func (s *Simulator) Step() error {
	if s.kernel == nil {
		return &RunError{Generation: s.generation, Wrapped: ErrNoKernel}
	}
	prev := s.grid
	next := s.kernel(prev)
	if next == nil || next.Rows() != prev.Rows() || next.Cols() != prev.Cols() {
		return &RunError{Generation: s.generation, Wrapped: ErrKernelContract}
	}

	s.grid = next
	s.generation++

	for _, m := range s.metrics {
		m.Observe(prev, next, s.generation)
	}
	for _, obs := range s.observers {
		obs.OnGeneration(next, s.generation)
	}
	return nil
}

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	n := cfg.Generations
	result := &Result{
		Population: make([]int, 0, n+1),
		Births:     make([]int, 0, n+1),
		Deaths:     make([]int, 0, n+1),
		Metrics:    make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result.Population = append(result.Population, s.grid.Population())
	result.Births = append(result.Births, 0)
	result.Deaths = append(result.Deaths, 0)

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			s.finish(result)
			return result, ctx.Err()
		default:
		}

		prev := s.grid
		if err := s.Step(); err != nil {
			s.finish(result)
			return result, err
		}

		births, deaths := life.Changes(prev, s.grid)
		result.Population = append(result.Population, s.grid.Population())
		result.Births = append(result.Births, births)
		result.Deaths = append(result.Deaths, deaths)

		if cfg.StopWhenStable && births == 0 && deaths == 0 {
			result.Stable = true
			break
		}
	}

	s.finish(result)
	return result, nil
}

func (s *Simulator) finish(result *Result) {
	result.Final = s.grid
	result.Generations = len(result.Population) - 1
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Generations < 0 {
		return fmt.Errorf("generations must be non-negative, got %d", cfg.Generations)
	}
	if s.kernel == nil {
		return ErrNoKernel
	}
	return nil
}

// RunWithCallback steps until the callback returns false, the context is
// done, or cfg.Generations steps have run (0 means unbounded).
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(g *life.Grid, generation int) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	for i := 0; cfg.Generations == 0 || i < cfg.Generations; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(s.grid, s.generation) {
			return nil
		}

		prev := s.grid
		if err := s.Step(); err != nil {
			return err
		}
		if cfg.StopWhenStable && prev.Equal(s.grid) {
			return nil
		}
	}

	return nil
}
