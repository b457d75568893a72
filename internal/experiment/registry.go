package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/sim"
)

type Registry struct {
	kernels map[string]func(workers int) sim.Kernel
	metrics map[string]func() sim.Metric
}

func NewRegistry() *Registry {
	r := &Registry{
		kernels: make(map[string]func(int) sim.Kernel),
		metrics: make(map[string]func() sim.Metric),
	}

	r.kernels["loop"] = func(int) sim.Kernel { return life.Step }
	r.kernels["shift"] = func(int) sim.Kernel { return life.StepShift }
	r.kernels["parallel"] = func(workers int) sim.Kernel {
		return func(g *life.Grid) *life.Grid { return life.StepParallel(g, workers) }
	}
	r.kernels["fft"] = func(int) sim.Kernel { return life.NewFFTStepper().Step }

	r.metrics["population"] = func() sim.Metric { return metrics.NewPopulation() }
	r.metrics["peak_population"] = func() sim.Metric { return metrics.NewPeakPopulation() }
	r.metrics["churn"] = func() sim.Metric { return metrics.NewChurn() }
	r.metrics["density"] = func() sim.Metric { return metrics.NewDensity() }

	return r
}

func (r *Registry) GetKernel(name string, workers int) (sim.Kernel, error) {
	fn, ok := r.kernels[name]
	if !ok {
		return nil, fmt.Errorf("unknown kernel: %s", name)
	}
	return fn(workers), nil
}

func (r *Registry) GetMetric(name string) (sim.Metric, error) {
	fn, ok := r.metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListKernels() []string {
	names := make([]string, 0, len(r.kernels))
	for name := range r.kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics returns a fresh instance of every registered metric.
func (r *Registry) DefaultMetrics() []sim.Metric {
	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]sim.Metric, 0, len(names))
	for _, name := range names {
		out = append(out, r.metrics[name]())
	}
	return out
}
